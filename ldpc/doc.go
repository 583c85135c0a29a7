// Package ldpc defines the shared vocabulary of the lvlcode decoders:
// the bipartite parity-check matrix (ControlMatrix), the hard-decision and
// syndrome primitives every algorithm is built on, the common Decoder
// contract, and the optional Observer trace hook.
//
// 🚀 What lives here?
//
//	A minimal, allocation-conscious core shared by the bitflip, mlg and
//	minsum decoder families:
//	  • ControlMatrix — k checks × n bits as two adjacency views (K[i], N[j])
//	  • HardDecision  — sign rule: negative observation ⇒ bit 1
//	  • Syndrome / IsCodeword — per-check XOR parity, all-zero ⇒ valid word
//	  • Decoder       — Decode(received, estimate) (ok, error)
//	  • Observer      — no-op by default, never affects results
//
// ✨ Guarantees:
//
//   - ControlMatrix is immutable after construction; concurrent readers are
//     safe without locks.
//   - Decode calls are independent: all scratch state is call-local, nothing
//     survives a return, and an exhausted iteration budget is a normal
//     (false, nil) outcome — never an error, never a panic.
//
// Construction note: New validates shape only. Bipartite symmetry
// (j ∈ K[i] ⇔ i ∈ N[j]) is the builder's precondition — see package builder —
// and is deliberately not re-validated on the decode path.
package ldpc
