// Package lvlcode is a library of forward-error-correction decoders for
// low-density parity-check (LDPC) codes: iterative message-passing and
// bit-flipping heuristics sharing one bipartite parity-check representation
// and one decode contract.
//
// 🚀 What is lvlcode?
//
//	Given a fixed parity-check matrix and one vector of real channel
//	observations, every decoder produces a hard bit estimate plus a success
//	flag — true iff the estimate satisfies all parity checks within the
//	iteration budget:
//	  • Bit-flipping:   BF, WBF, MWBF, IMWBF
//	  • Majority logic: OneStepMLG, HardMLG, SoftMLG, AdaptiveSoftMLG
//	  • Min-sum:        MinSum, NormalizedMinSum, OffsetMinSum
//
// ✨ Why choose lvlcode?
//
//   - One contract — every decoder is an ldpc.Decoder; swap algorithms
//     without touching call sites
//   - Deterministic — order-independent tie-breaking, seeded construction,
//     no global state
//   - Concurrency-friendly — scratch is call-local; share one decoder and
//     one ControlMatrix across goroutines freely
//   - Observable — optional trace hook at every decision point, no-op by
//     default
//
// The packages:
//
//	ldpc/     — ControlMatrix, syndrome/hard-decision primitives, contracts
//	bitflip/  — bit-flipping family
//	mlg/      — majority-logic-gate family
//	minsum/   — min-sum family
//	builder/  — parity-check matrix construction (Gallager, dense import)
//	channel/  — BPSK + AWGN/BSC observation generation
//	simulate/ — Monte-Carlo bit/frame error-rate harness
//	trace/    — structured-log and recording observers
//	cmd/lvlsim — config-driven simulation CLI
//
// Quick start:
//
//	m, _ := builder.Gallager(96, 3, 6, 42)
//	dec, _ := minsum.New(m, minsum.DefaultOptions())
//	estimate := make([]int, m.Bits())
//	ok, err := dec.Decode(received, estimate)
//
// Decoding failure (budget exhausted) is a value, not an error: callers use
// it to drive retransmission or escalation.
package lvlcode
