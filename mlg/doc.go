// Package mlg implements the majority-logic-gate family of LDPC decoders:
// OneStep, Hard, Soft and AdaptiveSoft — syndrome-weighted voting over a
// regular code, with saturating soft reliability state for the iterative
// members.
//
// All variants assume a regular column degree γ = |N[0]| (every bit sits in
// the same number of checks).
//
//   - OneStep — a single, non-iterative corrective pass: flip bit j iff more
//     than γ/2 of its checks fail. By contract the pass is NOT re-verified
//     against the syndrome: once applied it always reports success, even if
//     the flipped word still violates checks. Callers needing a verified
//     result should prefer the iterative variants or recheck with
//     ldpc.IsCodeword.
//
//   - Hard — per-bit reliability r[j] ∈ [−γ, γ], initialized to ±γ from the
//     hard decision; each round subtracts the vote sum
//     e[j] = Σ (2·(s[i]⊕estimate[j])−1) over N[j], saturates, and re-derives
//     estimate[j] = (r[j] < 0).
//
//   - Soft — same loop, but r[j] ∈ [−3, 3] (precision x=3 ⇒ 2^(x−1)−1) and
//     initialized from the channel: round(received[j]·3), saturated.
//
//   - AdaptiveSoft — Soft with per-edge weights and an Alpha-scaled update
//     r[j] −= Alpha·e[j]. See the TODO in mlg.go: the per-edge reliability
//     minimum is computed but the applied weight stays pinned at the
//     saturation floor.
//
// ⚙️ Usage:
//
//	opts := mlg.DefaultOptions()
//	dec, err := mlg.New(m, mlg.Hard, opts)
//	ok, err := dec.Decode(received, estimate)
//
// Complexity per iteration: O(E); AdaptiveSoft pays an extra O(k·n·ρ) once
// to seed its weight table (ρ = max row degree).
package mlg
