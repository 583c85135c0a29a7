// Package bitflip implements the bit-flipping family of LDPC decoders:
// BF, WBF, MWBF and IMWBF — one shared update rule, four refinements.
//
// 🚀 The family at a glance:
//
//	BF     — flip the bits involved in the most failed checks.
//	WBF    — weight each check by the least reliable bit it constrains
//	         (w[i] = min |received| over K[i]).
//	MWBF   — WBF plus a −α·|received[j]| bias that protects bits the
//	         channel was confident about.
//	IMWBF  — MWBF with per-edge weights that exclude the target bit's own
//	         contribution (w[i,j] = min |received| over K[i]\{j}),
//	         avoiding self-reinforcement.
//
// Each round recomputes the syndrome, stops on a valid codeword, otherwise
// flips the whole set of bits tied for the maximum correction metric:
// BF compares exactly, the weighted variants treat metrics within 0.001 of
// the maximum as tied to absorb floating round-off. Ties always flip
// together in one pass — deterministic and order-independent.
//
// Edge case: for a check of degree 1, IMWBF's excluded-self minimum ranges
// over an empty set; the edge weight then falls back to the target bit's own
// |received[j]| so every incident pair carries a well-defined weight.
//
// ⚙️ Usage:
//
//	opts := bitflip.DefaultOptions()
//	opts.MaxIter = 50
//	dec, err := bitflip.New(m, bitflip.BF, opts)
//	ok, err := dec.Decode(received, estimate)
//
// Complexity per iteration: O(E) for BF/WBF/MWBF; IMWBF additionally pays
// O(Σ|K[i]|²) once, at iteration 0, to seed its per-edge weights.
package bitflip
