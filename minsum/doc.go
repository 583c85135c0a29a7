// Package minsum implements the min-sum family of LDPC decoders: plain
// MinSum plus its Normalized and Offset corrections — a belief-propagation
// approximation passing real-valued messages on the bipartite check/bit
// graph.
//
// Message tables, one entry per incident (check,bit) pair:
//
//	Q[i,j] — bit→check message, seeded from received[j] at iteration 0
//	R[i,j] — check→bit message
//
// Per check i, one scan over Q[i,·] tracks the two smallest magnitudes
// min1 ≤ min2 and the aggregate sign. The check update then excludes each
// bit's own contribution with the two-smallest trick:
//
//	|R[i,j]| = min2 if |Q[i,j]| == min1, else min1
//	sign     = aggregate-sign ⊕ sign(Q[i,j])
//
// Variant corrections of the raw magnitude r (min-sum is known to be
// overconfident):
//
//	MinSum            R[i,j] = ±r
//	NormalizedMinSum  R[i,j] = (1/Alpha)·(±r)
//	OffsetMinSum      R[i,j] = ±max(r−Alpha, 0)
//
// Enabling both corrections at once is a configuration error
// (ErrNormalizedAndOffset) and fails at construction — never silently picks
// one.
//
// The bit pass sums Le[j] = Σ R[i,j] over N[j], re-derives
// estimate[j] = (received[j]+Le[j] < 0), and writes the extrinsic update
// Q[i,j] = received[j]+Le[j]−R[i,j] (own contribution subtracted, preventing
// self-reinforcement).
//
// If the raw hard decision already satisfies every check, Decode returns
// success before allocating any message table.
//
// ⚙️ Usage:
//
//	opts := minsum.DefaultOptions()
//	opts.Normalized = true
//	opts.Alpha = 1.25
//	dec, err := minsum.New(m, opts)
//	ok, err := dec.Decode(received, estimate)
//
// Complexity per iteration: O(E) time; O(k·n) memory for the two tables.
package minsum
