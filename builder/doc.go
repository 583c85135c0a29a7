// Package builder constructs ldpc.ControlMatrix instances and is the one
// place responsible for establishing the bipartite-symmetry invariant the
// decoding core assumes (j ∈ K[i] ⇔ i ∈ N[j]).
//
// Constructors:
//
//   - Gallager(n, wc, wr, seed) — the classic regular construction: a band
//     of wr consecutive ones per row in the first k/wc rows, then wc−1
//     seeded column permutations of that band. Column degree wc, row degree
//     wr, deterministic per seed.
//
//   - FromDense(h) — import a dense 0/1 matrix, extracting both adjacency
//     directions.
//
// Both return only sentinel errors and never panic on user input.
package builder
