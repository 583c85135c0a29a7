// Package ldpc: central types and sentinel errors.
//
// This file declares ControlMatrix, the Decoder contract, the Observer trace
// hook, and the sentinel errors shared by every decoder family.
package ldpc

import "errors"

// Sentinel errors for the decoding core.
var (
	// ErrBadShape indicates inconsistent construction input: non-positive
	// dimensions or adjacency slices whose lengths do not match k and n.
	ErrBadShape = errors.New("ldpc: invalid control-matrix shape")

	// ErrIndexRange indicates an adjacency entry referencing a bit or check
	// index outside [0,n) respectively [0,k).
	ErrIndexRange = errors.New("ldpc: adjacency index out of range")

	// ErrLength indicates a received or estimate slice whose length differs
	// from the code length n.
	ErrLength = errors.New("ldpc: vector length does not match code length")
)

// ControlMatrix is the immutable bipartite view of a binary parity-check
// matrix with k check rows and n bit columns.
//
// Internally it stores both adjacency directions:
//   - CheckBits(i) — ordered bit indices constrained by check i (row K[i])
//   - BitChecks(j) — ordered check indices containing bit j (column N[j])
//
// Invariant (builder precondition, not re-validated here):
// bipartite symmetry, j ∈ K[i] ⇔ i ∈ N[j] for all i, j.
//
// A ControlMatrix is built once and read-only afterwards; concurrent readers
// need no synchronization.
type ControlMatrix struct {
	k, n      int
	checkBits [][]int // K[i], length k
	bitChecks [][]int // N[j], length n
}

// New constructs a ControlMatrix from dimensions and both adjacency
// directions. The adjacency is deep-copied, so callers may reuse their
// slices freely afterwards.
//
// Validation (shape only):
//   - k ≥ 1, n ≥ 1                      — else ErrBadShape
//   - len(checkBits)==k, len(bitChecks)==n — else ErrBadShape
//   - every K[i] entry in [0,n), every N[j] entry in [0,k) — else ErrIndexRange
//
// Bipartite symmetry is the caller's responsibility (see package builder).
//
// Complexity: O(k + n + E) where E is the number of incident pairs.
func New(k, n int, checkBits, bitChecks [][]int) (*ControlMatrix, error) {
	if k < 1 || n < 1 || len(checkBits) != k || len(bitChecks) != n {
		return nil, ErrBadShape
	}
	m := &ControlMatrix{
		k:         k,
		n:         n,
		checkBits: make([][]int, k),
		bitChecks: make([][]int, n),
	}
	for i, row := range checkBits {
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, ErrIndexRange
			}
		}
		m.checkBits[i] = append([]int(nil), row...)
	}
	for j, col := range bitChecks {
		for _, i := range col {
			if i < 0 || i >= k {
				return nil, ErrIndexRange
			}
		}
		m.bitChecks[j] = append([]int(nil), col...)
	}
	return m, nil
}

// Checks returns k, the number of parity checks (rows).
func (m *ControlMatrix) Checks() int { return m.k }

// Bits returns n, the code length (columns).
func (m *ControlMatrix) Bits() int { return m.n }

// CheckBits returns K[i], the ordered bit indices constrained by check i.
// The returned slice is shared internal state — callers must not modify it.
func (m *ControlMatrix) CheckBits(i int) []int { return m.checkBits[i] }

// BitChecks returns N[j], the ordered check indices containing bit j.
// The returned slice is shared internal state — callers must not modify it.
func (m *ControlMatrix) BitChecks(j int) []int { return m.bitChecks[j] }

// Decoder is the contract every lvlcode decoding algorithm satisfies.
//
// Decode derives a hard bit estimate of the transmitted codeword from one
// vector of real-valued channel observations:
//   - received — n channel observations; negative ⇒ bit 1, non-negative ⇒ bit 0
//   - estimate — caller-allocated length-n buffer, fully overwritten in place
//
// It returns (true, nil) when the estimate satisfies every parity check
// within the configured iteration budget, and (false, nil) when the budget
// is exhausted — the estimate then holds the last, possibly invalid, guess.
// The only error condition is a length mismatch (ErrLength).
//
// Decode is side-effect-free apart from writing estimate; concurrent calls
// on one decoder are safe.
type Decoder interface {
	Decode(received []float64, estimate []int) (bool, error)
}

// Observer receives diagnostic events from a decode call. Implementations
// must treat every slice argument as read-only and must not retain it past
// the call: the decoders reuse those buffers between iterations.
//
// Observers are purely diagnostic — attaching one never changes the result.
// The zero decoder configuration uses NopObserver.
type Observer interface {
	// IterationStart fires at the top of each correction round (0-based).
	IterationStart(iter int)

	// SyndromeComputed fires after the per-check parities of the current
	// estimate are known; ok reports whether all k entries are zero.
	SyndromeComputed(iter int, syndrome []int, ok bool)

	// TablesUpdated fires after the per-bit correction metrics (and any
	// per-check or per-edge weight/message tables) have been recomputed.
	TablesUpdated(iter int)

	// FlipSetChosen fires with the bit indices flipped this round, for the
	// variants that flip explicit sets (the bit-flipping family and
	// one-step MLG).
	FlipSetChosen(iter int, flips []int)
}

// NopObserver is the default Observer: it discards every event.
type NopObserver struct{}

// IterationStart implements Observer.
func (NopObserver) IterationStart(int) {}

// SyndromeComputed implements Observer.
func (NopObserver) SyndromeComputed(int, []int, bool) {}

// TablesUpdated implements Observer.
func (NopObserver) TablesUpdated(int) {}

// FlipSetChosen implements Observer.
func (NopObserver) FlipSetChosen(int, []int) {}
