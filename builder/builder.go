package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Sentinel errors for matrix construction.
var (
	// ErrBadDimensions indicates a non-positive code length or degree.
	ErrBadDimensions = errors.New("builder: invalid code dimensions")

	// ErrNotDivisible indicates n is not a multiple of the row degree wr,
	// so no regular band construction exists.
	ErrNotDivisible = errors.New("builder: code length must be divisible by row degree")

	// ErrBadDense indicates a dense import that is empty, ragged, or holds
	// entries other than 0 and 1.
	ErrBadDense = errors.New("builder: dense matrix must be rectangular and binary")
)

// Gallager builds a regular parity-check matrix over n bits with column
// degree wc and row degree wr, deterministically from seed.
//
// Construction:
//  1. k = n·wc/wr checks, split into wc bands of n/wr rows each.
//  2. Band 0: row i constrains the wr consecutive bits [i·wr, (i+1)·wr).
//  3. Bands 1..wc−1 are seeded column permutations of band 0; the per-band
//     seed decrements from the caller's seed, so the whole matrix is a pure
//     function of (n, wc, wr, seed).
//
// The result is exactly wr ones per check and wc per bit, with both
// adjacency directions built together — bipartite symmetry holds by
// construction.
//
// Errors: ErrBadDimensions (n, wc or wr < 1, or wr > n), ErrNotDivisible.
func Gallager(n, wc, wr int, seed int64) (*ldpc.ControlMatrix, error) {
	if n < 1 || wc < 1 || wr < 1 || wr > n {
		return nil, fmt.Errorf("Gallager(n=%d, wc=%d, wr=%d): %w", n, wc, wr, ErrBadDimensions)
	}
	if n%wr != 0 {
		return nil, fmt.Errorf("Gallager(n=%d, wr=%d): %w", n, wr, ErrNotDivisible)
	}

	band := n / wr  // rows per band
	k := band * wc  // total checks
	checkBits := make([][]int, k)
	bitChecks := make([][]int, n)

	// Band 0: consecutive wr-wide windows.
	for i := 0; i < band; i++ {
		for j := i * wr; j < (i+1)*wr; j++ {
			checkBits[i] = append(checkBits[i], j)
			bitChecks[j] = append(bitChecks[j], i)
		}
	}

	// Bands 1..wc−1: seeded column permutations of band 0.
	hSeed := seed
	colOrder := make([]int, n)
	for b := 1; b < wc; b++ {
		for j := range colOrder {
			colOrder[j] = j
		}
		rng := rand.New(rand.NewSource(hSeed))
		rng.Shuffle(n, func(x, y int) {
			colOrder[x], colOrder[y] = colOrder[y], colOrder[x]
		})
		hSeed--

		for j := 0; j < n; j++ {
			i := colOrder[j]/wr + band*b
			checkBits[i] = append(checkBits[i], j)
			bitChecks[j] = append(bitChecks[j], i)
		}
	}

	return ldpc.New(k, n, checkBits, bitChecks)
}

// FromDense imports a dense 0/1 parity-check matrix h (k rows × n columns),
// extracting both adjacency directions. Bipartite symmetry holds by
// construction.
//
// Errors: ErrBadDense for an empty, ragged, or non-binary input.
func FromDense(h [][]int) (*ldpc.ControlMatrix, error) {
	k := len(h)
	if k == 0 || len(h[0]) == 0 {
		return nil, ErrBadDense
	}
	n := len(h[0])

	checkBits := make([][]int, k)
	bitChecks := make([][]int, n)
	for i, row := range h {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrBadDense)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				checkBits[i] = append(checkBits[i], j)
				bitChecks[j] = append(bitChecks[j], i)
			default:
				return nil, fmt.Errorf("entry (%d,%d)=%d: %w", i, j, v, ErrBadDense)
			}
		}
	}
	return ldpc.New(k, n, checkBits, bitChecks)
}
