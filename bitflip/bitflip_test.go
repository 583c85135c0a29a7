package bitflip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvlcode/bitflip"
	"github.com/katalvlaran/lvlcode/ldpc"
	"github.com/katalvlaran/lvlcode/trace"
)

// newTestMatrix returns the (2,3)-regular 4×6 matrix:
//
//	1 1 1 0 0 0
//	0 0 0 1 1 1
//	1 1 0 1 0 0
//	0 0 1 0 1 1
//
// 110011 is one of its codewords.
func newTestMatrix(t *testing.T) *ldpc.ControlMatrix {
	t.Helper()
	m, err := ldpc.New(4, 6,
		[][]int{{0, 1, 2}, {3, 4, 5}, {0, 1, 3}, {2, 4, 5}},
		[][]int{{0, 2}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {1, 3}},
	)
	require.NoError(t, err)
	return m
}

// allVariants enumerates the closed family set.
var allVariants = []bitflip.Variant{bitflip.BF, bitflip.WBF, bitflip.MWBF, bitflip.IMWBF}

// TestNew_Validation verifies fail-fast construction for every
// misconfiguration class.
func TestNew_Validation(t *testing.T) {
	m := newTestMatrix(t)

	_, err := bitflip.New(nil, bitflip.BF, bitflip.DefaultOptions())
	assert.ErrorIs(t, err, bitflip.ErrNilMatrix)

	_, err = bitflip.New(m, bitflip.Variant(99), bitflip.DefaultOptions())
	assert.ErrorIs(t, err, bitflip.ErrUnknownVariant)

	opts := bitflip.DefaultOptions()
	opts.MaxIter = 0
	_, err = bitflip.New(m, bitflip.BF, opts)
	assert.ErrorIs(t, err, bitflip.ErrBadMaxIter)

	opts = bitflip.DefaultOptions()
	opts.Alpha = 0
	_, err = bitflip.New(m, bitflip.MWBF, opts)
	assert.ErrorIs(t, err, bitflip.ErrBadAlpha, "MWBF requires Alpha")
	_, err = bitflip.New(m, bitflip.IMWBF, opts)
	assert.ErrorIs(t, err, bitflip.ErrBadAlpha, "IMWBF requires Alpha")

	_, err = bitflip.New(m, bitflip.WBF, opts)
	assert.NoError(t, err, "WBF ignores Alpha")
}

// TestDecode_LengthMismatch verifies ErrLength on wrong buffer sizes.
func TestDecode_LengthMismatch(t *testing.T) {
	m := newTestMatrix(t)
	dec, err := bitflip.New(m, bitflip.BF, bitflip.DefaultOptions())
	require.NoError(t, err)

	_, err = dec.Decode(make([]float64, 5), make([]int, 6))
	assert.ErrorIs(t, err, ldpc.ErrLength)
	_, err = dec.Decode(make([]float64, 6), make([]int, 7))
	assert.ErrorIs(t, err, ldpc.ErrLength)
}

// TestDecode_CleanWordImmediateSuccess: when the hard decision already
// satisfies every check, each variant succeeds on its first syndrome check
// without modifying the estimate, in exactly one observed iteration.
func TestDecode_CleanWordImmediateSuccess(t *testing.T) {
	m := newTestMatrix(t)
	received := []float64{-3, -3, 3, 3, -3, -3} // strongly-signed 110011
	want := []int{1, 1, 0, 0, 1, 1}

	for _, v := range allVariants {
		rec := &trace.Recorder{}
		opts := bitflip.DefaultOptions()
		opts.Observer = rec
		dec, err := bitflip.New(m, v, opts)
		require.NoError(t, err)

		estimate := make([]int, 6)
		ok, err := dec.Decode(received, estimate)
		require.NoError(t, err, v.String())
		assert.True(t, ok, "%s must succeed on a clean word", v)
		assert.Equal(t, want, estimate, "%s must not modify a valid hard decision", v)
		assert.Len(t, rec.Iterations, 1, "%s must stop at the first check", v)
		assert.Empty(t, rec.FlipSets, "%s must not flip anything", v)
	}
}

// TestDecode_CorrectsSingleWeakError: one bit received with a small wrong
// sign is corrected by every variant, and the returned success flag is
// consistent with an independent syndrome recheck.
func TestDecode_CorrectsSingleWeakError(t *testing.T) {
	m := newTestMatrix(t)
	// 110011 at confidence 2, except bit 2 weakly flipped to −0.1 (hard=1).
	received := []float64{-2, -2, -0.1, 2, -2, -2}
	want := []int{1, 1, 0, 0, 1, 1}

	for _, v := range allVariants {
		dec, err := bitflip.New(m, v, bitflip.DefaultOptions())
		require.NoError(t, err)

		estimate := make([]int, 6)
		ok, err := dec.Decode(received, estimate)
		require.NoError(t, err, v.String())
		assert.True(t, ok, "%s must correct a single weak error", v)
		assert.Equal(t, want, estimate, v.String())
		assert.True(t, ldpc.IsCodeword(m, estimate), "success implies a valid codeword (%s)", v)
	}
}

// TestBF_TieSetFlipsTogether: bits 0 and 1 share the same check
// neighborhood, so a single error on bit 0 yields a tied maximum — both
// must flip in the same pass, deterministically.
func TestBF_TieSetFlipsTogether(t *testing.T) {
	m := newTestMatrix(t)
	rec := &trace.Recorder{}
	opts := bitflip.Options{MaxIter: 3, Observer: rec}
	dec, err := bitflip.New(m, bitflip.BF, opts)
	require.NoError(t, err)

	received := []float64{-1, 1, 1, 1, 1, 1} // hard decision 100000
	estimate := make([]int, 6)
	ok, err := dec.Decode(received, estimate)
	require.NoError(t, err)

	require.NotEmpty(t, rec.FlipSets)
	assert.Equal(t, []int{0, 1}, rec.FlipSets[0], "the whole tie set flips at once")
	// The tied pair oscillates, so the budget runs out: a normal outcome.
	assert.False(t, ok)
}

// TestBF_WBF_Agree_UniformConfidence: with every |received| equal, WBF's
// per-check weights degenerate to a constant and the weighted metric becomes
// an affine transform of BF's failed-check count (the column degree is
// uniform here), so both variants follow identical trajectories.
func TestBF_WBF_Agree_UniformConfidence(t *testing.T) {
	m := newTestMatrix(t)
	optsBF := bitflip.Options{MaxIter: 10}
	optsWBF := bitflip.Options{MaxIter: 10}

	rapid.Check(t, func(rt *rapid.T) {
		received := make([]float64, 6)
		for j := range received {
			if rapid.Bool().Draw(rt, "sign") {
				received[j] = -1
			} else {
				received[j] = 1
			}
		}

		bf, err := bitflip.New(m, bitflip.BF, optsBF)
		if err != nil {
			rt.Fatalf("New(BF): %v", err)
		}
		wbf, err := bitflip.New(m, bitflip.WBF, optsWBF)
		if err != nil {
			rt.Fatalf("New(WBF): %v", err)
		}

		estBF := make([]int, 6)
		estWBF := make([]int, 6)
		okBF, _ := bf.Decode(received, estBF)
		okWBF, _ := wbf.Decode(received, estWBF)

		if okBF != okWBF {
			rt.Fatalf("success flags diverge: BF=%v WBF=%v for %v", okBF, okWBF, received)
		}
		for j := range estBF {
			if estBF[j] != estWBF[j] {
				rt.Fatalf("estimates diverge at bit %d: BF=%v WBF=%v for %v", j, estBF, estWBF, received)
			}
		}
	})
}

// TestIMWBF_DegreeOneCheck: a degree-1 check still yields a well-defined
// per-edge weight (the bit's own |received|), and decoding proceeds
// normally.
func TestIMWBF_DegreeOneCheck(t *testing.T) {
	m, err := ldpc.New(2, 2,
		[][]int{{0}, {0, 1}},
		[][]int{{0, 1}, {1}},
	)
	require.NoError(t, err)

	dec, err := bitflip.New(m, bitflip.IMWBF, bitflip.DefaultOptions())
	require.NoError(t, err)

	estimate := make([]int, 2)
	ok, err := dec.Decode([]float64{-1, 1}, estimate)
	require.NoError(t, err)
	assert.True(t, ok, "the lone error must be corrected")
	assert.Equal(t, []int{0, 0}, estimate)
}

// TestVariant_String pins the acronyms used in logs and CLI output.
func TestVariant_String(t *testing.T) {
	assert.Equal(t, "BF", bitflip.BF.String())
	assert.Equal(t, "WBF", bitflip.WBF.String())
	assert.Equal(t, "MWBF", bitflip.MWBF.String())
	assert.Equal(t, "IMWBF", bitflip.IMWBF.String())
	assert.Equal(t, "unknown", bitflip.Variant(42).String())
}
