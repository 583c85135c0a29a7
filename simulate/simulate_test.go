package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcode/bitflip"
	"github.com/katalvlaran/lvlcode/builder"
	"github.com/katalvlaran/lvlcode/channel"
	"github.com/katalvlaran/lvlcode/ldpc"
	"github.com/katalvlaran/lvlcode/minsum"
	"github.com/katalvlaran/lvlcode/mlg"
	"github.com/katalvlaran/lvlcode/simulate"
)

// TestRun_Validation verifies the harness configuration gates.
func TestRun_Validation(t *testing.T) {
	m, err := builder.Gallager(24, 3, 4, 1)
	require.NoError(t, err)
	dec, err := minsum.New(m, minsum.DefaultOptions())
	require.NoError(t, err)
	ch, err := channel.NewAWGN(0, 1)
	require.NoError(t, err)

	_, err = simulate.Run(dec, ch, simulate.Config{Trials: 0, Codeword: make([]int, 24)})
	assert.ErrorIs(t, err, simulate.ErrBadTrials)

	_, err = simulate.Run(dec, ch, simulate.Config{Trials: 10})
	assert.ErrorIs(t, err, simulate.ErrEmptyCodeword)
}

// TestRun_NoiselessIsErrorFree: on a noiseless channel every decoder family
// reports zero BER and FER.
func TestRun_NoiselessIsErrorFree(t *testing.T) {
	m, err := builder.Gallager(24, 3, 4, 1)
	require.NoError(t, err)
	ch, err := channel.NewAWGN(0, 1)
	require.NoError(t, err)

	bfDec, err := bitflip.New(m, bitflip.WBF, bitflip.DefaultOptions())
	require.NoError(t, err)
	mlgDec, err := mlg.New(m, mlg.Hard, mlg.DefaultOptions())
	require.NoError(t, err)
	msDec, err := minsum.New(m, minsum.DefaultOptions())
	require.NoError(t, err)

	for _, dec := range []ldpc.Decoder{bfDec, mlgDec, msDec} {
		res, err := simulate.Run(dec, ch, simulate.Config{
			Trials:   50,
			Codeword: make([]int, 24),
		})
		require.NoError(t, err)
		assert.Zero(t, res.BER)
		assert.Zero(t, res.FER)
		assert.Zero(t, res.BitErrors)
		assert.Zero(t, res.FrameErrors)
		assert.Equal(t, 50, res.Trials)
		assert.Zero(t, res.MeanTrialBitErrors)
	}
}

// TestRun_CountsFrameAndBitErrors: a BSC harsh enough to defeat the decoder
// yields consistent aggregate counts and rates.
func TestRun_CountsFrameAndBitErrors(t *testing.T) {
	m, err := builder.Gallager(24, 3, 4, 1)
	require.NoError(t, err)
	dec, err := bitflip.New(m, bitflip.BF, bitflip.Options{MaxIter: 5})
	require.NoError(t, err)
	ch, err := channel.NewBSC(0.5, 3)
	require.NoError(t, err)

	const trials = 40
	res, err := simulate.Run(dec, ch, simulate.Config{
		Trials:   trials,
		Codeword: make([]int, 24),
	})
	require.NoError(t, err)

	assert.Equal(t, float64(res.FrameErrors)/trials, res.FER)
	assert.Equal(t, float64(res.BitErrors)/(trials*24), res.BER)
	assert.Positive(t, res.FrameErrors, "a 50% crossover rate must defeat plain BF")
	assert.GreaterOrEqual(t, res.FrameErrors, 1)
	assert.LessOrEqual(t, res.FER, 1.0)
}
