package channel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcode/channel"
)

// TestModulate verifies the BPSK sign convention: 0 ⇒ +1, 1 ⇒ −1.
func TestModulate(t *testing.T) {
	symbols := make([]float64, 4)
	channel.Modulate([]int{0, 1, 1, 0}, symbols)
	assert.Equal(t, []float64{1, -1, -1, 1}, symbols)
}

// TestNewAWGN_Validation rejects negative deviations.
func TestNewAWGN_Validation(t *testing.T) {
	_, err := channel.NewAWGN(-0.1, 1)
	assert.ErrorIs(t, err, channel.ErrBadSigma)
}

// TestAWGN_Noiseless: Sigma 0 reproduces the exact BPSK symbols.
func TestAWGN_Noiseless(t *testing.T) {
	ch, err := channel.NewAWGN(0, 1)
	require.NoError(t, err)

	received := make([]float64, 4)
	require.NoError(t, ch.Transmit([]int{1, 0, 0, 1}, received))
	assert.Equal(t, []float64{-1, 1, 1, -1}, received)
}

// TestAWGN_DeterministicPerSeed: two channels with the same seed emit the
// same noise sequence.
func TestAWGN_DeterministicPerSeed(t *testing.T) {
	a, err := channel.NewAWGN(0.8, 99)
	require.NoError(t, err)
	b, err := channel.NewAWGN(0.8, 99)
	require.NoError(t, err)

	word := make([]int, 16)
	ra := make([]float64, 16)
	rb := make([]float64, 16)
	require.NoError(t, a.Transmit(word, ra))
	require.NoError(t, b.Transmit(word, rb))
	assert.Equal(t, ra, rb)
}

// TestAWGN_LengthMismatch verifies ErrLength.
func TestAWGN_LengthMismatch(t *testing.T) {
	ch, err := channel.NewAWGN(0.5, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, ch.Transmit([]int{0, 1}, make([]float64, 3)), channel.ErrLength)
}

// TestNewBSC_Validation rejects probabilities outside [0,1].
func TestNewBSC_Validation(t *testing.T) {
	_, err := channel.NewBSC(-0.01, 1)
	assert.ErrorIs(t, err, channel.ErrBadProbability)
	_, err = channel.NewBSC(1.01, 1)
	assert.ErrorIs(t, err, channel.ErrBadProbability)
}

// TestBSC_Extremes: P=0 is the identity on signs, P=1 flips every bit.
func TestBSC_Extremes(t *testing.T) {
	word := []int{0, 1, 0, 1}

	ch, err := channel.NewBSC(0, 1)
	require.NoError(t, err)
	received := make([]float64, 4)
	require.NoError(t, ch.Transmit(word, received))
	assert.Equal(t, []float64{1, -1, 1, -1}, received)

	ch, err = channel.NewBSC(1, 1)
	require.NoError(t, err)
	require.NoError(t, ch.Transmit(word, received))
	assert.Equal(t, []float64{-1, 1, -1, 1}, received)
}

// TestBSC_CrossoverRate: over many bits the observed flip rate approaches P.
func TestBSC_CrossoverRate(t *testing.T) {
	const n = 20000
	ch, err := channel.NewBSC(0.25, 7)
	require.NoError(t, err)

	word := make([]int, n)
	received := make([]float64, n)
	require.NoError(t, ch.Transmit(word, received))

	flips := 0
	for _, v := range received {
		if v < 0 {
			flips++
		}
	}
	rate := float64(flips) / n
	assert.InDelta(t, 0.25, rate, 0.02, "empirical crossover rate")
}
