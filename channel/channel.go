package channel

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for channel construction and transmission.
var (
	// ErrBadSigma indicates a negative noise deviation.
	ErrBadSigma = errors.New("channel: sigma must be non-negative")

	// ErrBadProbability indicates a crossover probability outside [0,1].
	ErrBadProbability = errors.New("channel: probability out of range [0,1]")

	// ErrLength indicates a received buffer whose length differs from the
	// codeword length.
	ErrLength = errors.New("channel: received buffer length does not match codeword")
)

// Channel produces one observation vector per transmitted codeword.
// received is caller-allocated with len(received) == len(codeword) and is
// fully overwritten.
type Channel interface {
	Transmit(codeword []int, received []float64) error
}

// Modulate writes the BPSK symbols of codeword into symbols:
// bit 0 ⇒ +1, bit 1 ⇒ −1.
//
// Precondition: len(symbols) == len(codeword).
func Modulate(codeword []int, symbols []float64) {
	for j, b := range codeword {
		symbols[j] = float64(1 - 2*b)
	}
}

// AWGN is the additive white Gaussian noise channel over BPSK symbols:
// received[j] = (1−2·codeword[j]) + N(0, Sigma²).
type AWGN struct {
	sigma float64
	noise distuv.Normal
}

// NewAWGN returns an AWGN channel with noise deviation sigma, deterministic
// per seed. Sigma 0 is the noiseless channel (exact ±1 symbols).
func NewAWGN(sigma float64, seed uint64) (*AWGN, error) {
	if sigma < 0 {
		return nil, ErrBadSigma
	}
	return &AWGN{
		sigma: sigma,
		noise: distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)},
	}, nil
}

// Transmit implements Channel.
func (c *AWGN) Transmit(codeword []int, received []float64) error {
	if len(received) != len(codeword) {
		return ErrLength
	}
	Modulate(codeword, received)
	if c.sigma == 0 {
		return nil
	}
	for j := range received {
		received[j] += c.noise.Rand()
	}
	return nil
}

// BSC is the binary symmetric channel: each bit is flipped independently
// with probability P, then emitted as a unit-confidence BPSK symbol.
type BSC struct {
	p   float64
	rng *rand.Rand
}

// NewBSC returns a BSC with crossover probability p, deterministic per seed.
func NewBSC(p float64, seed uint64) (*BSC, error) {
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}
	return &BSC{p: p, rng: rand.New(rand.NewSource(seed))}, nil
}

// Transmit implements Channel.
func (c *BSC) Transmit(codeword []int, received []float64) error {
	if len(received) != len(codeword) {
		return ErrLength
	}
	for j, b := range codeword {
		if c.p > 0 && c.rng.Float64() < c.p {
			b ^= 1
		}
		received[j] = float64(1 - 2*b)
	}
	return nil
}
