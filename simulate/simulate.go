package simulate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlcode/channel"
	"github.com/katalvlaran/lvlcode/ldpc"
)

// Sentinel errors for harness configuration.
var (
	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("simulate: Trials must be positive")

	// ErrEmptyCodeword indicates an empty transmitted codeword.
	ErrEmptyCodeword = errors.New("simulate: codeword must be non-empty")
)

// Config describes one Monte-Carlo run.
type Config struct {
	// Trials is the number of independent transmit/decode rounds.
	Trials int

	// Codeword is the transmitted word; it should satisfy the decoder's
	// parity-check matrix, otherwise every frame counts as an error.
	Codeword []int
}

// Result aggregates a run.
type Result struct {
	Trials      int
	FrameErrors int
	BitErrors   int

	// BER and FER are the bit and frame error rates over the run.
	BER float64
	FER float64

	// MeanTrialBitErrors and StdTrialBitErrors summarize the per-trial
	// bit-error distribution.
	MeanTrialBitErrors float64
	StdTrialBitErrors  float64
}

// Run executes cfg.Trials rounds of transmit-then-decode and aggregates the
// outcome. Channel and decoder errors abort the run; decode non-convergence
// does not (it is an error frame, not a failure of the harness).
func Run(d ldpc.Decoder, ch channel.Channel, cfg Config) (Result, error) {
	if cfg.Trials < 1 {
		return Result{}, ErrBadTrials
	}
	n := len(cfg.Codeword)
	if n == 0 {
		return Result{}, ErrEmptyCodeword
	}

	received := make([]float64, n)
	estimate := make([]int, n)
	perTrial := make([]float64, 0, cfg.Trials)

	res := Result{Trials: cfg.Trials}
	for t := 0; t < cfg.Trials; t++ {
		if err := ch.Transmit(cfg.Codeword, received); err != nil {
			return Result{}, fmt.Errorf("trial %d: %w", t, err)
		}
		ok, err := d.Decode(received, estimate)
		if err != nil {
			return Result{}, fmt.Errorf("trial %d: %w", t, err)
		}

		bitErrs := 0
		for j, b := range cfg.Codeword {
			if estimate[j] != b {
				bitErrs++
			}
		}
		if !ok || bitErrs > 0 {
			res.FrameErrors++
		}
		res.BitErrors += bitErrs
		perTrial = append(perTrial, float64(bitErrs))
	}

	res.BER = float64(res.BitErrors) / float64(cfg.Trials*n)
	res.FER = float64(res.FrameErrors) / float64(cfg.Trials)
	res.MeanTrialBitErrors = stat.Mean(perTrial, nil)
	res.StdTrialBitErrors = stat.StdDev(perTrial, nil)
	return res, nil
}
