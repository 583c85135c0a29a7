// Command lvlsim runs Monte-Carlo decoding simulations: it builds a regular
// Gallager code, pushes the all-zero codeword through a configured channel
// and decoder, and reports bit/frame error rates.
//
// Configuration comes from an optional YAML file plus flag overrides:
//
//	lvlsim --config sim.yaml --family minsum --variant normalized --alpha 1.25
//	lvlsim --family bitflip --variant wbf --sigma 0.6 --trials 5000 -v
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcode/bitflip"
	"github.com/katalvlaran/lvlcode/builder"
	"github.com/katalvlaran/lvlcode/channel"
	"github.com/katalvlaran/lvlcode/ldpc"
	"github.com/katalvlaran/lvlcode/minsum"
	"github.com/katalvlaran/lvlcode/mlg"
	"github.com/katalvlaran/lvlcode/simulate"
	"github.com/katalvlaran/lvlcode/trace"
)

// config mirrors the YAML file layout; zero values fall back to defaults.
type config struct {
	Code struct {
		N    int   `yaml:"n"`
		Wc   int   `yaml:"wc"`
		Wr   int   `yaml:"wr"`
		Seed int64 `yaml:"seed"`
	} `yaml:"code"`
	Channel struct {
		Type  string  `yaml:"type"` // awgn | bsc
		Sigma float64 `yaml:"sigma"`
		P     float64 `yaml:"p"`
		Seed  uint64  `yaml:"seed"`
	} `yaml:"channel"`
	Decoder struct {
		Family  string  `yaml:"family"`  // bitflip | mlg | minsum
		Variant string  `yaml:"variant"` // family-specific, see newDecoder
		MaxIter int     `yaml:"max_iter"`
		Alpha   float64 `yaml:"alpha"`
	} `yaml:"decoder"`
	Trials int `yaml:"trials"`
}

func defaultConfig() config {
	var c config
	c.Code.N, c.Code.Wc, c.Code.Wr, c.Code.Seed = 96, 3, 6, 42
	c.Channel.Type, c.Channel.Sigma, c.Channel.P, c.Channel.Seed = "awgn", 0.6, 0.02, 1
	c.Decoder.Family, c.Decoder.Variant = "minsum", "plain"
	c.Decoder.MaxIter, c.Decoder.Alpha = 30, 1.25
	c.Trials = 1000
	return c
}

func main() {
	logger := log.New(os.Stderr)

	cfg := defaultConfig()
	var (
		configPath string
		verbose    bool
	)
	pflag.StringVar(&configPath, "config", "", "YAML configuration file")
	pflag.StringVar(&cfg.Decoder.Family, "family", cfg.Decoder.Family, "decoder family: bitflip | mlg | minsum")
	pflag.StringVar(&cfg.Decoder.Variant, "variant", cfg.Decoder.Variant, "family variant")
	pflag.IntVar(&cfg.Decoder.MaxIter, "max-iter", cfg.Decoder.MaxIter, "iteration budget")
	pflag.Float64Var(&cfg.Decoder.Alpha, "alpha", cfg.Decoder.Alpha, "scaling/offset/bias factor")
	pflag.StringVar(&cfg.Channel.Type, "channel", cfg.Channel.Type, "channel: awgn | bsc")
	pflag.Float64Var(&cfg.Channel.Sigma, "sigma", cfg.Channel.Sigma, "AWGN noise deviation")
	pflag.Float64Var(&cfg.Channel.P, "p", cfg.Channel.P, "BSC crossover probability")
	pflag.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of Monte-Carlo trials")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log every decoder trace point")
	pflag.Parse()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			logger.Fatal("read config", "path", configPath, "err", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			logger.Fatal("parse config", "path", configPath, "err", err)
		}
		// Re-apply flags so explicit overrides win over the file.
		pflag.Parse()
	}

	var obs ldpc.Observer
	if verbose {
		logger.SetLevel(log.DebugLevel)
		obs = trace.New(logger)
	}

	m, err := builder.Gallager(cfg.Code.N, cfg.Code.Wc, cfg.Code.Wr, cfg.Code.Seed)
	if err != nil {
		logger.Fatal("build code", "err", err)
	}

	ch, err := newChannel(cfg)
	if err != nil {
		logger.Fatal("build channel", "err", err)
	}

	dec, err := newDecoder(cfg, m, obs)
	if err != nil {
		logger.Fatal("build decoder", "err", err)
	}

	// The all-zero word satisfies every parity check of any binary code.
	res, err := simulate.Run(dec, ch, simulate.Config{
		Trials:   cfg.Trials,
		Codeword: make([]int, cfg.Code.N),
	})
	if err != nil {
		logger.Fatal("simulation", "err", err)
	}

	logger.Info("simulation finished",
		"code", fmt.Sprintf("(%d,%d,%d)", cfg.Code.N, cfg.Code.Wc, cfg.Code.Wr),
		"decoder", cfg.Decoder.Family+"/"+cfg.Decoder.Variant,
		"trials", res.Trials,
		"BER", res.BER,
		"FER", res.FER,
		"bit_errors", res.BitErrors,
		"frame_errors", res.FrameErrors,
		"mean_trial_bit_errors", res.MeanTrialBitErrors,
		"std_trial_bit_errors", res.StdTrialBitErrors,
	)
}

// newChannel builds the configured observation channel.
func newChannel(cfg config) (channel.Channel, error) {
	switch strings.ToLower(cfg.Channel.Type) {
	case "awgn":
		return channel.NewAWGN(cfg.Channel.Sigma, cfg.Channel.Seed)
	case "bsc":
		return channel.NewBSC(cfg.Channel.P, cfg.Channel.Seed)
	default:
		return nil, fmt.Errorf("unknown channel %q", cfg.Channel.Type)
	}
}

// newDecoder builds the configured decoder for m.
func newDecoder(cfg config, m *ldpc.ControlMatrix, obs ldpc.Observer) (ldpc.Decoder, error) {
	variant := strings.ToLower(cfg.Decoder.Variant)
	switch strings.ToLower(cfg.Decoder.Family) {
	case "bitflip":
		opts := bitflip.Options{MaxIter: cfg.Decoder.MaxIter, Alpha: cfg.Decoder.Alpha, Observer: obs}
		v, ok := map[string]bitflip.Variant{
			"bf": bitflip.BF, "wbf": bitflip.WBF, "mwbf": bitflip.MWBF, "imwbf": bitflip.IMWBF,
		}[variant]
		if !ok {
			return nil, fmt.Errorf("unknown bitflip variant %q", cfg.Decoder.Variant)
		}
		return bitflip.New(m, v, opts)
	case "mlg":
		opts := mlg.Options{MaxIter: cfg.Decoder.MaxIter, Alpha: cfg.Decoder.Alpha, Observer: obs}
		v, ok := map[string]mlg.Variant{
			"onestep": mlg.OneStep, "hard": mlg.Hard, "soft": mlg.Soft, "adaptive": mlg.AdaptiveSoft,
		}[variant]
		if !ok {
			return nil, fmt.Errorf("unknown mlg variant %q", cfg.Decoder.Variant)
		}
		return mlg.New(m, v, opts)
	case "minsum":
		opts := minsum.Options{MaxIter: cfg.Decoder.MaxIter, Alpha: cfg.Decoder.Alpha, Observer: obs}
		switch variant {
		case "plain":
		case "normalized":
			opts.Normalized = true
		case "offset":
			opts.Offset = true
		default:
			return nil, fmt.Errorf("unknown minsum variant %q", cfg.Decoder.Variant)
		}
		return minsum.New(m, opts)
	default:
		return nil, fmt.Errorf("unknown decoder family %q", cfg.Decoder.Family)
	}
}
