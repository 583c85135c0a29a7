package mlg

import (
	"errors"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Variant selects one member of the majority-logic-gate family.
type Variant int

const (
	// OneStep applies a single majority-vote pass and reports success
	// unconditionally (no post-verification; see package doc).
	OneStep Variant = iota

	// Hard iterates with reliabilities saturated to ±γ, seeded from the
	// hard decision.
	Hard

	// Soft iterates with reliabilities saturated to ±(2^(x−1)−1), x=3,
	// seeded from the quantized channel observations.
	Soft

	// AdaptiveSoft is Soft with per-edge weights and an Alpha-scaled update.
	AdaptiveSoft
)

// String returns the conventional name for the variant.
func (v Variant) String() string {
	switch v {
	case OneStep:
		return "OneStepMLG"
	case Hard:
		return "HardMLG"
	case Soft:
		return "SoftMLG"
	case AdaptiveSoft:
		return "AdaptiveSoftMLG"
	default:
		return "unknown"
	}
}

// softPrecision is the fixed-point precision x of the soft variants:
// reliabilities saturate to ±(2^(x−1)−1), i.e. ±3 for x=3.
const softPrecision = 3

// Sentinel errors for decoder construction.
var (
	// ErrNilMatrix indicates a nil *ldpc.ControlMatrix was passed to New.
	ErrNilMatrix = errors.New("mlg: control matrix is nil")

	// ErrUnknownVariant indicates a Variant outside the closed family set.
	ErrUnknownVariant = errors.New("mlg: unknown variant")

	// ErrBadMaxIter indicates a non-positive iteration budget.
	ErrBadMaxIter = errors.New("mlg: MaxIter must be positive")

	// ErrBadAlpha indicates a non-positive Alpha for AdaptiveSoft.
	ErrBadAlpha = errors.New("mlg: Alpha must be positive for AdaptiveSoft")
)

// Options configures a majority-logic decoder.
//
// Fields:
//   - MaxIter  — iteration budget for the iterative variants; ignored by
//     OneStep (which always runs exactly one pass).
//   - Alpha    — update scale; required (>0) for AdaptiveSoft, ignored
//     elsewhere.
//   - Observer — optional trace sink; nil means no tracing.
type Options struct {
	MaxIter  int
	Alpha    float64
	Observer ldpc.Observer
}

// DefaultOptions returns MaxIter=20, Alpha=0.5, no observer.
func DefaultOptions() Options {
	return Options{MaxIter: 20, Alpha: 0.5}
}

// validate reports the first configuration problem for the given variant.
func (o Options) validate(v Variant) error {
	if v < OneStep || v > AdaptiveSoft {
		return ErrUnknownVariant
	}
	if v != OneStep && o.MaxIter < 1 {
		return ErrBadMaxIter
	}
	if v == AdaptiveSoft && o.Alpha <= 0 {
		return ErrBadAlpha
	}
	return nil
}
