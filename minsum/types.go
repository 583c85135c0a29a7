package minsum

import (
	"errors"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Sentinel errors for decoder construction.
var (
	// ErrNilMatrix indicates a nil *ldpc.ControlMatrix was passed to New.
	ErrNilMatrix = errors.New("minsum: control matrix is nil")

	// ErrBadMaxIter indicates a non-positive iteration budget.
	ErrBadMaxIter = errors.New("minsum: MaxIter must be positive")

	// ErrBadAlpha indicates a non-positive Alpha while a correction
	// (Normalized or Offset) is enabled.
	ErrBadAlpha = errors.New("minsum: Alpha must be positive for normalized/offset correction")

	// ErrNormalizedAndOffset indicates both corrections were requested at
	// once; the combination is unsupported and rejected at construction.
	ErrNormalizedAndOffset = errors.New("minsum: normalized and offset correction are mutually exclusive")
)

// Options configures a min-sum decoder.
//
// Fields:
//   - MaxIter    — iteration budget; exhausting it is a normal (false, nil)
//     outcome.
//   - Alpha      — correction strength: scaling divisor for Normalized,
//     subtracted offset for Offset. Required (>0) when either correction is
//     enabled, ignored otherwise.
//   - Normalized — enable normalized min-sum, R = (1/Alpha)·(±r).
//   - Offset     — enable offset min-sum, R = ±max(r−Alpha, 0).
//   - Observer   — optional trace sink; nil means no tracing.
//
// Normalized and Offset are mutually exclusive; setting both fails New with
// ErrNormalizedAndOffset.
type Options struct {
	MaxIter    int
	Alpha      float64
	Normalized bool
	Offset     bool
	Observer   ldpc.Observer
}

// DefaultOptions returns plain min-sum with MaxIter=20 and no observer.
func DefaultOptions() Options {
	return Options{MaxIter: 20}
}

// validate reports the first configuration problem.
func (o Options) validate() error {
	if o.MaxIter < 1 {
		return ErrBadMaxIter
	}
	if o.Normalized && o.Offset {
		return ErrNormalizedAndOffset
	}
	if (o.Normalized || o.Offset) && o.Alpha <= 0 {
		return ErrBadAlpha
	}
	return nil
}
