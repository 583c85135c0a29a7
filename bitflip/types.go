package bitflip

import (
	"errors"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Variant selects one member of the bit-flipping family. The set is closed:
// all four share a single update rule parameterized by the variant.
type Variant int

const (
	// BF is plain bit flipping: the correction metric counts failed checks.
	BF Variant = iota

	// WBF weights each check by the least reliable incident observation.
	WBF

	// MWBF is WBF with a channel-confidence bias of −Alpha·|received[j]|.
	MWBF

	// IMWBF is MWBF with per-edge weights excluding the target bit itself.
	IMWBF
)

// String returns the conventional acronym for the variant.
func (v Variant) String() string {
	switch v {
	case BF:
		return "BF"
	case WBF:
		return "WBF"
	case MWBF:
		return "MWBF"
	case IMWBF:
		return "IMWBF"
	default:
		return "unknown"
	}
}

// flipEpsilon is the absolute tolerance under which two weighted correction
// metrics count as tied for the maximum (absorbs floating round-off).
const flipEpsilon = 0.001

// Sentinel errors for decoder construction.
var (
	// ErrNilMatrix indicates a nil *ldpc.ControlMatrix was passed to New.
	ErrNilMatrix = errors.New("bitflip: control matrix is nil")

	// ErrUnknownVariant indicates a Variant outside the closed BF..IMWBF set.
	ErrUnknownVariant = errors.New("bitflip: unknown variant")

	// ErrBadMaxIter indicates a non-positive iteration budget.
	ErrBadMaxIter = errors.New("bitflip: MaxIter must be positive")

	// ErrBadAlpha indicates a non-positive Alpha for a variant requiring one
	// (MWBF, IMWBF).
	ErrBadAlpha = errors.New("bitflip: Alpha must be positive for this variant")
)

// Options configures a bit-flipping decoder.
//
// Fields:
//   - MaxIter  — iteration budget; each round is one bounded correction
//     attempt. Exhausting it is a normal (false, nil) outcome.
//   - Alpha    — confidence-bias factor; required (>0) for MWBF and IMWBF,
//     ignored by BF and WBF.
//   - Observer — optional trace sink; nil means no tracing.
type Options struct {
	MaxIter  int
	Alpha    float64
	Observer ldpc.Observer
}

// DefaultOptions returns the conventional starting configuration:
// MaxIter=20, Alpha=0.2, no observer.
func DefaultOptions() Options {
	return Options{MaxIter: 20, Alpha: 0.2}
}

// validate reports the first configuration problem for the given variant.
func (o Options) validate(v Variant) error {
	if v < BF || v > IMWBF {
		return ErrUnknownVariant
	}
	if o.MaxIter < 1 {
		return ErrBadMaxIter
	}
	if (v == MWBF || v == IMWBF) && o.Alpha <= 0 {
		return ErrBadAlpha
	}
	return nil
}
