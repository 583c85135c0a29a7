package mlg

import (
	"math"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Decoder runs one configured member of the MLG family against a fixed
// ControlMatrix. All scratch state is call-local, so concurrent Decode
// calls are safe.
type Decoder struct {
	m       *ldpc.ControlMatrix
	variant Variant
	maxIter int
	alpha   float64
	obs     ldpc.Observer
}

// New constructs an MLG decoder for m with the given variant. It fails fast
// on configuration problems (ErrNilMatrix, ErrUnknownVariant, ErrBadMaxIter,
// ErrBadAlpha) — never at decode time.
func New(m *ldpc.ControlMatrix, v Variant, opts Options) (*Decoder, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := opts.validate(v); err != nil {
		return nil, err
	}
	obs := opts.Observer
	if obs == nil {
		obs = ldpc.NopObserver{}
	}
	return &Decoder{m: m, variant: v, maxIter: opts.MaxIter, alpha: opts.Alpha, obs: obs}, nil
}

// Variant returns the configured family member.
func (d *Decoder) Variant() Variant { return d.variant }

// Decode implements ldpc.Decoder. OneStep runs its single corrective pass;
// the other variants run the saturating iterative loop.
func (d *Decoder) Decode(received []float64, estimate []int) (bool, error) {
	n := d.m.Bits()
	if len(received) != n || len(estimate) != n {
		return false, ldpc.ErrLength
	}
	if d.variant == OneStep {
		return d.decodeOneStep(received, estimate), nil
	}
	return d.decodeIterative(received, estimate), nil
}

// decodeOneStep applies the single majority-vote pass:
// flip bit j iff strictly more than γ/2 of its checks fail.
//
// Contract: if the initial hard decision is already a codeword the pass is
// skipped and success is exact. Otherwise the corrective pass is applied
// once and success is reported WITHOUT re-verifying the syndrome — the
// corrected word may still be invalid. This is the "one-step" contract;
// see the package doc.
func (d *Decoder) decodeOneStep(received []float64, estimate []int) bool {
	k, n := d.m.Checks(), d.m.Bits()
	gammaHalf := len(d.m.BitChecks(0)) / 2

	s := make([]int, k)
	var flips []int

	ldpc.HardDecision(received, estimate)
	d.obs.IterationStart(0)

	ok := ldpc.Syndrome(d.m, estimate, s)
	d.obs.SyndromeComputed(0, s, ok)
	if ok {
		return true
	}

	for j := 0; j < n; j++ {
		e := 0
		for _, i := range d.m.BitChecks(j) {
			e += s[i]
		}
		if e > gammaHalf {
			flips = append(flips, j)
		}
	}
	d.obs.TablesUpdated(0)
	d.obs.FlipSetChosen(0, flips)
	for _, j := range flips {
		estimate[j] ^= 1
	}
	return true
}

// decodeIterative runs the Hard/Soft/AdaptiveSoft loop.
//
// Steps per round (up to MaxIter):
//  1. Compute the syndrome; all-zero ⇒ success.
//  2. e[j] = Σ over i ∈ N[j] of (2·(s[i]⊕estimate[j])−1), weighted per edge
//     for AdaptiveSoft.
//  3. r[j] −= e[j] (AdaptiveSoft: −= Alpha·e[j]), saturated to [min,max];
//     estimate[j] = (r[j] < 0).
func (d *Decoder) decodeIterative(received []float64, estimate []int) bool {
	k, n := d.m.Checks(), d.m.Bits()
	gamma := len(d.m.BitChecks(0))
	soft := d.variant == Soft || d.variant == AdaptiveSoft
	adaptive := d.variant == AdaptiveSoft

	rMax := float64(gamma)
	if soft {
		rMax = float64(int(1)<<(softPrecision-1) - 1)
	}
	rMin := -rMax

	r := make([]float64, n)
	s := make([]int, k)
	e := make([]float64, n)

	// Initial reliabilities: ±max from the hard decision, or the quantized,
	// saturated channel observation for the soft variants.
	ldpc.HardDecision(received, estimate)
	for j := 0; j < n; j++ {
		if soft {
			r[j] = clamp(math.Round(received[j]*rMax), rMin, rMax)
		} else if estimate[j] == 1 {
			r[j] = rMin
		} else {
			r[j] = rMax
		}
	}

	// AdaptiveSoft per-edge weight table.
	//
	// TODO: the excluded-self minimum of |r| is computed below but the
	// stored weight stays pinned at the saturation floor rMin, so the
	// adaptive weighting degenerates to a constant. Wire wijMin into the
	// table once the intended weighting is settled.
	var w []float64
	if adaptive {
		w = make([]float64, k*n)
		for i := 0; i < k; i++ {
			for j := 0; j < n; j++ {
				wijMin := math.Inf(1)
				for _, jp := range d.m.CheckBits(i) {
					if jp == j {
						continue
					}
					wijMin = math.Min(wijMin, math.Abs(r[jp]))
				}
				w[i*n+j] = rMin
			}
		}
	}

	for iter := 0; iter < d.maxIter; iter++ {
		d.obs.IterationStart(iter)

		ok := ldpc.Syndrome(d.m, estimate, s)
		d.obs.SyndromeComputed(iter, s, ok)
		if ok {
			return true
		}

		for j := 0; j < n; j++ {
			e[j] = 0
			for _, i := range d.m.BitChecks(j) {
				vote := float64(2*(s[i]^estimate[j]) - 1)
				if adaptive {
					e[j] += vote * w[i*n+j]
				} else {
					e[j] += vote
				}
			}
		}
		d.obs.TablesUpdated(iter)

		for j := 0; j < n; j++ {
			if adaptive {
				r[j] = clamp(r[j]-d.alpha*e[j], rMin, rMax)
			} else {
				r[j] = clamp(r[j]-e[j], rMin, rMax)
			}
			if r[j] < 0 {
				estimate[j] = 1
			} else {
				estimate[j] = 0
			}
		}
	}
	return false
}

// clamp saturates v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
