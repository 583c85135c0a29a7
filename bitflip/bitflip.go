package bitflip

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Decoder runs one configured member of the bit-flipping family against a
// fixed ControlMatrix. It holds no per-call state: all scratch buffers are
// allocated at Decode entry, so concurrent Decode calls are safe.
type Decoder struct {
	m       *ldpc.ControlMatrix
	variant Variant
	maxIter int
	alpha   float64
	obs     ldpc.Observer
}

// New constructs a bit-flipping decoder for m with the given variant.
// It fails fast on configuration problems (ErrNilMatrix, ErrUnknownVariant,
// ErrBadMaxIter, ErrBadAlpha) — never at decode time.
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

// Decode implements ldpc.Decoder.
//
// Steps per round (up to MaxIter):
//  1. Compute the syndrome of the current estimate; on iteration 0 the
//     per-check weights (WBF/MWBF) are seeded in the same scan:
//     w[i] = min |received[j]| over j ∈ K[i].
//  2. All-zero syndrome ⇒ return (true, nil) immediately.
//  3. Compute the per-bit correction metric e[j] over the failed and
//     satisfied checks in N[j] (see package doc for the per-variant rule).
//     IMWBF seeds its per-edge weights lazily here on iteration 0.
//  4. Flip every bit tied for the maximum metric — exact equality for BF,
//     |e[j]−max| < 0.001 for the weighted variants — all in one pass.
//
// After MaxIter rounds without success: (false, nil); estimate holds the
// last guess.
func (d *Decoder) Decode(received []float64, estimate []int) (bool, error) {
	k, n := d.m.Checks(), d.m.Bits()
	if len(received) != n || len(estimate) != n {
		return false, ldpc.ErrLength
	}

	weighted := d.variant != BF
	modified := d.variant == MWBF || d.variant == IMWBF
	improved := d.variant == IMWBF

	// Call-local scratch: per-check syndrome, per-bit metric, and the weight
	// table — per check for WBF/MWBF, per incident (check,bit) pair for IMWBF.
	var w []float64
	switch {
	case improved:
		w = make([]float64, k*n)
	case weighted:
		w = make([]float64, k)
	}
	for i := range w {
		w[i] = math.Inf(1)
	}
	s := make([]int, k)
	e := make([]float64, n)
	var flips []int

	ldpc.HardDecision(received, estimate)

	for iter := 0; iter < d.maxIter; iter++ {
		d.obs.IterationStart(iter)

		// 1) Syndrome scan; WBF/MWBF weights piggyback on the first pass.
		ok := true
		for i := 0; i < k; i++ {
			s[i] = 0
			for _, j := range d.m.CheckBits(i) {
				s[i] ^= estimate[j]
				if iter == 0 && weighted && !improved {
					w[i] = math.Min(w[i], math.Abs(received[j]))
				}
			}
			if s[i] == 1 {
				ok = false
			}
		}
		d.obs.SyndromeComputed(iter, s, ok)

		// 2) Valid codeword: stop without touching the estimate again.
		if ok {
			return true, nil
		}

		// 3) Per-bit correction metric.
		for j := 0; j < n; j++ {
			if modified {
				e[j] = -d.alpha * math.Abs(received[j])
			} else {
				e[j] = 0
			}
			for _, i := range d.m.BitChecks(j) {
				if improved && iter == 0 {
					d.seedEdgeWeight(w, received, i, j, n)
				}
				switch {
				case improved:
					e[j] += float64(2*s[i]-1) * w[i*n+j]
				case weighted:
					e[j] += float64(2*s[i]-1) * w[i]
				default:
					e[j] += float64(s[i])
				}
			}
		}
		d.obs.TablesUpdated(iter)

		// 4) Flip the whole tie set for the maximum metric.
		tMax := floats.Max(e)
		flips = flips[:0]
		for j := 0; j < n; j++ {
			if weighted {
				if math.Abs(e[j]-tMax) < flipEpsilon {
					flips = append(flips, j)
				}
			} else if e[j] == tMax {
				flips = append(flips, j)
			}
		}
		d.obs.FlipSetChosen(iter, flips)
		for _, j := range flips {
			estimate[j] ^= 1
		}
	}
	return false, nil
}

// seedEdgeWeight fills w[i*n+j] = min |received[j']| over j' ∈ K[i], j' ≠ j.
// A degree-1 check leaves that minimum over an empty set; the weight then
// falls back to the bit's own |received[j]| so no +Inf sentinel survives.
func (d *Decoder) seedEdgeWeight(w, received []float64, i, j, n int) {
	for _, jp := range d.m.CheckBits(i) {
		if jp == j {
			continue
		}
		w[i*n+j] = math.Min(w[i*n+j], math.Abs(received[jp]))
	}
	if math.IsInf(w[i*n+j], 1) {
		w[i*n+j] = math.Abs(received[j])
	}
}
