package minsum

import (
	"math"

	"github.com/katalvlaran/lvlcode/ldpc"
)

// Decoder runs min-sum message passing against a fixed ControlMatrix.
// All message tables are call-local, so concurrent Decode calls are safe.
type Decoder struct {
	m          *ldpc.ControlMatrix
	maxIter    int
	alpha      float64
	normalized bool
	offset     bool
	obs        ldpc.Observer
}

// New constructs a min-sum decoder for m. Configuration problems —
// including the unsupported Normalized+Offset combination — fail here,
// before any decode attempt.
func New(m *ldpc.ControlMatrix, opts Options) (*Decoder, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	obs := opts.Observer
	if obs == nil {
		obs = ldpc.NopObserver{}
	}
	return &Decoder{
		m:          m,
		maxIter:    opts.MaxIter,
		alpha:      opts.Alpha,
		normalized: opts.Normalized,
		offset:     opts.Offset,
		obs:        obs,
	}, nil
}

// Decode implements ldpc.Decoder.
//
// Steps:
//  1. Hard-decide received; if that word is already a codeword, return
//     success without allocating the Q/R tables.
//  2. Per iteration: seed Q from received (iteration 0 only), scan each
//     check for min1/min2/aggregate-sign, update R with the two-smallest
//     trick and the configured correction, then run the bit pass
//     (Le sums, new estimate, extrinsic Q update).
//  3. Recompute the syndrome on the new estimate; all-zero ⇒ success,
//     otherwise continue until MaxIter is exhausted ⇒ (false, nil).
func (d *Decoder) Decode(received []float64, estimate []int) (bool, error) {
	k, n := d.m.Checks(), d.m.Bits()
	if len(received) != n || len(estimate) != n {
		return false, ldpc.ErrLength
	}

	// 1) Raw hard decision may already satisfy every check.
	ldpc.HardDecision(received, estimate)
	if ldpc.IsCodeword(d.m, estimate) {
		return true, nil
	}

	// Call-local message tables, one entry per incident (check,bit) pair,
	// plus the per-check two-smallest/sign scratch.
	q := make([]float64, k*n)
	r := make([]float64, k*n)
	min1 := make([]float64, k)
	min2 := make([]float64, k)
	sgn := make([]int, k)
	s := make([]int, k)

	for iter := 0; iter < d.maxIter; iter++ {
		d.obs.IterationStart(iter)

		// 2a) Seed bit→check messages from the channel on the first round.
		if iter == 0 {
			for i := 0; i < k; i++ {
				for _, j := range d.m.CheckBits(i) {
					q[i*n+j] = received[j]
				}
			}
		}

		// 2b) Check-node scan and update.
		scanChecks(d.m, q, min1, min2, sgn)
		d.updateCheckMessages(q, r, min1, min2, sgn)
		d.obs.TablesUpdated(iter)

		// 2c) Bit pass: totals, new estimate, extrinsic Q update.
		for j := 0; j < n; j++ {
			le := 0.0
			for _, i := range d.m.BitChecks(j) {
				le += r[i*n+j]
			}
			if received[j]+le < 0 {
				estimate[j] = 1
			} else {
				estimate[j] = 0
			}
			for _, i := range d.m.BitChecks(j) {
				q[i*n+j] = received[j] + le - r[i*n+j]
			}
		}

		// 3) Convergence check on the fresh estimate.
		ok := ldpc.Syndrome(d.m, estimate, s)
		d.obs.SyndromeComputed(iter, s, ok)
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// scanChecks records, per check i, the two smallest |Q[i,j]| magnitudes
// (min1 ≤ min2) and the XOR of the message sign bits over K[i].
func scanChecks(m *ldpc.ControlMatrix, q, min1, min2 []float64, sgn []int) {
	k, n := m.Checks(), m.Bits()
	for i := 0; i < k; i++ {
		min1[i] = math.MaxFloat64
		min2[i] = math.MaxFloat64
		sgn[i] = 0
		for _, j := range m.CheckBits(i) {
			qv := q[i*n+j]
			qAbs := math.Abs(qv)
			if qAbs < min1[i] {
				min2[i] = min1[i]
				min1[i] = qAbs
			} else if qAbs < min2[i] {
				min2[i] = qAbs
			}
			if qv < 0 {
				sgn[i] ^= 1
			}
		}
	}
}

// updateCheckMessages fills R from the scan results. The raw magnitude is
// always min1[i], or min2[i] when the target message itself attains min1
// (excluding the bit's own contribution); the sign is the aggregate sign
// with the target's own sign removed. The configured correction is applied
// to the magnitude.
func (d *Decoder) updateCheckMessages(q, r, min1, min2 []float64, sgn []int) {
	k, n := d.m.Checks(), d.m.Bits()
	for i := 0; i < k; i++ {
		for _, j := range d.m.CheckBits(i) {
			qv := q[i*n+j]
			mag := min1[i]
			if math.Abs(qv) == min1[i] {
				mag = min2[i]
			}
			switch {
			case d.normalized:
				mag = mag / d.alpha
			case d.offset:
				mag = math.Max(mag-d.alpha, 0)
			}
			neg := sgn[i]
			if qv < 0 {
				neg ^= 1
			}
			if neg == 1 {
				r[i*n+j] = -mag
			} else {
				r[i*n+j] = mag
			}
		}
	}
}
