package minsum

// Test-only bridges to package privates, so the black-box test package can
// pin internal invariants (check-update magnitudes) without widening the
// public API.

// ScanChecks exposes scanChecks for white-box tests.
var ScanChecks = scanChecks

// UpdateCheckMessages exposes Decoder.updateCheckMessages for white-box tests.
func (d *Decoder) UpdateCheckMessages(q, r, min1, min2 []float64, sgn []int) {
	d.updateCheckMessages(q, r, min1, min2, sgn)
}
