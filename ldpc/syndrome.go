package ldpc

// HardDecision maps channel observations to bits via the sign rule:
// estimate[j] = 1 if received[j] < 0, else 0.
//
// Precondition (hot path, not validated): len(received) == len(estimate).
// Decoders validate lengths once at Decode entry.
func HardDecision(received []float64, estimate []int) {
	for j, v := range received {
		if v < 0 {
			estimate[j] = 1
		} else {
			estimate[j] = 0
		}
	}
}

// Syndrome fills syndrome[i] with the XOR parity of estimate over K[i] for
// every check i and reports whether all k entries are zero (valid codeword).
//
// Preconditions (hot path, not validated): len(estimate) == m.Bits(),
// len(syndrome) == m.Checks().
//
// Complexity: O(E), the number of incident pairs.
func Syndrome(m *ControlMatrix, estimate, syndrome []int) bool {
	ok := true
	for i := 0; i < m.k; i++ {
		s := 0
		for _, j := range m.checkBits[i] {
			s ^= estimate[j]
		}
		syndrome[i] = s
		if s == 1 {
			ok = false
		}
	}
	return ok
}

// IsCodeword reports whether estimate satisfies every parity check of m,
// without materializing the syndrome vector. Short-circuits on the first
// violated check.
func IsCodeword(m *ControlMatrix, estimate []int) bool {
	for i := 0; i < m.k; i++ {
		s := 0
		for _, j := range m.checkBits[i] {
			s ^= estimate[j]
		}
		if s == 1 {
			return false
		}
	}
	return true
}
