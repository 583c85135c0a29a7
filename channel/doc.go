// Package channel generates real-valued observation vectors from codewords
// for testing and simulation: BPSK modulation, the additive white Gaussian
// noise channel (AWGN) and the binary symmetric channel (BSC).
//
// The sign convention matches the decoding core: bit 0 maps to +1, bit 1 to
// −1, so a negative observation hard-decides to 1.
//
// Channels are deterministic under a caller-supplied seed. They carry their
// own random source and are therefore NOT safe for concurrent Transmit
// calls on one instance; use one channel per goroutine.
package channel
