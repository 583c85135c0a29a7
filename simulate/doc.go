// Package simulate runs Monte-Carlo decoding trials — codeword → channel →
// decoder — and aggregates bit and frame error rates.
//
// A frame counts as an error when the decoder either fails to converge or
// converges to a word different from the transmitted one (an undetected
// miscorrection). Bit errors are counted against the transmitted codeword
// regardless of the reported success flag.
package simulate
