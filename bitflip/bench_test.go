package bitflip_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/bitflip"
	"github.com/katalvlaran/lvlcode/builder"
	"github.com/katalvlaran/lvlcode/channel"
)

// benchmarkDecode is a helper running one variant against a (3,6)-regular
// code of length n with a fixed noisy observation vector. It resets the
// timer after setup and fails on unexpected errors.
func benchmarkDecode(b *testing.B, v bitflip.Variant, n int) {
	m, err := builder.Gallager(n, 3, 6, 42)
	if err != nil {
		b.Fatalf("Gallager: %v", err)
	}
	ch, err := channel.NewAWGN(0.5, 7)
	if err != nil {
		b.Fatalf("NewAWGN: %v", err)
	}
	received := make([]float64, n)
	if err = ch.Transmit(make([]int, n), received); err != nil {
		b.Fatalf("Transmit: %v", err)
	}

	dec, err := bitflip.New(m, v, bitflip.DefaultOptions())
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	estimate := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dec.Decode(received, estimate); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

// BenchmarkDecode_BF_N96 benchmarks plain bit flipping on a length-96 code.
func BenchmarkDecode_BF_N96(b *testing.B) { benchmarkDecode(b, bitflip.BF, 96) }

// BenchmarkDecode_WBF_N96 benchmarks weighted bit flipping on a length-96 code.
func BenchmarkDecode_WBF_N96(b *testing.B) { benchmarkDecode(b, bitflip.WBF, 96) }

// BenchmarkDecode_IMWBF_N96 benchmarks the per-edge weighted variant, which
// additionally seeds a k×n weight table per call.
func BenchmarkDecode_IMWBF_N96(b *testing.B) { benchmarkDecode(b, bitflip.IMWBF, 96) }

// BenchmarkDecode_BF_N480 benchmarks plain bit flipping on a length-480 code.
func BenchmarkDecode_BF_N480(b *testing.B) { benchmarkDecode(b, bitflip.BF, 480) }
