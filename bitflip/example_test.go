package bitflip_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcode/bitflip"
	"github.com/katalvlaran/lvlcode/builder"
)

// ExampleNew corrects a single weakly-received bit with weighted bit
// flipping.
func ExampleNew() {
	m, err := builder.FromDense([][]int{
		{1, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 1},
		{1, 1, 0, 1, 0, 0},
		{0, 0, 1, 0, 1, 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	dec, err := bitflip.New(m, bitflip.WBF, bitflip.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}

	// Codeword 110011 at confidence 2, except bit 2 weakly flipped.
	received := []float64{-2, -2, -0.1, 2, -2, -2}
	estimate := make([]int, m.Bits())
	ok, err := dec.Decode(received, estimate)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("ok:", ok)
	fmt.Println("estimate:", estimate)
	// Output:
	// ok: true
	// estimate: [1 1 0 0 1 1]
}
