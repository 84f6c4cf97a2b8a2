package czt

import (
	"fmt"
	"math/cmplx"
)

func ExampleFreq2Time() {
	freq := []float64{0, 1e9, 2e9, 3e9}
	spec := []complex128{1, 1, 1, 1}

	resp, _ := Freq2Time(freq, spec, []float64{0})
	fmt.Printf("%.2f\n", cmplx.Abs(resp[0]))
	// Output:
	// 1.00
}

func ExampleTransform() {
	x := []complex128{1, 1, 1, 1}
	w := cmplx.Exp(complex(0, -2*3.141592653589793/4))

	bins, _ := Transform(x, 4, w, 1)
	fmt.Printf("%.1f %.1f\n", cmplx.Abs(bins[0]), cmplx.Abs(bins[1]))
	// Output:
	// 4.0 0.0
}
