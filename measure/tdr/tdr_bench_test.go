package tdr

import (
	"math/cmplx"
	"testing"
)

func benchSweep(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = cmplx.Rect(1/(1+0.01*float64(i)), -0.05*float64(i))
	}

	return out
}

func BenchmarkBandpass512(b *testing.B) {
	session := NewSession(WithBeta(6))
	sweep := benchSweep(512)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := session.Bandpass(sweep, 1e6, 3e9, 0, 100e-9)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLowpassImpulse512(b *testing.B) {
	session := NewSession(WithBeta(6))
	sweep := benchSweep(512)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := session.LowpassImpulse(sweep, 5.859375e6, 3e9, 0, 100e-9)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLowpassStep512(b *testing.B) {
	session := NewSession()
	sweep := benchSweep(512)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := session.LowpassStep(sweep, 5.859375e6, 3e9, 0, 100e-9)
		if err != nil {
			b.Fatal(err)
		}
	}
}
