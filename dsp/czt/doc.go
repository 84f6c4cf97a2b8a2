// Package czt implements the chirp z-transform and frequency/time
// resampling built on it.
//
// The chirp z-transform generalizes the DFT by evaluating the z-transform
// at an arbitrary number of points along a spiral contour in the z-plane.
// Unlike the FFT it places no power-of-two restriction on either the input
// or the output length, which makes it suitable for resampling a spectrum
// onto a time grid that is unrelated to the Nyquist grid of the input.
//
// [Freq2Time] and [Time2Freq] convert between a frequency-domain sweep and
// a time-domain signal evaluated at caller-chosen sample points. Uniformly
// spaced axes are handled by [Transform] via Bluestein's algorithm in
// O((N+M) log (N+M)); arbitrarily spaced axes fall back to direct
// evaluation in O(N*M).
//
// # Usage
//
//	freq := []float64{0, 1e9, 2e9, 3e9}
//	spec := []complex128{1, 1, 1, 1}
//	time := []float64{0, 0.5e-9, 1e-9}
//	resp, err := czt.Freq2Time(freq, spec, time)
package czt
