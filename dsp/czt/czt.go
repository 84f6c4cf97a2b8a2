package czt

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by transform functions.
var (
	ErrEmptyInput     = errors.New("czt: input must not be empty")
	ErrInvalidLength  = errors.New("czt: output length must be positive")
	ErrLengthMismatch = errors.New("czt: axis and samples must have same length")
	ErrInvalidContour = errors.New("czt: contour parameters must be non-zero")
)

// Transform computes the chirp z-transform of x at m points along the
// spiral contour z[k] = a * w^-k:
//
//	X[k] = sum_n x[n] * a^-n * w^(n*k)    for k in [0, m)
//
// With a = 1 and w = exp(-2i*pi/N) this reduces to the DFT. Neither the
// input nor the output length needs to be a power of two.
//
// The evaluation uses Bluestein's algorithm: the quadratic identity
// n*k = (n^2 + k^2 - (k-n)^2) / 2 turns the sum into a linear convolution
// of chirp-premultiplied terms, computed with zero-padded FFTs.
func Transform(x []complex128, m int, w, a complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if m <= 0 {
		return nil, ErrInvalidLength
	}

	if w == 0 || a == 0 {
		return nil, ErrInvalidContour
	}

	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("czt: failed to create FFT plan: %w", err)
	}

	logW := cmplx.Log(w)
	logA := cmplx.Log(a)

	// chirp[k] = w^(k^2/2), shared by the pre- and post-multiply.
	kMax := n
	if m > kMax {
		kMax = m
	}

	chirp := make([]complex128, kMax)
	for k := range chirp {
		e := float64(k) * float64(k) / 2
		chirp[k] = cmplx.Exp(logW * complex(e, 0))
	}

	// Premultiplied input: x[n] * a^-n * w^(n^2/2), zero-padded.
	pre := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		pre[i] = x[i] * cmplx.Exp(logA*complex(-float64(i), 0)) * chirp[i]
	}

	// Chirp filter w^(-j^2/2) for j in (-n, m), stored circularly so the
	// negative indices wrap to the tail of the buffer. fftSize >= n+m-1
	// keeps both halves from overlapping.
	filt := make([]complex128, fftSize)
	for k := 0; k < m; k++ {
		e := float64(k) * float64(k) / 2
		filt[k] = cmplx.Exp(logW * complex(-e, 0))
	}

	for j := 1; j < n; j++ {
		e := float64(j) * float64(j) / 2
		filt[fftSize-j] = cmplx.Exp(logW * complex(-e, 0))
	}

	preFreq := make([]complex128, fftSize)
	if err := plan.Forward(preFreq, pre); err != nil {
		return nil, fmt.Errorf("czt: forward FFT failed: %w", err)
	}

	filtFreq := make([]complex128, fftSize)
	if err := plan.Forward(filtFreq, filt); err != nil {
		return nil, fmt.Errorf("czt: forward FFT failed: %w", err)
	}

	for i := range preFreq {
		preFreq[i] *= filtFreq[i]
	}

	conv := make([]complex128, fftSize)
	if err := plan.Inverse(conv, preFreq); err != nil {
		return nil, fmt.Errorf("czt: inverse FFT failed: %w", err)
	}

	out := make([]complex128, m)
	for k := range out {
		out[k] = conv[k] * chirp[k]
	}

	return out, nil
}

// Freq2Time converts frequency-domain data to a time-domain signal
// evaluated at the requested time samples:
//
//	x[k] = (1/N) * sum_j X[j] * exp(+2i*pi * freq[j] * time[k])
//
// freq and spectrum must have the same length N; time may have any length
// and any spacing. Uniformly spaced freq and time axes are evaluated with
// the chirp z-transform; otherwise the sum is evaluated directly.
func Freq2Time(freq []float64, spectrum []complex128, time []float64) ([]complex128, error) {
	out, err := resample(freq, spectrum, time, 1)
	if err != nil {
		return nil, err
	}

	norm := complex(float64(len(freq)), 0)
	for i := range out {
		out[i] /= norm
	}

	return out, nil
}

// Time2Freq converts time-domain data to a frequency-domain spectrum
// evaluated at the requested frequency samples:
//
//	X[j] = sum_k x[k] * exp(-2i*pi * freq[j] * time[k])
//
// The pair Freq2Time and Time2Freq is the identity on DFT-conjugate grids,
// i.e. time[k] = k/(N*df) against N uniformly spaced frequencies.
func Time2Freq(time []float64, signal []complex128, freq []float64) ([]complex128, error) {
	return resample(time, signal, freq, -1)
}

// resample evaluates out[k] = sum_j samples[j] * exp(sign*2i*pi*src[j]*dst[k]).
func resample(src []float64, samples []complex128, dst []float64, sign float64) ([]complex128, error) {
	n := len(src)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if len(samples) != n {
		return nil, ErrLengthMismatch
	}

	if len(dst) == 0 {
		return nil, nil
	}

	if n >= 2 && len(dst) >= 2 && isUniform(src) && isUniform(dst) {
		return resampleChirp(src, samples, dst, sign)
	}

	return resampleDirect(src, samples, dst, sign), nil
}

// resampleChirp evaluates the resampling sum for uniformly spaced axes.
//
// Factoring src[j] = src[0] + j*dStep and dst[k] = dst[0] + k*dDst splits
// the exponent into a contour-sum handled by Transform plus a per-output
// phase rotation.
func resampleChirp(src []float64, samples []complex128, dst []float64, sign float64) ([]complex128, error) {
	n := len(src)
	m := len(dst)

	srcStep := (src[n-1] - src[0]) / float64(n-1)
	dstStep := (dst[m-1] - dst[0]) / float64(m-1)

	w := cmplx.Exp(complex(0, sign*2*math.Pi*srcStep*dstStep))
	a := cmplx.Exp(complex(0, -sign*2*math.Pi*srcStep*dst[0]))

	out, err := Transform(samples, m, w, a)
	if err != nil {
		return nil, err
	}

	for k := range out {
		out[k] *= cmplx.Exp(complex(0, sign*2*math.Pi*src[0]*dst[k]))
	}

	return out, nil
}

// resampleDirect evaluates the resampling sum term by term.
func resampleDirect(src []float64, samples []complex128, dst []float64, sign float64) []complex128 {
	out := make([]complex128, len(dst))
	for k, d := range dst {
		var sum complex128
		for j, s := range src {
			sum += samples[j] * cmplx.Exp(complex(0, sign*2*math.Pi*s*d))
		}

		out[k] = sum
	}

	return out
}

// isUniform reports whether the axis spacing is uniform within a relative
// tolerance of the axis magnitude.
func isUniform(axis []float64) bool {
	n := len(axis)
	if n < 3 {
		return true
	}

	step := (axis[n-1] - axis[0]) / float64(n-1)
	tol := 1e-9 * (math.Abs(axis[0]) + math.Abs(axis[n-1]) + math.Abs(step))

	for i := 1; i < n; i++ {
		if math.Abs(axis[i]-axis[i-1]-step) > tol {
			return false
		}
	}

	return true
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
