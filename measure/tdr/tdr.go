package tdr

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by conversion calls.
var (
	ErrEmptySweep = errors.New("tdr: sweep must not be empty")
)

// Free-space speed of light per unit, in feet and meters per second.
const (
	lightSpeedFeet   = 9.8357e8
	lightSpeedMeters = 2.9979e8
)

// Trace is a time-domain reflectometry trace. Time holds the axis in the
// session's unit, Response the non-negative response magnitude at each
// axis point. Both slices have equal length and are freshly allocated on
// every conversion.
type Trace struct {
	Time     []float64
	Response []float64
}

// Bandpass converts the sweep into a time-domain response without
// extending it towards DC. The sweep is windowed, transformed onto M
// uniformly spaced time points over [tStart, tStop] where M = len(sweep),
// and compensated for the window's average attenuation.
func (s *Session) Bandpass(sweep []complex128, fStart, fStop, tStart, tStop float64) (Trace, error) {
	m := len(sweep)
	if m == 0 {
		return Trace{}, ErrEmptySweep
	}

	freq := s.scaleFreq(linspace(fStart, fStop, m))
	time := linspace(tStart, tStop, m)

	coeffs, err := window.Kaiser(m, s.beta)
	if err != nil {
		return Trace{}, fmt.Errorf("tdr: kaiser window: %w", err)
	}

	raw, err := s.kernel(freq, applyWindow(sweep, coeffs), time)
	if err != nil {
		return Trace{}, fmt.Errorf("tdr: transform kernel: %w", err)
	}

	return Trace{
		Time:     s.scaleTimeAxis(time),
		Response: compensate(spectrum.Magnitude(raw), meanValue(coeffs)),
	}, nil
}

// LowpassImpulse converts the sweep into an impulse response. The sweep is
// extended with a synthesized DC point and a conjugate-symmetric
// negative-frequency half before windowing and transforming, which doubles
// the effective resolution on the time axis. The sweep must be
// harmonically related and start near DC for the extension to be
// meaningful.
func (s *Session) LowpassImpulse(sweep []complex128, fStart, fStop, tStart, tStop float64) (Trace, error) {
	time, raw, windowMean, err := s.lowpassRaw(sweep, fStart, fStop, tStart, tStop)
	if err != nil {
		return Trace{}, err
	}

	return Trace{
		Time:     time,
		Response: compensate(spectrum.Magnitude(raw), windowMean),
	}, nil
}

// LowpassStep converts the sweep into a step response: the discrete
// integration of the lowpass impulse response. The cumulative sum is taken
// over the raw complex impulse output, so no window attenuation
// compensation applies; instead the result is divided by (2M+1)/M to undo
// the resolution gain of the extended spectrum.
func (s *Session) LowpassStep(sweep []complex128, fStart, fStop, tStart, tStop float64) (Trace, error) {
	time, raw, _, err := s.lowpassRaw(sweep, fStart, fStop, tStart, tStop)
	if err != nil {
		return Trace{}, err
	}

	m := len(sweep)
	scale := float64(2*m+1) / float64(m)

	out := make([]float64, len(raw))

	var acc complex128
	for i, v := range raw {
		acc += v
		out[i] = cmplx.Abs(acc) / scale
	}

	return Trace{Time: time, Response: out}, nil
}

// lowpassRaw runs the lowpass pipeline shared by the impulse and step
// responses: frequency extension, windowing, and kernel invocation. It
// returns the rescaled time axis, the raw complex kernel output, and the
// window mean needed for attenuation compensation. Callers decide how to
// post-process the raw output; the step response integrates it before
// taking magnitudes, so no compensation or magnitude is applied here.
func (s *Session) lowpassRaw(sweep []complex128, fStart, fStop, tStart, tStop float64) ([]float64, []complex128, float64, error) {
	m := len(sweep)
	if m == 0 {
		return nil, nil, 0, ErrEmptySweep
	}

	freq := s.scaleFreq(extendAxis(linspace(fStart, fStop, m)))
	time := linspace(tStart, tStop, m)
	ext := extendSpectrum(sweep)

	coeffs, err := window.Kaiser(len(ext), s.beta)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("tdr: kaiser window: %w", err)
	}

	raw, err := s.kernel(freq, applyWindow(ext, coeffs), time)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("tdr: transform kernel: %w", err)
	}

	return s.scaleTimeAxis(time), raw, meanValue(coeffs), nil
}

// extendAxis mirrors a positive frequency axis into [-reversed, 0, axis],
// 2M+1 points covering the negative frequencies and DC.
func extendAxis(axis []float64) []float64 {
	out := make([]float64, 0, 2*len(axis)+1)
	for i := len(axis) - 1; i >= 0; i-- {
		out = append(out, -axis[i])
	}

	out = append(out, 0)

	return append(out, axis...)
}

// extendSpectrum builds the Hermitian-symmetric extension
// [conj-reversed sweep, DC, sweep]. The DC point is estimated from the
// magnitude of the lowest measured frequency sample; the conjugate
// reversal makes the extended spectrum transform to a (near-)real
// time-domain signal.
func extendSpectrum(sweep []complex128) []complex128 {
	out := make([]complex128, 0, 2*len(sweep)+1)
	for i := len(sweep) - 1; i >= 0; i-- {
		out = append(out, cmplx.Conj(sweep[i]))
	}

	out = append(out, complex(cmplx.Abs(sweep[0]), 0))

	return append(out, sweep...)
}

// scaleFreq compresses the frequency axis by the velocity factor when the
// axis unit is a distance, stretching the resulting time axis to the true
// physical scale. In seconds the axis is returned unchanged.
func (s *Session) scaleFreq(freq []float64) []float64 {
	if s.unit == UnitSeconds {
		return freq
	}

	out := make([]float64, len(freq))
	vecmath.ScaleBlock(out, freq, 1/s.vf)

	return out
}

// scaleTimeAxis converts the raw time axis into the session's unit and
// divides out round-trip propagation for ReflectionOneWay.
func (s *Session) scaleTimeAxis(time []float64) []float64 {
	factor := 1 / float64(s.refType)

	switch s.unit {
	case UnitFeet:
		factor *= lightSpeedFeet
	case UnitMeters:
		factor *= lightSpeedMeters
	}

	out := make([]float64, len(time))
	vecmath.ScaleBlock(out, time, factor)

	return out
}

// applyWindow multiplies real window coefficients into a complex spectrum.
func applyWindow(x []complex128, coeffs []float64) []complex128 {
	out := make([]complex128, len(x))
	for i := range x {
		out[i] = x[i] * complex(coeffs[i], 0)
	}

	return out
}

// compensate divides the response by the window's mean value, undoing the
// average attenuation introduced by windowing. A rectangular window has
// mean 1 and passes through unchanged.
func compensate(response []float64, windowMean float64) []float64 {
	out := make([]float64, len(response))
	vecmath.ScaleBlock(out, response, 1/windowMean)

	return out
}

// meanValue returns the arithmetic mean of the window coefficients.
func meanValue(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}

// linspace returns n uniformly spaced points over [start, stop].
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}
