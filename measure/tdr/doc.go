// Package tdr converts vector network analyzer frequency sweeps into
// time-domain reflectometry traces.
//
// A one-port S-parameter sweep measured over a linear frequency grid is
// resampled onto a caller-chosen time grid with an inverse chirp-z
// transform, yielding the reflection profile along the line under test.
// Three response modes are supported:
//
//   - Bandpass: direct conversion of the measured band. The sweep does not
//     need to reach down to DC.
//   - Lowpass impulse: the sweep is extended with a synthesized DC point
//     and conjugate-symmetric negative frequencies before conversion,
//     doubling the effective time resolution. Requires a harmonically
//     related sweep starting near DC.
//   - Lowpass step: discrete integration of the lowpass impulse response,
//     the response of the line to a step stimulus.
//
// A Kaiser window with configurable beta shapes the spectrum before the
// transform; the impulse and bandpass responses are compensated for the
// window's average attenuation. The returned time axis can be rescaled to
// feet or meters using the cable's velocity factor, and halved for
// round-trip measurements.
//
// The sweep is assumed to be uniformly spaced over [Fstart, Fstop]. For the
// lowpass modes the points must additionally be harmonically related; this
// is a caller obligation and is not validated.
//
// A Session is not safe for concurrent use; give each goroutine its own.
//
// # Usage
//
//	session := tdr.NewSession(
//		tdr.WithUnit(tdr.UnitMeters),
//		tdr.WithVelocityFactor(0.66),
//	)
//	trace, err := session.LowpassStep(sweep, 1e6, 3e9, 0, 100e-9)
package tdr
