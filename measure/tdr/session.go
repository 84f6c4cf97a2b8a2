package tdr

import (
	"strings"

	"github.com/cwbudde/algo-tdr/dsp/czt"
)

// Unit selects the scale of a trace's time axis.
type Unit int

const (
	// UnitSeconds reports the axis as propagation time.
	UnitSeconds Unit = iota
	// UnitFeet reports the axis as distance, scaled by the free-space
	// speed of light in feet per second and the velocity factor.
	UnitFeet
	// UnitMeters reports the axis as distance, scaled by the free-space
	// speed of light in meters per second and the velocity factor.
	UnitMeters
)

// String returns the lower-case unit name.
func (u Unit) String() string {
	switch u {
	case UnitFeet:
		return "feet"
	case UnitMeters:
		return "meters"
	default:
		return "seconds"
	}
}

// ParseUnit maps a unit name onto a Unit, case-insensitively.
// Unknown names map to UnitSeconds.
func ParseUnit(name string) Unit {
	switch strings.ToLower(name) {
	case "feet":
		return UnitFeet
	case "meters":
		return UnitMeters
	default:
		return UnitSeconds
	}
}

// Reflection types supported by a Session.
const (
	// ReflectionRoundTrip keeps the measured axis as-is: the signal
	// travels to the fault and back, as in a one-port reflection setup.
	ReflectionRoundTrip = 1
	// ReflectionOneWay halves the measured axis so it reads as one-way
	// distance or delay.
	ReflectionOneWay = 2
)

// Kernel resamples a frequency-domain spectrum onto a target time grid.
// freq and spectrum have equal length; the result has the length of time.
// The default kernel is czt.Freq2Time.
type Kernel func(freq []float64, spectrum []complex128, time []float64) ([]complex128, error)

// Session converts S-parameter sweeps into time-domain reflectometry
// traces. Axis unit, reflection type, velocity factor, and Kaiser beta
// persist across conversions. The zero-value defaults are seconds,
// round-trip, a velocity factor of 1, and a rectangular window.
//
// Invalid configuration values are never reported: both options and
// setters silently fall back to the documented default.
type Session struct {
	unit    Unit
	refType int
	vf      float64
	beta    float64
	kernel  Kernel
}

// Option configures a Session.
type Option func(*Session)

// WithUnit sets the time axis unit. Unknown units are ignored.
func WithUnit(u Unit) Option {
	return func(s *Session) {
		if u == UnitSeconds || u == UnitFeet || u == UnitMeters {
			s.unit = u
		}
	}
}

// WithVelocityFactor sets the cable velocity factor. Values outside (0, 1]
// are ignored.
func WithVelocityFactor(vf float64) Option {
	return func(s *Session) {
		if vf > 0 && vf <= 1 {
			s.vf = vf
		}
	}
}

// WithBeta sets the Kaiser window beta. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(s *Session) {
		if beta >= 0 {
			s.beta = beta
		}
	}
}

// WithReflectionType sets the reflection type. Values other than
// ReflectionRoundTrip and ReflectionOneWay are ignored.
func WithReflectionType(r int) Option {
	return func(s *Session) {
		if r == ReflectionRoundTrip || r == ReflectionOneWay {
			s.refType = r
		}
	}
}

// WithKernel replaces the frequency-to-time transform kernel. A nil kernel
// is ignored.
func WithKernel(k Kernel) Option {
	return func(s *Session) {
		if k != nil {
			s.kernel = k
		}
	}
}

// NewSession creates a conversion session with the given options applied
// on top of the defaults.
func NewSession(opts ...Option) *Session {
	s := &Session{
		unit:    UnitSeconds,
		refType: ReflectionRoundTrip,
		vf:      1,
		beta:    0,
		kernel:  czt.Freq2Time,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// SetUnit selects the time axis unit by name, case-insensitively.
// Unknown names reset the unit to seconds.
func (s *Session) SetUnit(name string) {
	s.unit = ParseUnit(name)
}

// SetVelocityFactor sets the cable velocity factor. Values outside (0, 1]
// reset it to 1.
func (s *Session) SetVelocityFactor(vf float64) {
	if vf > 0 && vf <= 1 {
		s.vf = vf
	} else {
		s.vf = 1
	}
}

// SetBeta sets the Kaiser window beta. Negative values reset it to 0,
// the rectangular window.
func (s *Session) SetBeta(beta float64) {
	if beta >= 0 {
		s.beta = beta
	} else {
		s.beta = 0
	}
}

// SetReflectionType sets the reflection type. Values other than
// ReflectionRoundTrip and ReflectionOneWay reset it to ReflectionRoundTrip.
func (s *Session) SetReflectionType(r int) {
	if r == ReflectionRoundTrip || r == ReflectionOneWay {
		s.refType = r
	} else {
		s.refType = ReflectionRoundTrip
	}
}

// Unit returns the configured time axis unit.
func (s *Session) Unit() Unit { return s.unit }

// VelocityFactor returns the configured velocity factor.
func (s *Session) VelocityFactor() float64 { return s.vf }

// Beta returns the configured Kaiser window beta.
func (s *Session) Beta() float64 { return s.beta }

// ReflectionType returns the configured reflection type.
func (s *Session) ReflectionType() int { return s.refType }
