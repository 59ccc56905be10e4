package iir

import (
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

const (
	// MinBandpassLow is the lowest accepted bandpass lower cutoff in Hz.
	MinBandpassLow = 0.05
	// NotchBandwidth is the -3 dB width of the notch filter in Hz.
	NotchBandwidth = 2.0

	minFrequency  = 1e-6
	nyquistMargin = 0.999
)

// Config describes a filter. See the package documentation for which
// frequency fields each type reads.
type Config struct {
	Type  Type
	Low   float64
	High  float64
	Order int
}

// Normalized returns a copy with a reversed bandpass range swapped.
func (c Config) Normalized() Config {
	if c.Type == Bandpass && c.Low > c.High {
		c.Low, c.High = c.High, c.Low
	}
	return c
}

// Validate checks the config against the sample rate. It returns a
// *ValidationError, or nil when the config can be designed.
func (c Config) Validate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return invalid("sample rate", "must be > 0, got %g", sampleRate)
	}
	nyquist := sampleRate / 2

	if c.Type.Butterworth() && c.Order < 1 {
		return invalid("order", "must be >= 1, got %d", c.Order)
	}

	switch c.Type {
	case Bandpass:
		if !core.AllFinite([]float64{c.Low, c.High}) {
			return invalid("band", "cutoffs must be finite")
		}
		if c.Low < MinBandpassLow {
			return invalid("low", "must be >= %g Hz, got %g", MinBandpassLow, c.Low)
		}
		if c.Low >= c.High {
			return invalid("band", "low (%g Hz) must be below high (%g Hz)", c.Low, c.High)
		}
		if c.High >= nyquist {
			return invalid("high", "must be below Nyquist (%g Hz), got %g", nyquist, c.High)
		}
	case Highpass:
		return checkCutoff("low", c.Low, nyquist)
	case Lowpass:
		return checkCutoff("high", c.High, nyquist)
	case Notch:
		return checkCutoff("notch frequency", c.Low, nyquist)
	default:
		return invalid("type", "unknown filter type %v", c.Type)
	}
	return nil
}

func checkCutoff(field string, f, nyquist float64) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return invalid(field, "must be > 0, got %g", f)
	}
	if f >= nyquist {
		return invalid(field, "must be below Nyquist (%g Hz), got %g", nyquist, f)
	}
	return nil
}

// ClampFrequency limits f to [1e-6, 0.999*nyquist]. Non-finite values map
// to min(1, 0.25*nyquist).
func ClampFrequency(f, nyquist float64) float64 {
	if !core.IsFinite(f) {
		return math.Min(1, nyquist*0.25)
	}
	return core.Clamp(f, minFrequency, nyquist*nyquistMargin)
}
