package iir

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/filter/biquad"
	"github.com/cwbudde/algo-eeg/dsp/filter/design"
	"github.com/cwbudde/algo-eeg/dsp/filter/design/pass"
)

// Design returns the biquad cascade for cfg. Frequencies are clamped to the
// usable range below Nyquist and a reversed bandpass range is swapped.
// Design does not validate; call Validate first for user input.
func Design(cfg Config, sampleRate float64) (biquad.Cascade, error) {
	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		return nil, invalid("sample rate", "must be > 0, got %g", sampleRate)
	}
	nyquist := sampleRate / 2
	cfg = cfg.Normalized()

	switch cfg.Type {
	case Bandpass:
		low := ClampFrequency(cfg.Low, nyquist)
		high := ClampFrequency(cfg.High, nyquist)
		if low > high {
			low, high = high, low
		}
		return pass.ButterworthBP(low, high, cfg.Order, sampleRate), nil
	case Highpass:
		return pass.ButterworthHP(ClampFrequency(cfg.Low, nyquist), cfg.Order, sampleRate), nil
	case Lowpass:
		return pass.ButterworthLP(ClampFrequency(cfg.High, nyquist), cfg.Order, sampleRate), nil
	case Notch:
		f := ClampFrequency(cfg.Low, nyquist)
		return biquad.Cascade{design.Notch(f, design.NotchQ(f, NotchBandwidth), sampleRate)}, nil
	default:
		return nil, invalid("type", "unknown filter type %v", cfg.Type)
	}
}

// Apply validates cfg, designs the cascade and filters signal with zero
// phase. The input is not modified. A cascade with a pole on or outside the
// unit circle, or a non-finite output sample, returns ErrUnstable.
func Apply(signal []float64, cfg Config, sampleRate float64) ([]float64, error) {
	coeffs, err := prepare(cfg, sampleRate)
	if err != nil {
		return nil, err
	}
	return filter(coeffs, signal)
}

// ApplyAll filters every channel with the same cascade. If any channel is
// unstable the whole call fails and no output is returned.
func ApplyAll(channels [][]float64, cfg Config, sampleRate float64) ([][]float64, error) {
	coeffs, err := prepare(cfg, sampleRate)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(channels))
	for i, ch := range channels {
		y, err := filter(coeffs, ch)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		out[i] = y
	}
	return out, nil
}

func prepare(cfg Config, sampleRate float64) (biquad.Cascade, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(sampleRate); err != nil {
		return nil, err
	}
	return Design(cfg, sampleRate)
}

func filter(coeffs biquad.Cascade, signal []float64) ([]float64, error) {
	if !coeffs.Stable() {
		return nil, fmt.Errorf("%w: pole radius %.6f", ErrUnstable, coeffs.MaxPoleRadius())
	}
	out := coeffs.FiltFilt(signal)
	if !core.AllFinite(out) {
		return nil, ErrUnstable
	}
	return out, nil
}
