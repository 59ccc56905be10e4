package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Method records which estimator produced a PSD.
type Method int

const (
	MethodWelch Method = iota
	MethodPeriodogram
)

func (m Method) String() string {
	switch m {
	case MethodWelch:
		return "welch"
	case MethodPeriodogram:
		return "periodogram"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// PSD is a one-sided power spectral density in µV²/Hz.
//
// Freqs and Power have equal length; Freqs runs from 0 Hz in steps of
// Resolution up to the Nyquist frequency.
type PSD struct {
	Freqs      []float64
	Power      []float64
	FFTSize    int
	Segments   int
	Resolution float64 // Hz per bin, sampleRate / FFTSize
	Method     Method
}

// Welch estimates the PSD by averaging windowed, overlapping periodograms.
//
// Defaults: 256-sample Hann segments with 50% overlap. The hop is
// floor(windowSize*(1-overlap)) samples. When the signal is shorter than one
// segment the estimate falls back to [Direct] over the whole signal.
//
// Each segment is zero-padded to the next power of two. The accumulated
// |X|^2 is divided by segments*sampleRate*windowPower*windowSize, where
// windowPower is the mean squared window coefficient, then doubled for the
// one-sided spectrum. The DC and Nyquist bins, which have no mirror image,
// are not doubled.
func Welch(signal []float64, sampleRate float64, opts ...Option) (PSD, error) {
	cfg := applyOptions(defaultWelchConfig(), opts)
	if err := validateSampleRate(sampleRate); err != nil {
		return PSD{}, err
	}
	if err := cfg.validateSegments(); err != nil {
		return PSD{}, err
	}

	segments := cfg.segments(len(signal))
	if segments < 1 {
		return direct(signal, sampleRate, cfg)
	}

	ws := cfg.windowSize
	step := cfg.step()
	win := window.Generate(cfg.windowType, ws)
	winPower, err := window.Power(win)
	if err != nil {
		return PSD{}, fmt.Errorf("spectrum: welch window: %w", err)
	}

	nfft := core.NextPowerOfTwo(ws)
	bins := nfft/2 + 1
	acc := make([]float64, bins)
	segPower := make([]float64, bins)
	seg := make([]float64, ws)

	for s := 0; s < segments; s++ {
		start := s * step
		vecmath.MulBlock(seg, signal[start:start+ws], win)

		res, err := cfg.backend.Transform(seg)
		if err != nil {
			return PSD{}, fmt.Errorf("spectrum: welch segment %d: %w", s, err)
		}

		vecmath.Power(segPower, res.Re[:bins], res.Im[:bins])
		floats.Add(acc, segPower)
	}

	scale := 2 / (float64(segments) * sampleRate * winPower * float64(ws))
	oneSided(acc, scale, nfft)

	return PSD{
		Freqs:      binFrequencies(bins, nfft, sampleRate),
		Power:      acc,
		FFTSize:    nfft,
		Segments:   segments,
		Resolution: sampleRate / float64(nfft),
		Method:     MethodWelch,
	}, nil
}

// Direct computes a single windowed periodogram over the whole signal.
//
// The window spans all samples and the spectrum is normalized by
// sampleRate*len(signal) with the same one-sided doubling as [Welch]. Unlike
// Welch, no window-power correction is applied. Window size, overlap and
// frequency options are ignored. An empty signal yields an empty PSD.
func Direct(signal []float64, sampleRate float64, opts ...Option) (PSD, error) {
	cfg := applyOptions(defaultWelchConfig(), opts)
	if err := validateSampleRate(sampleRate); err != nil {
		return PSD{}, err
	}

	return direct(signal, sampleRate, cfg)
}

func direct(signal []float64, sampleRate float64, cfg config) (PSD, error) {
	n := len(signal)
	if n == 0 {
		return PSD{Freqs: []float64{}, Power: []float64{}, Method: MethodPeriodogram}, nil
	}

	windowed, err := window.ApplyCoefficients(signal, window.Generate(cfg.windowType, n))
	if err != nil {
		return PSD{}, fmt.Errorf("spectrum: periodogram window: %w", err)
	}

	res, err := cfg.backend.Transform(windowed)
	if err != nil {
		return PSD{}, fmt.Errorf("spectrum: periodogram: %w", err)
	}

	bins := res.Bins()
	power := make([]float64, bins)
	vecmath.Power(power, res.Re[:bins], res.Im[:bins])
	oneSided(power, 2/(sampleRate*float64(n)), res.N)

	return PSD{
		Freqs:      binFrequencies(bins, res.N, sampleRate),
		Power:      power,
		FFTSize:    res.N,
		Segments:   1,
		Resolution: sampleRate / float64(res.N),
		Method:     MethodPeriodogram,
	}, nil
}

// oneSided scales every bin, then halves DC and, for even transform sizes,
// the Nyquist bin.
func oneSided(power []float64, scale float64, nfft int) {
	floats.Scale(scale, power)

	power[0] /= 2
	if nfft >= 2 && nfft%2 == 0 {
		power[len(power)-1] /= 2
	}
}

func binFrequencies(bins, nfft int, sampleRate float64) []float64 {
	res := sampleRate / float64(nfft)
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * res
	}
	return freqs
}

// Peak returns the index of the largest PSD bin, or -1 for an empty PSD.
// Ties resolve to the lowest frequency.
func (p PSD) Peak() int {
	if len(p.Power) == 0 {
		return -1
	}

	best := 0
	for i, v := range p.Power {
		if v > p.Power[best] {
			best = i
		}
	}
	return best
}

// Range returns a copy of the bins with lo <= freq <= hi.
func (p PSD) Range(lo, hi float64) PSD {
	out := PSD{
		FFTSize:    p.FFTSize,
		Segments:   p.Segments,
		Resolution: p.Resolution,
		Method:     p.Method,
		Freqs:      []float64{},
		Power:      []float64{},
	}
	for i, f := range p.Freqs {
		if f >= lo && f <= hi {
			out.Freqs = append(out.Freqs, f)
			out.Power = append(out.Power, p.Power[i])
		}
	}
	return out
}

// Integrate returns the sum of Power*Resolution over all bins, the total
// power in µV².
func (p PSD) Integrate() float64 {
	total := 0.0
	for _, v := range p.Power {
		total += v
	}
	return total * p.Resolution
}
