package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// CoherenceResult holds the magnitude-squared coherence per frequency bin.
type CoherenceResult struct {
	Freqs     []float64
	Coherence []float64
	Segments  int
}

// Coherence estimates the magnitude-squared coherence of x and y with
// Welch-style segmentation (same defaults as [Welch]).
//
// Auto spectra are averaged over segments while the cross spectrum keeps the
// raw segment sum, giving
//
//	coh[f] = |CSD[f]|^2 / (P11[f] * P22[f] * segments^2)
//
// with coh[f] = 0 where the denominator vanishes. Signals of different length
// are truncated to the shorter one.
func Coherence(x, y []float64, sampleRate float64, opts ...Option) (CoherenceResult, error) {
	cfg := applyOptions(defaultWelchConfig(), opts)
	if err := validateSampleRate(sampleRate); err != nil {
		return CoherenceResult{}, err
	}
	if err := cfg.validateSegments(); err != nil {
		return CoherenceResult{}, err
	}

	n := min(len(x), len(y))
	segments := cfg.segments(n)
	if segments < 1 {
		return CoherenceResult{}, fmt.Errorf("%w: %d < %d", ErrSignalTooShort, n, cfg.windowSize)
	}

	ws := cfg.windowSize
	step := cfg.step()
	win := window.Generate(cfg.windowType, ws)
	nfft := core.NextPowerOfTwo(ws)
	bins := nfft/2 + 1

	p11 := make([]float64, bins)
	p22 := make([]float64, bins)
	csdRe := make([]float64, bins)
	csdIm := make([]float64, bins)
	segX := make([]float64, ws)
	segY := make([]float64, ws)

	for s := 0; s < segments; s++ {
		start := s * step
		vecmath.MulBlock(segX, x[start:start+ws], win)
		vecmath.MulBlock(segY, y[start:start+ws], win)

		fx, err := cfg.backend.Transform(segX)
		if err != nil {
			return CoherenceResult{}, fmt.Errorf("spectrum: coherence segment %d: %w", s, err)
		}
		fy, err := cfg.backend.Transform(segY)
		if err != nil {
			return CoherenceResult{}, fmt.Errorf("spectrum: coherence segment %d: %w", s, err)
		}

		for k := 0; k < bins; k++ {
			xr, xi := fx.Re[k], fx.Im[k]
			yr, yi := fy.Re[k], fy.Im[k]

			p11[k] += xr*xr + xi*xi
			p22[k] += yr*yr + yi*yi
			// X * conj(Y)
			csdRe[k] += xr*yr + xi*yi
			csdIm[k] += xi*yr - xr*yi
		}
	}

	segs := float64(segments)
	coh := make([]float64, bins)
	for k := range coh {
		a := p11[k] / segs
		b := p22[k] / segs
		denom := a * b * segs * segs
		if denom == 0 {
			continue
		}
		coh[k] = (csdRe[k]*csdRe[k] + csdIm[k]*csdIm[k]) / denom
	}

	return CoherenceResult{
		Freqs:     binFrequencies(bins, nfft, sampleRate),
		Coherence: coh,
		Segments:  segments,
	}, nil
}
