package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// powerFloor keeps log10 finite for empty bins.
const powerFloor = 1e-20

// Spectrogram is a short-time log-power matrix.
//
// Power[frame][bin] is 10*log10(|X|^2/FFTSize + 1e-20). Times holds the
// centre of each frame in seconds and Freqs the centre of each bin in Hz.
type Spectrogram struct {
	Power      [][]float64
	Times      []float64
	Freqs      []float64
	FFTSize    int
	Resolution float64
}

// Empty reports whether the spectrogram holds no frames.
func (s Spectrogram) Empty() bool {
	return len(s.Power) == 0
}

// ComputeSpectrogram runs a short-time Fourier analysis.
//
// Defaults: 256-sample Hann frames, 75% overlap and bins up to 50 Hz. The hop
// is max(1, floor(windowSize*(1-overlap))), so overlap 1 advances one
// sample per frame. The highest bin kept is
// floor(maxFreq/resolution), clipped to Nyquist without error. A signal
// shorter than one frame yields an empty result.
func ComputeSpectrogram(signal []float64, sampleRate float64, opts ...Option) (Spectrogram, error) {
	cfg := applyOptions(defaultSpectrogramConfig(), opts)
	if err := validateSampleRate(sampleRate); err != nil {
		return Spectrogram{}, err
	}
	if err := cfg.validateFrames(); err != nil {
		return Spectrogram{}, err
	}
	if !(cfg.maxFreq > 0) {
		return Spectrogram{}, fmt.Errorf("%w: %v", ErrInvalidMaxFrequency, cfg.maxFreq)
	}

	ws := cfg.windowSize
	nfft := core.NextPowerOfTwo(ws)
	res := sampleRate / float64(nfft)

	out := Spectrogram{
		Power:      [][]float64{},
		Times:      []float64{},
		Freqs:      []float64{},
		FFTSize:    nfft,
		Resolution: res,
	}
	if len(signal) < ws {
		return out, nil
	}

	maxBin := min(int(math.Floor(cfg.maxFreq/res)), nfft/2)
	out.Freqs = binFrequencies(maxBin+1, nfft, sampleRate)

	win := window.Generate(cfg.windowType, ws)
	frame := make([]float64, ws)
	step := cfg.step()
	invN := 1 / float64(nfft)

	for start := 0; start+ws <= len(signal); start += step {
		vecmath.MulBlock(frame, signal[start:start+ws], win)

		spec, err := cfg.backend.Transform(frame)
		if err != nil {
			return Spectrogram{}, fmt.Errorf("spectrum: spectrogram frame at %d: %w", start, err)
		}

		row := make([]float64, maxBin+1)
		vecmath.Power(row, spec.Re[:maxBin+1], spec.Im[:maxBin+1])
		for k, p := range row {
			row[k] = 10 * math.Log10(p*invN+powerFloor)
		}

		out.Power = append(out.Power, row)
		out.Times = append(out.Times, (float64(start)+float64(ws)/2)/sampleRate)
	}

	return out, nil
}
