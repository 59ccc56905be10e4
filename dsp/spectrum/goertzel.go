package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Goertzel evaluates a single DFT term without a full transform.
//
// It accumulates state from every processed sample; [Goertzel.Power]
// reflects all samples since the last [Goertzel.Reset]. The target need not
// fall on an integer bin, but off-bin tones leak into the estimate unless the
// block holds a whole number of cycles.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	n          int
}

// NewGoertzel returns a probe for frequency Hz at sampleRate.
// frequency must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if !(frequency >= 0 && frequency <= sampleRate/2) {
		return nil, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidProbeFrequency, frequency, sampleRate)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock feeds samples into the probe.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X(f)|^2 over the processed samples, the same value an
// unnormalized DFT of the block gives at an on-bin frequency.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// TonePower returns the mean power in µV² of a sinusoid at the probe
// frequency, A²/2 for amplitude A. It is zero before any samples arrive.
func (g *Goertzel) TonePower() float64 {
	if g.n == 0 {
		return 0
	}
	n := float64(g.n)
	return 2 * max(g.Power(), 0) / (n * n)
}

// Frequency returns the probe frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// LineNoise describes the contribution of a single interference frequency,
// typically 50 or 60 Hz mains, to a signal.
type LineNoise struct {
	Frequency  float64
	TonePower  float64 // µV²
	TotalPower float64 // mean square of the mean-removed signal, µV²
}

// Ratio returns TonePower/TotalPower, or 0 for a flat signal.
func (l LineNoise) Ratio() float64 {
	if l.TotalPower <= 0 {
		return 0
	}
	return min(l.TonePower/l.TotalPower, 1)
}

// RatioDB returns the ratio in decibels, floored at -300 dB.
func (l LineNoise) RatioDB() float64 {
	r := l.Ratio()
	if r <= 1e-30 {
		return -300
	}
	return 10 * math.Log10(r)
}

// MeasureLineNoise estimates how much of signal is a tone at frequency Hz.
// The signal mean is removed first so DC offsets do not count towards the
// total. An empty signal yields zero powers.
func MeasureLineNoise(signal []float64, frequency, sampleRate float64) (LineNoise, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return LineNoise{}, err
	}

	out := LineNoise{Frequency: frequency}
	if len(signal) == 0 {
		return out, nil
	}

	centred := append([]float64(nil), signal...)
	floats.AddConst(-floats.Sum(signal)/float64(len(signal)), centred)
	g.ProcessBlock(centred)

	out.TonePower = g.TonePower()
	out.TotalPower = floats.Dot(centred, centred) / float64(len(centred))
	return out, nil
}
