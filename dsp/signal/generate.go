// Package signal generates deterministic synthetic biosignals for tests,
// demos and benchmarks.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// ErrInvalidLength is returned when a generator is asked for fewer than one
// sample.
var ErrInvalidLength = errors.New("signal: samples must be > 0")

// Component is one sinusoidal rhythm of a synthetic channel.
type Component struct {
	FreqHz    float64
	Amplitude float64 // µV
	Phase     float64 // radians
}

// Generator creates deterministic signals from a shared configuration.
// Successive noise calls draw from one seeded source, so a Generator is not
// safe for concurrent use.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the seed of the noise source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator with the default seed of 1.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the seed the noise source started from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates amplitude*sin(2*pi*freqHz*t + phase).
func (g *Generator) Sine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out, nil
}

// GaussianNoise generates zero-mean normal noise with standard deviation std.
func (g *Generator) GaussianNoise(std float64, samples int) ([]float64, error) {
	if err := g.check(samples); err != nil {
		return nil, err
	}
	if std < 0 {
		return nil, fmt.Errorf("signal: noise std must be >= 0: %f", std)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = std * g.rng.NormFloat64()
	}
	return out, nil
}

// Channel sums the components and adds Gaussian noise of standard deviation
// noiseStd. Components at or above Nyquist are skipped.
func (g *Generator) Channel(samples int, noiseStd float64, components ...Component) ([]float64, error) {
	out, err := g.GaussianNoise(noiseStd, samples)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		if c.FreqHz >= g.cfg.Nyquist() {
			continue
		}
		tone, err := g.Sine(c.FreqHz, c.Amplitude, c.Phase, samples)
		if err != nil {
			return nil, err
		}
		floats.Add(out, tone)
	}
	return out, nil
}

// RandomPhase returns a phase drawn uniformly from [0, 2*pi).
func (g *Generator) RandomPhase() float64 {
	return g.rng.Float64() * 2 * math.Pi
}

func (g *Generator) check(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
	}
	if !(g.cfg.SampleRate > 0) {
		return fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	return nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: normalize input is empty", ErrInvalidLength)
	}

	out := make([]float64, len(data))
	maxAbs := math.Max(floats.Max(data), -floats.Min(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}
