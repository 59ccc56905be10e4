package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/fft"
	"github.com/cwbudde/algo-eeg/dsp/window"
)

const (
	defaultWindowSize         = 256
	defaultWelchOverlap       = 0.5
	defaultSpectrogramOverlap = 0.75
	defaultMaxFrequency       = 50.0
)

// Option configures an estimator.
type Option func(*config)

type config struct {
	windowSize int
	overlap    float64
	windowType window.Type
	maxFreq    float64
	backend    fft.Transformer
}

func defaultWelchConfig() config {
	return config{
		windowSize: defaultWindowSize,
		overlap:    defaultWelchOverlap,
		windowType: window.TypeHann,
		maxFreq:    defaultMaxFrequency,
		backend:    fft.Radix2{},
	}
}

func defaultSpectrogramConfig() config {
	cfg := defaultWelchConfig()
	cfg.overlap = defaultSpectrogramOverlap
	return cfg
}

// WithWindowSize sets the segment length in samples.
func WithWindowSize(n int) Option {
	return func(c *config) {
		c.windowSize = n
	}
}

// WithOverlap sets the fractional overlap between consecutive segments.
func WithOverlap(fraction float64) Option {
	return func(c *config) {
		c.overlap = fraction
	}
}

// WithWindow selects the taper applied to each segment.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
	}
}

// WithMaxFrequency limits the spectrogram to bins at or below f Hz.
func WithMaxFrequency(f float64) Option {
	return func(c *config) {
		c.maxFreq = f
	}
}

// WithBackend replaces the default radix-2 transform.
func WithBackend(b fft.Transformer) Option {
	return func(c *config) {
		if b != nil {
			c.backend = b
		}
	}
}

func applyOptions(cfg config, opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// validateSegments checks the averaging estimators, which need a hop of at
// least one full sample fraction: overlap in [0, 1).
func (c config) validateSegments() error {
	if c.windowSize < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, c.windowSize)
	}
	if !(c.overlap >= 0 && c.overlap < 1) {
		return fmt.Errorf("%w: %v not in [0, 1)", ErrInvalidOverlap, c.overlap)
	}
	return nil
}

// validateFrames checks the spectrogram, whose hop is floored at one sample,
// so an overlap of 1 is accepted.
func (c config) validateFrames() error {
	if c.windowSize < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, c.windowSize)
	}
	if !(c.overlap >= 0 && c.overlap <= 1) {
		return fmt.Errorf("%w: %v not in [0, 1]", ErrInvalidOverlap, c.overlap)
	}
	return nil
}

// step returns the hop between segment starts, at least one sample.
func (c config) step() int {
	return max(1, int(math.Floor(float64(c.windowSize)*(1-c.overlap))))
}

// segments returns how many full windows fit into n samples.
func (c config) segments(n int) int {
	if n < c.windowSize {
		return 0
	}
	return (n-c.windowSize)/c.step() + 1
}
