package eeg

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eeg/dsp/filter/iir"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/eeg/band"
	"github.com/cwbudde/algo-eeg/eeg/montage"
	frequencystats "github.com/cwbudde/algo-eeg/stats/frequency"
	timestats "github.com/cwbudde/algo-eeg/stats/time"
)

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	logger          *zap.Logger
	welchOpts       []spectrum.Option
	spectrogramOpts []spectrum.Option
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// WithLogger sets the logger. Filter rejections and instability are logged
// at warn level, analysis summaries at debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWelchOptions sets the options used for PSD estimation and coherence.
func WithWelchOptions(opts ...spectrum.Option) Option {
	return func(c *config) {
		c.welchOpts = append([]spectrum.Option(nil), opts...)
	}
}

// WithSpectrogramOptions sets the options used for spectrograms.
func WithSpectrogramOptions(opts ...spectrum.Option) Option {
	return func(c *config) {
		c.spectrogramOpts = append([]spectrum.Option(nil), opts...)
	}
}

// Analyzer runs analyses over recordings. It is safe for concurrent use
// unless configured with a stateful FFT backend such as fft.Planned.
type Analyzer struct {
	cfg config
	log *zap.Logger
}

// New returns an Analyzer configured by opts.
func New(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Analyzer{cfg: cfg, log: cfg.logger.Named("eeg")}
}

// ChannelStats bundles the descriptive statistics of one channel.
type ChannelStats struct {
	Label  string
	Stats  timestats.Stats
	Hjorth timestats.HjorthParams
}

// Statistics computes time statistics and Hjorth parameters per channel.
func (a *Analyzer) Statistics(rec Recording) ([]ChannelStats, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	stats := timestats.CalculateAll(rec.Channels)
	out := make([]ChannelStats, len(stats))
	for i := range stats {
		out[i] = ChannelStats{
			Label:  rec.Labels[i],
			Stats:  stats[i],
			Hjorth: timestats.Hjorth(rec.Channels[i]),
		}
	}
	a.log.Debug("statistics computed",
		zap.Int("channels", len(out)),
		zap.Int("samples", rec.Samples()))
	return out, nil
}

// PSD estimates the power spectral density of every channel with Welch's
// method. Channels shorter than one window fall back to a direct
// periodogram.
func (a *Analyzer) PSD(rec Recording) ([]spectrum.PSD, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	out := make([]spectrum.PSD, len(rec.Channels))
	for i, ch := range rec.Channels {
		psd, err := spectrum.Welch(ch, rec.SampleRate, a.cfg.welchOpts...)
		if err != nil {
			return nil, fmt.Errorf("eeg: psd of %q: %w", rec.Labels[i], err)
		}
		out[i] = psd
	}
	if len(out) > 0 {
		a.log.Debug("psd computed",
			zap.Int("channels", len(out)),
			zap.Stringer("method", out[0].Method),
			zap.Int("fftSize", out[0].FFTSize),
			zap.Int("segments", out[0].Segments))
	}
	return out, nil
}

// BandPowers returns the absolute band powers of every channel.
func (a *Analyzer) BandPowers(rec Recording) ([]band.Powers, error) {
	psds, err := a.PSD(rec)
	if err != nil {
		return nil, err
	}

	out := make([]band.Powers, len(psds))
	for i := range psds {
		out[i] = band.FromPSD(psds[i])
	}
	return out, nil
}

// SpectralStats returns spectral shape descriptors, such as the peak and
// spectral edge frequency, for every channel.
func (a *Analyzer) SpectralStats(rec Recording) ([]frequencystats.Stats, error) {
	psds, err := a.PSD(rec)
	if err != nil {
		return nil, err
	}

	out := make([]frequencystats.Stats, len(psds))
	for i := range psds {
		out[i] = frequencystats.FromPSD(psds[i])
	}
	return out, nil
}

// Spectrogram computes the spectrogram of the labelled channel.
func (a *Analyzer) Spectrogram(rec Recording, label string) (spectrum.Spectrogram, error) {
	if err := rec.Validate(); err != nil {
		return spectrum.Spectrogram{}, err
	}
	ch, err := rec.Channel(label)
	if err != nil {
		return spectrum.Spectrogram{}, err
	}

	sg, err := spectrum.ComputeSpectrogram(ch, rec.SampleRate, a.cfg.spectrogramOpts...)
	if err != nil {
		return spectrum.Spectrogram{}, fmt.Errorf("eeg: spectrogram of %q: %w", label, err)
	}
	if sg.Empty() {
		a.log.Debug("spectrogram empty, channel shorter than one window",
			zap.String("channel", label))
	}
	return sg, nil
}

// Coherence computes the magnitude-squared coherence of two labelled
// channels.
func (a *Analyzer) Coherence(rec Recording, labelA, labelB string) (spectrum.CoherenceResult, error) {
	if err := rec.Validate(); err != nil {
		return spectrum.CoherenceResult{}, err
	}
	x, err := rec.Channel(labelA)
	if err != nil {
		return spectrum.CoherenceResult{}, err
	}
	y, err := rec.Channel(labelB)
	if err != nil {
		return spectrum.CoherenceResult{}, err
	}
	return spectrum.Coherence(x, y, rec.SampleRate, a.cfg.welchOpts...)
}

// LineNoise measures the share of every channel's power that sits at
// frequency Hz, typically the 50 or 60 Hz mains.
func (a *Analyzer) LineNoise(rec Recording, frequency float64) ([]spectrum.LineNoise, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	out := make([]spectrum.LineNoise, len(rec.Channels))
	for i, ch := range rec.Channels {
		ln, err := spectrum.MeasureLineNoise(ch, frequency, rec.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("eeg: line noise of %q: %w", rec.Labels[i], err)
		}
		out[i] = ln
	}
	return out, nil
}

// Filter returns a new recording with every channel filtered by cfg. On a
// validation or stability failure the error is returned and no recording
// is produced; the caller keeps its previous one.
func (a *Analyzer) Filter(rec Recording, cfg iir.Config) (Recording, error) {
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}

	channels, err := iir.ApplyAll(rec.Channels, cfg, rec.SampleRate)
	if err != nil {
		a.log.Warn("filter rejected",
			zap.Stringer("type", cfg.Type),
			zap.Float64("low", cfg.Low),
			zap.Float64("high", cfg.High),
			zap.Int("order", cfg.Order),
			zap.Float64("sampleRate", rec.SampleRate),
			zap.Error(err))
		return Recording{}, err
	}

	a.log.Debug("filter applied",
		zap.Stringer("type", cfg.Type),
		zap.Int("channels", len(channels)))
	return rec.withChannels(rec.labelsCopy(), channels), nil
}

// AverageReference returns the recording re-referenced to the common
// average.
func (a *Analyzer) AverageReference(rec Recording) (Recording, error) {
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}
	return rec.withChannels(rec.labelsCopy(), montage.AverageReference(rec.Channels)), nil
}

// Bipolar returns the longitudinal bipolar derivation of the recording.
func (a *Analyzer) Bipolar(rec Recording) (Recording, error) {
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}

	labels, channels := montage.Bipolar(rec.Labels, rec.Channels)
	if len(labels) == 0 {
		a.log.Debug("bipolar montage produced no channels",
			zap.Int("inputChannels", len(rec.Channels)))
	}
	return rec.withChannels(labels, channels), nil
}
