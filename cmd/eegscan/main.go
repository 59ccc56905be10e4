// Command eegscan runs the analysis engine over a synthetic EEG recording
// and prints per-channel statistics, band powers and filter diagnostics.
//
// Usage:
//
//	eegscan [flags]
//
// Examples:
//
//	eegscan
//	eegscan -seconds 30 -filter bandpass -low 1 -high 40 -order 4
//	eegscan -notch 50 -montage bipolar
//	eegscan -backend planned -welch-size 512 -window hamming
//	eegscan -windows
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/fft"
	"github.com/cwbudde/algo-eeg/dsp/filter/iir"
	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/dsp/window"
	"github.com/cwbudde/algo-eeg/eeg"
	"github.com/cwbudde/algo-eeg/eeg/band"
	frequencystats "github.com/cwbudde/algo-eeg/stats/frequency"
)

var labels1020 = []string{
	"Fp1", "Fp2", "F7", "F3", "Fz", "F4", "F8",
	"T3", "C3", "Cz", "C4", "T4",
	"T5", "P3", "Pz", "P4", "T6", "O1", "O2",
}

type options struct {
	rate      float64
	channels  int
	seconds   float64
	seed      int64
	mains     float64
	filter    string
	low       float64
	high      float64
	order     int
	notch     float64
	montage   string
	window    string
	welchSize int
	backend   string
	verbose   bool
}

func main() {
	defaults := core.DefaultProcessorConfig()
	var o options
	flag.Float64Var(&o.rate, "rate", defaults.SampleRate, "sample rate in Hz")
	flag.IntVar(&o.channels, "channels", defaults.Channels, "number of channels (max 19)")
	flag.Float64Var(&o.seconds, "seconds", 10, "recording length in seconds")
	flag.Int64Var(&o.seed, "seed", 1, "noise seed")
	flag.Float64Var(&o.mains, "mains", 50, "synthetic line-noise frequency in Hz (0 disables)")
	flag.StringVar(&o.filter, "filter", "", "Butterworth filter: bandpass, highpass or lowpass")
	flag.Float64Var(&o.low, "low", 0.5, "lower cutoff in Hz")
	flag.Float64Var(&o.high, "high", 40, "upper cutoff in Hz")
	flag.IntVar(&o.order, "order", 4, "Butterworth order")
	flag.Float64Var(&o.notch, "notch", 0, "notch frequency in Hz (0 disables)")
	flag.StringVar(&o.montage, "montage", "", "montage: average or bipolar")
	flag.StringVar(&o.window, "window", "hann", "Welch window: hann, hamming, blackman, rectangular")
	flag.IntVar(&o.welchSize, "welch-size", 256, "Welch segment length in samples")
	flag.StringVar(&o.backend, "backend", "radix2", "FFT backend: radix2 or planned")
	flag.BoolVar(&o.verbose, "verbose", false, "development logging at debug level")
	windows := flag.Bool("windows", false, "print window function properties and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eegscan [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes a synthetic EEG recording.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *windows {
		printWindows(o.welchSize)
		return
	}

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(o, logger); err != nil {
		logger.Error("eegscan failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(o options, logger *zap.Logger) error {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(o.rate), core.WithChannels(o.channels))
	rec, err := synthesize(cfg, o.seconds, o.mains, o.seed)
	if err != nil {
		return err
	}
	logger.Info("synthetic recording",
		zap.Int("channels", len(rec.Channels)),
		zap.Float64("sampleRate", rec.SampleRate),
		zap.Float64("seconds", rec.Duration()))

	winType, err := window.Parse(o.window)
	if err != nil {
		return err
	}
	welch := []spectrum.Option{
		spectrum.WithWindowSize(o.welchSize),
		spectrum.WithWindow(winType),
	}
	switch o.backend {
	case "radix2":
	case "planned":
		welch = append(welch, spectrum.WithBackend(fft.NewPlanned()))
	default:
		return fmt.Errorf("unknown backend %q", o.backend)
	}

	a := eeg.New(eeg.WithLogger(logger), eeg.WithWelchOptions(welch...))

	probe := o.notch
	if probe <= 0 {
		probe = o.mains
	}
	if err := printLineNoise(a, rec, probe, "raw"); err != nil {
		return err
	}

	if o.notch > 0 {
		if rec, err = applyFilter(a, rec, iir.Config{Type: iir.Notch, Low: o.notch}); err != nil {
			return err
		}
	}
	if o.filter != "" {
		typ, err := iir.ParseType(o.filter)
		if err != nil {
			return err
		}
		if rec, err = applyFilter(a, rec, iir.Config{Type: typ, Low: o.low, High: o.high, Order: o.order}); err != nil {
			return err
		}
	}

	switch o.montage {
	case "":
	case "average":
		rec, err = a.AverageReference(rec)
	case "bipolar":
		rec, err = a.Bipolar(rec)
	default:
		err = fmt.Errorf("unknown montage %q", o.montage)
	}
	if err != nil {
		return err
	}

	if o.notch > 0 || o.filter != "" {
		if err := printLineNoise(a, rec, probe, "processed"); err != nil {
			return err
		}
	}
	return report(a, rec)
}

// printLineNoise prints the mean line-noise share across channels. It is a
// no-op when the probe frequency is disabled or above Nyquist.
func printLineNoise(a *eeg.Analyzer, rec eeg.Recording, freq float64, stage string) error {
	if freq <= 0 || freq > rec.SampleRate/2 {
		return nil
	}
	noise, err := a.LineNoise(rec, freq)
	if err != nil {
		return err
	}
	if len(noise) == 0 {
		return nil
	}

	sum := 0.0
	for _, ln := range noise {
		sum += ln.Ratio()
	}
	mean := sum / float64(len(noise))
	fmt.Printf("line noise at %g Hz (%s): %.2f%% (%.1f dB)\n", freq, stage, 100*mean, core.LinearPowerToDB(mean))
	return nil
}

func applyFilter(a *eeg.Analyzer, rec eeg.Recording, cfg iir.Config) (eeg.Recording, error) {
	resp, err := iir.FrequencyResponse(cfg, rec.SampleRate)
	if err != nil {
		return rec, err
	}
	out, err := a.Filter(rec, cfg)
	if err != nil {
		return rec, err
	}

	fmt.Printf("%s filter (zero-phase):", cfg.Type)
	for _, f := range []float64{1, 10, 30, 50} {
		if f < rec.SampleRate/2 {
			fmt.Printf("  %g Hz %.1f dB", f, nearest(resp, f))
		}
	}
	fmt.Println()
	return out, nil
}

func nearest(resp iir.Response, f float64) float64 {
	best := 0
	for i, v := range resp.Freqs {
		if math.Abs(v-f) < math.Abs(resp.Freqs[best]-f) {
			best = i
		}
	}
	return resp.MagnitudeDB[best]
}

func report(a *eeg.Analyzer, rec eeg.Recording) error {
	stats, err := a.Statistics(rec)
	if err != nil {
		return err
	}
	psds, err := a.PSD(rec)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Channel\tMean\tStd\tRMS\tZC\tMobility\tComplexity\tPeak [Hz]\tSEF95 [Hz]\tEntropy\tDominant\t")
	for _, d := range band.Defs() {
		fmt.Fprintf(tw, "%s %%\t", d.Name)
	}
	fmt.Fprintln(tw)

	for i, s := range stats {
		p := band.FromPSD(psds[i])
		f := frequencystats.FromPSD(psds[i])
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%d\t%.3f\t%.3f\t%.2f\t%.2f\t%.3f\t%s\t",
			s.Label, s.Stats.Mean, s.Stats.Std, s.Stats.RMS, s.Stats.ZeroCrossings,
			s.Hjorth.Mobility, s.Hjorth.Complexity,
			f.PeakFrequency, f.EdgeFrequency, f.Entropy, p.Dominant())
		for _, v := range p.Relative() {
			fmt.Fprintf(tw, "%.1f\t", 100*v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// synthesize builds a recording with an occipital-dominant alpha rhythm,
// frontal theta, broadband noise and optional line noise.
func synthesize(cfg core.ProcessorConfig, seconds, mains float64, seed int64) (eeg.Recording, error) {
	nch := min(max(cfg.Channels, 1), len(labels1020))
	n := max(int(seconds*cfg.SampleRate), 1)
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate)},
		signal.WithSeed(seed))

	rec := eeg.Recording{
		Labels:     append([]string(nil), labels1020[:nch]...),
		Channels:   make([][]float64, nch),
		SampleRate: cfg.SampleRate,
	}
	for c := range nch {
		// Alpha grows towards the back of the head.
		alpha := 5 + 25*float64(c)/float64(len(labels1020))
		components := []signal.Component{
			{FreqHz: 10, Amplitude: alpha, Phase: gen.RandomPhase()},
			{FreqHz: 6, Amplitude: 15 - alpha/3},
		}
		if mains > 0 {
			components = append(components, signal.Component{FreqHz: mains, Amplitude: 8})
		}

		ch, err := gen.Channel(n, 3, components...)
		if err != nil {
			return eeg.Recording{}, fmt.Errorf("synthesize %s: %w", rec.Labels[c], err)
		}
		rec.Channels[c] = ch
	}
	return rec, nil
}

func printWindows(size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tPower\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-----\t-------------\n")

	for _, t := range window.Types() {
		coeffs := window.Generate(t, size)
		cg, err := window.CoherentGain(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", t, err)
			return
		}
		enbw, _ := window.EquivalentNoiseBandwidth(coeffs)
		power, _ := window.Power(coeffs)
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.1f\n",
			t, size, cg, enbw, power, window.Info(t).HighestSidelobe)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
