package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func TestGoertzel_MatchesDFT(t *testing.T) {
	const freq = 12.5
	sig := testutil.Add(
		testutil.DeterministicSine(freq, eegRate, 7, 1024),
		testutil.DeterministicNoise(1, 2, 1024),
	)

	g, err := NewGoertzel(freq, eegRate)
	if err != nil {
		t.Fatalf("NewGoertzel: %v", err)
	}
	g.ProcessBlock(sig)

	var dft complex128
	for n, x := range sig {
		angle := -2 * math.Pi * freq / eegRate * float64(n)
		dft += complex(x, 0) * cmplx.Exp(complex(0, angle))
	}
	want := real(dft)*real(dft) + imag(dft)*imag(dft)

	testutil.RequireNearlyEqual(t, "power", g.Power(), want, 1e-7*want)
}

func TestGoertzel_BlocksAccumulate(t *testing.T) {
	sig := testutil.DeterministicSine(50, eegRate, 10, 512)

	whole, _ := NewGoertzel(50, eegRate)
	whole.ProcessBlock(sig)

	split, _ := NewGoertzel(50, eegRate)
	split.ProcessBlock(sig[:100])
	split.ProcessBlock(sig[100:])

	testutil.RequireNearlyEqual(t, "power", split.Power(), whole.Power(), 1e-9*whole.Power())

	split.Reset()
	if split.Power() != 0 || split.TonePower() != 0 {
		t.Fatalf("reset left state: power=%v tone=%v", split.Power(), split.TonePower())
	}
}

func TestGoertzel_TonePower(t *testing.T) {
	// 10 s at 256 Hz holds a whole number of 50 Hz cycles.
	g, _ := NewGoertzel(50, eegRate)
	g.ProcessBlock(testutil.DeterministicSine(50, eegRate, 30, 2560))

	testutil.RequireNearlyEqual(t, "tone power", g.TonePower(), 450, 1e-6)
	if g.Frequency() != 50 || g.SampleRate() != eegRate {
		t.Fatalf("accessors: %v %v", g.Frequency(), g.SampleRate())
	}
}

func TestNewGoertzel_Errors(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate float64
		want       error
	}{
		{"zero rate", 50, 0, ErrInvalidSampleRate},
		{"nan rate", 50, math.NaN(), ErrInvalidSampleRate},
		{"negative freq", -1, eegRate, ErrInvalidProbeFrequency},
		{"above nyquist", 129, eegRate, ErrInvalidProbeFrequency},
		{"nan freq", math.NaN(), eegRate, ErrInvalidProbeFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGoertzel(tt.freq, tt.rate); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	for _, f := range []float64{0, eegRate / 2} {
		if _, err := NewGoertzel(f, eegRate); err != nil {
			t.Fatalf("NewGoertzel(%v): %v", f, err)
		}
	}
}

func TestMeasureLineNoise(t *testing.T) {
	const n = 2560
	alpha := testutil.DeterministicSine(10, eegRate, 20, n)
	mains := testutil.DeterministicSine(50, eegRate, 30, n)
	offset := testutil.DC(100, n)

	ln, err := MeasureLineNoise(testutil.Add(alpha, mains, offset), 50, eegRate)
	if err != nil {
		t.Fatalf("MeasureLineNoise: %v", err)
	}

	testutil.RequireNearlyEqual(t, "tone", ln.TonePower, 450, 1e-6)
	testutil.RequireNearlyEqual(t, "total", ln.TotalPower, 650, 1e-6)
	testutil.RequireNearlyEqual(t, "ratio", ln.Ratio(), 450.0/650, 1e-9)
	testutil.RequireNearlyEqual(t, "ratio dB", ln.RatioDB(), 10*math.Log10(450.0/650), 1e-9)

	clean, err := MeasureLineNoise(alpha, 50, eegRate)
	if err != nil {
		t.Fatalf("MeasureLineNoise: %v", err)
	}
	if clean.RatioDB() > -60 {
		t.Fatalf("clean ratio = %.1f dB, want < -60 dB", clean.RatioDB())
	}
}

func TestMeasureLineNoise_EdgeCases(t *testing.T) {
	empty, err := MeasureLineNoise(nil, 50, eegRate)
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if empty.TonePower != 0 || empty.TotalPower != 0 || empty.Ratio() != 0 {
		t.Fatalf("empty = %+v", empty)
	}
	if empty.RatioDB() != -300 {
		t.Fatalf("empty dB = %v", empty.RatioDB())
	}

	flat, _ := MeasureLineNoise(testutil.DC(-3, 300), 50, eegRate)
	if flat.Ratio() != 0 {
		t.Fatalf("flat ratio = %v", flat.Ratio())
	}

	sig := testutil.DeterministicNoise(3, 5, 256)
	saved := append([]float64(nil), sig...)
	if _, err := MeasureLineNoise(sig, 60, eegRate); err != nil {
		t.Fatalf("MeasureLineNoise: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, sig, saved, 0)

	if _, err := MeasureLineNoise(sig, 200, eegRate); !errors.Is(err, ErrInvalidProbeFrequency) {
		t.Fatalf("err = %v", err)
	}
}
