package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func TestCoherenceIdenticalSignals(t *testing.T) {
	x := testutil.DeterministicNoise(1, 10, 4096)
	res, err := Coherence(x, x, eegRate)
	if err != nil {
		t.Fatal(err)
	}
	if res.Segments != 31 {
		t.Fatalf("segments=%d, want 31", res.Segments)
	}
	for k, c := range res.Coherence {
		if math.Abs(c-1) > 1e-9 {
			t.Fatalf("coh[%d]=%v, want 1", k, c)
		}
	}
}

func TestCoherenceScaledCopy(t *testing.T) {
	x := testutil.DeterministicNoise(2, 10, 4096)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = -3 * v
	}

	res, err := Coherence(x, y, eegRate)
	if err != nil {
		t.Fatal(err)
	}
	for k, c := range res.Coherence {
		if math.Abs(c-1) > 1e-9 {
			t.Fatalf("coh[%d]=%v, want 1", k, c)
		}
	}
}

func TestCoherenceIndependentNoise(t *testing.T) {
	x := testutil.DeterministicNoise(3, 10, 256*40)
	y := testutil.DeterministicNoise(4, 10, 256*40)

	res, err := Coherence(x, y, eegRate)
	if err != nil {
		t.Fatal(err)
	}

	mean := 0.0
	for _, c := range res.Coherence {
		if c < 0 || c > 1+1e-12 {
			t.Fatalf("coherence out of range: %v", c)
		}
		mean += c
	}
	mean /= float64(len(res.Coherence))
	if mean > 0.1 {
		t.Fatalf("mean coherence of independent noise=%v, want < 0.1", mean)
	}
}

func TestCoherenceSharedRhythm(t *testing.T) {
	alpha := testutil.DeterministicSine(10, eegRate, 20, 2560)
	x := testutil.Add(alpha, testutil.DeterministicNoise(5, 5, 2560))
	y := testutil.Add(alpha, testutil.DeterministicNoise(6, 5, 2560))

	res, err := Coherence(x, y, eegRate)
	if err != nil {
		t.Fatal(err)
	}
	if res.Freqs[10] != 10 {
		t.Fatalf("bin 10 is %v Hz", res.Freqs[10])
	}
	if res.Coherence[10] < 0.9 {
		t.Fatalf("coherence at 10 Hz=%v, want > 0.9", res.Coherence[10])
	}
}

func TestCoherenceEdgeCases(t *testing.T) {
	if _, err := Coherence(make([]float64, 100), make([]float64, 100), eegRate); !errors.Is(err, ErrSignalTooShort) {
		t.Fatalf("err=%v, want ErrSignalTooShort", err)
	}

	// Mismatched lengths use the shorter signal.
	x := testutil.DeterministicNoise(7, 1, 1024)
	y := testutil.DeterministicNoise(8, 1, 600)
	res, err := Coherence(x, y, eegRate)
	if err != nil {
		t.Fatal(err)
	}
	if res.Segments != 3 {
		t.Fatalf("segments=%d, want 3", res.Segments)
	}

	// Silent inputs give zero coherence instead of NaN.
	res, err = Coherence(make([]float64, 512), make([]float64, 512), eegRate)
	if err != nil {
		t.Fatal(err)
	}
	for k, c := range res.Coherence {
		if c != 0 {
			t.Fatalf("coh[%d]=%v, want 0", k, c)
		}
	}
}
