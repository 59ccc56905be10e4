package biquad

import (
	"math"
	"testing"
)

func TestFilter_ForwardOnlyIsCausal(t *testing.T) {
	coeffs := []Coefficients{simpleLowpass()}
	in := make([]float64, 32)
	in[10] = 1

	out := Filter(coeffs, in)
	for i := 0; i < 10; i++ {
		if out[i] != 0 {
			t.Fatalf("out[%d]=%v before the impulse", i, out[i])
		}
	}
	if out[10] == 0 {
		t.Fatal("expected a response at the impulse position")
	}
}

func TestFiltFilt_SymmetricImpulseResponse(t *testing.T) {
	coeffs := []Coefficients{
		simpleLowpass(),
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1},
	}
	const n, center = 201, 100
	in := make([]float64, n)
	in[center] = 1

	out := FiltFilt(coeffs, in)
	for k := 1; k < 60; k++ {
		if !almostEqual(out[center-k], out[center+k], 1e-9) {
			t.Fatalf("asymmetric at lag %d: %v vs %v", k, out[center-k], out[center+k])
		}
	}
}

func TestFiltFilt_DoesNotMutateInput(t *testing.T) {
	in := []float64{1, -2, 3, -4, 5, -6}
	orig := append([]float64(nil), in...)

	_ = FiltFilt([]Coefficients{simpleLowpass()}, in)
	_ = Filter([]Coefficients{simpleLowpass()}, in)
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestFiltFilt_EmptyCascadeAndSignal(t *testing.T) {
	in := []float64{1, 2, 3}
	out := FiltFilt(nil, in)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("empty cascade changed sample %d", i)
		}
	}
	if got := FiltFilt([]Coefficients{simpleLowpass()}, nil); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestFiltFilt_SquaresMagnitude(t *testing.T) {
	c := simpleLowpass()
	coeffs := []Coefficients{c}
	sr := 1000.0
	freq := 50.0

	want := Cascade(coeffs).Magnitude(freq, sr)
	want *= want

	n := 4000
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * freq * float64(i) / sr)
	}
	out := FiltFilt(coeffs, in)

	// Compare the steady-state amplitude in the middle of the signal.
	peak := 0.0
	for i := n / 4; i < 3*n/4; i++ {
		peak = max(peak, math.Abs(out[i]))
	}
	if !almostEqual(peak, want, 1e-3) {
		t.Fatalf("peak=%v, want %v", peak, want)
	}
}
