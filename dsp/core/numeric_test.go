package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !IsFinite(0) || !IsFinite(-1e300) {
		t.Fatal("expected ordinary values to be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("expected NaN/Inf to be non-finite")
	}
	if !AllFinite(nil) {
		t.Fatal("empty buffer should be all-finite")
	}
	if AllFinite([]float64{1, 2, math.NaN()}) {
		t.Fatal("expected AllFinite to detect NaN")
	}
}

func TestPowerOfTwo(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {255, 256}, {256, 256}, {257, 512},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.n); got != tt.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if !IsPowerOfTwo(tt.want) {
			t.Fatalf("IsPowerOfTwo(%d) = false", tt.want)
		}
	}
	if IsPowerOfTwo(0) || IsPowerOfTwo(6) {
		t.Fatal("IsPowerOfTwo accepted a non power of two")
	}
}

func TestDBConversions(t *testing.T) {
	if math.Abs(LinearToDB(10)-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", LinearToDB(10))
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBPowerConversions(t *testing.T) {
	if math.Abs(LinearPowerToDB(100)-20) > 1e-12 {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", LinearPowerToDB(100))
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}
