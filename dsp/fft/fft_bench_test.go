package fft

import (
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func BenchmarkForward256(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Forward(signal)
	}
}

func BenchmarkPlanned256(b *testing.B) {
	signal := testutil.DeterministicNoise(1, 1, 256)
	p := NewPlanned()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Transform(signal); err != nil {
			b.Fatal(err)
		}
	}
}
