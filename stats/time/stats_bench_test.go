package time

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

var benchSizes = []int{256, 1024, 4096, 16384, 65536}

func BenchmarkCalculate(b *testing.B) {
	for _, n := range benchSizes {
		signal := testutil.DeterministicNoise(1, 50, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Calculate(signal)
			}
		})
	}
}

func BenchmarkHjorth(b *testing.B) {
	for _, n := range benchSizes {
		signal := testutil.DeterministicNoise(1, 50, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Hjorth(signal)
			}
		})
	}
}
