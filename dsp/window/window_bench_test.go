package window

import "testing"

func BenchmarkGenerateHann256(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Generate(TypeHann, 256)
	}
}

func BenchmarkApplyHann1024(b *testing.B) {
	buf := make([]float64, 1024)
	for i := range buf {
		buf[i] = 1
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(TypeHann, buf)
	}
}
