package core

// Copy returns a freshly allocated copy of src. A nil or empty src yields an
// empty, non-nil slice.
func Copy(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
// When src is shorter than dst the tail of dst is zeroed.
func CopyInto(dst, src []float64) int {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return n
}
