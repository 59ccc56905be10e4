package biquad

// Cascade is an ordered series of sections. Each section feeds the next.
// A nil or empty Cascade passes signals through unchanged.
type Cascade []Coefficients

// Order returns the filter order: 2 per biquad and 1 per first-order
// section.
func (c Cascade) Order() int {
	order := 0
	for i := range c {
		if c[i].FirstOrder() {
			order++
		} else {
			order += 2
		}
	}
	return order
}

// Filter runs signal once, forward, through the cascade starting from zero
// state. The input is not modified.
func (c Cascade) Filter(signal []float64) []float64 {
	return Filter(c, signal)
}

// FiltFilt applies the cascade with zero phase; see [FiltFilt].
func (c Cascade) FiltFilt(signal []float64) []float64 {
	return FiltFilt(c, signal)
}

// ImpulseResponse returns the first n samples of the causal impulse
// response.
func (c Cascade) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	impulse := make([]float64, n)
	impulse[0] = 1
	return Filter(c, impulse)
}
