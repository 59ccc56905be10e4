package biquad

import "github.com/cwbudde/algo-eeg/dsp/core"

// Filter runs signal once, forward, through the cascade starting from zero
// state. The input is not modified.
func Filter(coeffs Cascade, signal []float64) []float64 {
	out := core.Copy(signal)
	for i := range coeffs {
		NewSection(coeffs[i]).ProcessBlock(out)
	}
	return out
}

// FiltFilt applies the cascade with zero phase. Each section is run forward,
// the result is reversed, the same section is run again from zero state and
// the result is reversed back. The magnitude response is squared and the
// whole signal must be held in memory. The input is not modified.
func FiltFilt(coeffs Cascade, signal []float64) []float64 {
	out := core.Copy(signal)
	for i := range coeffs {
		s := NewSection(coeffs[i])
		s.ProcessBlock(out)
		core.Reverse(out)

		s.Reset()
		s.ProcessBlock(out)
		core.Reverse(out)
	}
	return out
}
