package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// Response returns H(e^jw) at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Response returns the product of the section responses.
func (c Cascade) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c {
		h *= c[i].Response(freqHz, sampleRate)
	}
	return h
}

// Magnitude returns |H(f)| of the cascade.
func (c Cascade) Magnitude(freqHz, sampleRate float64) float64 {
	return cmplx.Abs(c.Response(freqHz, sampleRate))
}

// MagnitudeDB returns 20*log10(|H(f)|) of a single forward pass.
func (c Cascade) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(c.Magnitude(freqHz, sampleRate))
}

// ZeroPhaseMagnitudeDB returns the magnitude in dB of the cascade applied
// forward and backward, 20*log10(|H|^2). It is -Inf at an exact zero.
func (c Cascade) ZeroPhaseMagnitudeDB(freqHz, sampleRate float64) float64 {
	return 2 * c.MagnitudeDB(freqHz, sampleRate)
}
