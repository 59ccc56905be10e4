package fft

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNotPowerOfTwo is returned when a spectrum passed to Inverse is not a
// power-of-two length or its parts differ in length.
var ErrNotPowerOfTwo = errors.New("fft: spectrum length must be a power of two")

// Result is a full-length complex spectrum.
//
// N is always a power of two and may exceed LogicalLength, the number of
// real samples that were transformed; the remaining N-LogicalLength inputs
// were zeros.
type Result struct {
	Re, Im        []float64
	N             int
	LogicalLength int
}

// Forward transforms a real signal. The input is not modified and the
// returned buffers are freshly allocated. Signals of length 0 or 1 yield the
// trivial N=1 spectrum.
func Forward(signal []float64) Result {
	n := core.NextPowerOfTwo(len(signal))
	re := make([]float64, n)
	im := make([]float64, n)
	core.CopyInto(re, signal)

	transform(re, im)

	return Result{Re: re, Im: im, N: n, LogicalLength: len(signal)}
}

// Inverse computes the inverse transform of a power-of-two spectrum,
// including the 1/N scale. Both parts of the time-domain result are
// returned; for the spectrum of a real signal the imaginary part is ~0.
func Inverse(re, im []float64) ([]float64, []float64, error) {
	n := len(re)
	if len(im) != n || !core.IsPowerOfTwo(n) {
		return nil, nil, fmt.Errorf("%w: re=%d im=%d", ErrNotPowerOfTwo, len(re), len(im))
	}

	outRe := core.Copy(re)
	outIm := make([]float64, n)
	for i, v := range im {
		outIm[i] = -v
	}

	transform(outRe, outIm)

	scale := 1 / float64(n)
	for i := range outRe {
		outRe[i] *= scale
		outIm[i] *= -scale
	}

	return outRe, outIm, nil
}

// Bins returns the number of non-redundant bins of a real-input spectrum,
// N/2+1 (1 for the trivial N=1 spectrum).
func (r Result) Bins() int {
	return r.N/2 + 1
}

// Power returns |X[k]|^2 for the non-redundant bins [0, N/2].
func (r Result) Power() []float64 {
	bins := min(r.Bins(), len(r.Re))
	out := make([]float64, bins)
	if bins > 0 {
		vecmath.Power(out, r.Re[:bins], r.Im[:bins])
	}
	return out
}

// Frequencies returns the centre frequency in Hz of each non-redundant bin.
func (r Result) Frequencies(sampleRate float64) []float64 {
	return BinFrequencies(r.N, sampleRate)
}

// BinFrequencies returns k*sampleRate/n for k in [0, n/2].
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	res := sampleRate / float64(n)
	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = float64(k) * res
	}
	return out
}

// transform runs the in-place forward DFT (e^{-j2pi kn/N} kernel) over a
// power-of-two buffer.
func transform(re, im []float64) {
	n := len(re)
	if n < 2 {
		return
	}

	bitReverse(re, im)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		// One Sincos per stage; the twiddle is advanced by rotation.
		sin, cos := math.Sincos(-2 * math.Pi / float64(size))

		for start := 0; start < n; start += size {
			wr, wi := 1.0, 0.0
			for k := 0; k < half; k++ {
				i := start + k
				j := i + half

				tr := wr*re[j] - wi*im[j]
				ti := wr*im[j] + wi*re[j]

				re[j] = re[i] - tr
				im[j] = im[i] - ti
				re[i] += tr
				im[i] += ti

				wr, wi = wr*cos-wi*sin, wr*sin+wi*cos
			}
		}
	}
}

func bitReverse(re, im []float64) {
	n := len(re)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit

		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
