// Package time computes descriptive time-domain statistics of biosignal
// channels.
package time

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of one channel. Amplitude fields are
// in the signal's unit (µV), Variance in its square.
type Stats struct {
	Length        int
	Mean          float64
	Std           float64
	Variance      float64
	RMS           float64
	Min           float64
	Max           float64
	PeakToPeak    float64 // Max - Min
	Skewness      float64
	Kurtosis      float64 // excess kurtosis
	ZeroCrossings int
}

// HjorthParams are the Hjorth activity, mobility and complexity descriptors.
type HjorthParams struct {
	Activity   float64
	Mobility   float64
	Complexity float64
}

// Calculate computes all statistics of signal. The first pass accumulates
// sum and sum of squares, extrema and zero crossings; variance is
// E[x²]-E[x]² clamped at 0. A second pass accumulates the third and fourth
// central moments. Skewness and kurtosis are 0 for a constant signal. An
// empty signal yields the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum, sumSq    float64
		maxVal        = signal[0]
		minVal        = signal[0]
		zeroCrossings int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}

		if x < minVal {
			minVal = x
		}

		if i > 0 && crosses(signal[i-1], x) {
			zeroCrossings++
		}
	}

	nf := float64(n)
	mean := sum / nf
	variance := math.Max(0, sumSq/nf-mean*mean)
	if maxVal == minVal {
		variance = 0
	}
	std := math.Sqrt(variance)

	var m3, m4 float64
	for _, x := range signal {
		d := x - mean
		d2 := d * d
		m3 += d2 * d
		m4 += d2 * d2
	}

	var skewness, kurtosis float64
	if std > 0 {
		skewness = (m3 / nf) / (std * std * std)
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:        n,
		Mean:          mean,
		Std:           std,
		Variance:      variance,
		RMS:           math.Sqrt(sumSq / nf),
		Min:           minVal,
		Max:           maxVal,
		PeakToPeak:    maxVal - minVal,
		Skewness:      skewness,
		Kurtosis:      kurtosis,
		ZeroCrossings: zeroCrossings,
	}
}

// CalculateAll computes Stats for every channel independently.
func CalculateAll(channels [][]float64) []Stats {
	out := make([]Stats, len(channels))
	for i, ch := range channels {
		out[i] = Calculate(ch)
	}
	return out
}

// Hjorth computes the Hjorth parameters from the population variances of
// the signal and its first and second differences:
//
//	activity   = var(x)
//	mobility   = sqrt(var(x')/var(x))
//	complexity = sqrt(var(x'')/var(x')) / mobility
//
// Signals shorter than 3 samples and constant signals yield all zeros. When
// the first difference has zero variance, as for a linear ramp, mobility and
// complexity are 0 and activity is still var(x).
func Hjorth(signal []float64) HjorthParams {
	if len(signal) < 3 {
		return HjorthParams{}
	}

	d1 := diff(signal)
	d2 := diff(d1)

	v0 := stat.PopVariance(signal, nil)
	v1 := stat.PopVariance(d1, nil)
	v2 := stat.PopVariance(d2, nil)
	if v0 == 0 {
		return HjorthParams{}
	}
	if v1 == 0 {
		return HjorthParams{Activity: v0}
	}

	mobility := math.Sqrt(v1 / v0)
	return HjorthParams{
		Activity:   v0,
		Mobility:   mobility,
		Complexity: math.Sqrt(v2/v1) / mobility,
	}
}

func diff(x []float64) []float64 {
	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = x[i+1] - x[i]
	}
	return out
}

// crosses reports a sign change, counting zero as non-negative.
func crosses(prev, cur float64) bool {
	return (prev < 0) != (cur < 0)
}

// ZeroCrossings returns the number of sign changes in the signal, with zero
// counted as non-negative.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if crosses(signal[i-1], signal[i]) {
			count++
		}
	}

	return count
}
