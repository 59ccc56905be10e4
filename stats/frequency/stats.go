// Package frequency computes shape descriptors of a one-sided power spectrum.
//
// The inputs are the frequency axis in Hz and the power density per bin, as
// produced by Welch or periodogram estimation. Bins are assumed uniformly
// spaced and ascending.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
)

// DefaultEdge is the power fraction used for the spectral edge frequency.
const DefaultEdge = 0.95

// Stats holds spectral descriptors of a power spectrum.
type Stats struct {
	Bins            int
	TotalPower      float64 // µV², sum of power times bin spacing
	PeakFrequency   float64 // Hz
	PeakPower       float64 // µV²/Hz
	Centroid        float64 // power-weighted mean frequency, Hz
	Spread          float64 // power-weighted standard deviation, Hz
	MedianFrequency float64 // frequency below which half the power lies, Hz
	EdgeFrequency   float64 // frequency below which DefaultEdge of the power lies, Hz
	Flatness        float64 // geometric over arithmetic mean, 0..1
	Entropy         float64 // normalized Shannon entropy, 0..1
	Bandwidth       float64 // -3 dB width around the peak, Hz
}

// Calculate computes all descriptors. Mismatched inputs are truncated to the
// shorter length. An empty or all-zero spectrum yields zero descriptors,
// except Bins and the peak location.
func Calculate(freqs, power []float64) Stats {
	n := min(len(freqs), len(power))
	if n == 0 {
		return Stats{}
	}
	freqs, power = freqs[:n], power[:n]

	peak := floats.MaxIdx(power)
	s := Stats{
		Bins:          n,
		PeakFrequency: freqs[peak],
		PeakPower:     power[peak],
	}

	total := floats.Sum(power)
	if total <= 0 {
		return s
	}
	if n > 1 {
		s.TotalPower = total * (freqs[1] - freqs[0])
	}

	mean, variance := stat.PopMeanVariance(freqs, power)
	s.Centroid = mean
	s.Spread = math.Sqrt(max(variance, 0))
	s.MedianFrequency = edge(freqs, power, 0.5, total)
	s.EdgeFrequency = edge(freqs, power, DefaultEdge, total)
	s.Flatness = Flatness(power)
	s.Entropy = Entropy(power)
	s.Bandwidth = bandwidth(freqs, power, peak)
	return s
}

// FromPSD computes the descriptors of p.
func FromPSD(p spectrum.PSD) Stats {
	s := Calculate(p.Freqs, p.Power)
	s.TotalPower = p.Integrate()
	return s
}

// EdgeFrequency returns the lowest bin frequency at which the cumulative
// power reaches fraction of the total. fraction is clamped to [0, 1].
func EdgeFrequency(freqs, power []float64, fraction float64) float64 {
	n := min(len(freqs), len(power))
	if n == 0 {
		return 0
	}
	total := floats.Sum(power[:n])
	if total <= 0 {
		return 0
	}
	return edge(freqs[:n], power[:n], fraction, total)
}

func edge(freqs, power []float64, fraction, total float64) float64 {
	threshold := min(max(fraction, 0), 1) * total
	cum := 0.0
	for i, v := range power {
		cum += v
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// Flatness returns the spectral flatness (Wiener entropy) of power in the
// range 0..1.
//
//	flatness = exp(mean(log(P_i))) / mean(P_i)
//
// The DC bin is excluded. A single zero bin makes the geometric mean, and so
// the result, zero.
func Flatness(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}

	bins := power[1:]
	meanLin := floats.Sum(bins) / float64(len(bins))
	if meanLin <= 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}
	return math.Exp(sumLog/float64(len(bins))) / meanLin
}

// Entropy returns the Shannon entropy of the power distribution normalized
// by log(len(power)), so a flat spectrum scores 1 and a single line 0.
func Entropy(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}
	total := floats.Sum(power)
	if total <= 0 {
		return 0
	}

	p := make([]float64, len(power))
	floats.ScaleTo(p, 1/total, power)
	return stat.Entropy(p) / math.Log(float64(len(p)))
}

// Bandwidth returns the width in Hz of the region around the spectral peak
// where power stays above half the peak power.
func Bandwidth(freqs, power []float64) float64 {
	n := min(len(freqs), len(power))
	if n < 2 {
		return 0
	}
	return bandwidth(freqs[:n], power[:n], floats.MaxIdx(power[:n]))
}

func bandwidth(freqs, power []float64, peak int) float64 {
	n := len(power)
	if n < 2 || power[peak] <= 0 {
		return 0
	}
	threshold := power[peak] / 2

	lower := freqs[0]
	for i := peak; i >= 1; i-- {
		if power[i-1] <= threshold && power[i] > threshold {
			lower = crossing(freqs[i-1], freqs[i], power[i-1], power[i], threshold)
			break
		}
	}

	upper := freqs[n-1]
	for i := peak; i < n-1; i++ {
		if power[i+1] <= threshold && power[i] > threshold {
			upper = crossing(freqs[i], freqs[i+1], power[i], power[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0)
}

// crossing interpolates the frequency where power passes threshold between
// two neighbouring bins.
func crossing(f0, f1, p0, p1, threshold float64) float64 {
	d := p1 - p0
	if d == 0 {
		return (f0 + f1) / 2
	}
	return f0 + (threshold-p0)/d*(f1-f0)
}
