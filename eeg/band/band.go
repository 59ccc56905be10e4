// Package band decomposes a power spectral density into the canonical EEG
// frequency bands.
package band

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
)

// Name identifies a canonical band.
type Name int

const (
	Delta Name = iota
	Theta
	Alpha
	Beta
	Gamma
)

// NumBands is the number of canonical bands.
const NumBands = 5

// Def is a half-open frequency range [Low, High) in Hz.
type Def struct {
	Name Name
	Low  float64
	High float64
}

var defs = [NumBands]Def{
	{Delta, 0.5, 4},
	{Theta, 4, 8},
	{Alpha, 8, 13},
	{Beta, 13, 30},
	{Gamma, 30, 100},
}

var names = [NumBands]string{"delta", "theta", "alpha", "beta", "gamma"}

func (n Name) String() string {
	if n < 0 || n >= NumBands {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Contains reports whether f lies in [Low, High).
func (d Def) Contains(f float64) bool {
	return f >= d.Low && f < d.High
}

// Defs returns a copy of the band table, ordered from delta to gamma.
func Defs() []Def {
	out := make([]Def, NumBands)
	copy(out, defs[:])
	return out
}

// Lookup returns the band with the given name, case-insensitively.
func Lookup(name string) (Def, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return defs[i], true
		}
	}
	return Def{}, false
}

// Powers holds the absolute power per band in µV², indexed by Name.
type Powers [NumBands]float64

// Compute sums psd[i]*res over the bins of each band, where res is the
// spacing of the first two frequencies (0 with fewer than two bins). Each
// bin is counted in at most one band.
func Compute(freqs, psd []float64) Powers {
	var p Powers
	for i := range defs {
		p[i] = Integrate(freqs, psd, defs[i].Low, defs[i].High)
	}
	return p
}

// FromPSD computes band powers of a spectrum.PSD.
func FromPSD(psd spectrum.PSD) Powers {
	return Compute(psd.Freqs, psd.Power)
}

// Integrate sums psd[i]*res over bins with lo <= freqs[i] < hi. Only the
// common length of freqs and psd is used.
func Integrate(freqs, psd []float64, lo, hi float64) float64 {
	n := min(len(freqs), len(psd))
	if n < 2 {
		return 0
	}
	res := freqs[1] - freqs[0]

	sum := 0.0
	for i := range n {
		if freqs[i] >= lo && freqs[i] < hi {
			sum += psd[i]
		}
	}
	return sum * res
}

// Get returns the power of band n.
func (p Powers) Get(n Name) float64 {
	if n < 0 || n >= NumBands {
		return 0
	}
	return p[n]
}

// Map returns the powers keyed by band name.
func (p Powers) Map() map[string]float64 {
	m := make(map[string]float64, NumBands)
	for i, v := range p {
		m[names[i]] = v
	}
	return m
}

// Total returns the summed power over all bands.
func (p Powers) Total() float64 {
	return floats.Sum(p[:])
}

// Relative returns each band as a fraction of the total. A zero total
// yields all zeros.
func (p Powers) Relative() Powers {
	total := p.Total()
	if total == 0 {
		return Powers{}
	}
	out := p
	floats.Scale(1/total, out[:])
	return out
}

// Dominant returns the band with the largest power. Ties resolve to the
// lower band.
func (p Powers) Dominant() Name {
	return Name(floats.MaxIdx(p[:]))
}
