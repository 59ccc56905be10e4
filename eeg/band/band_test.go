package band

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func uniformPSD(res float64, bins int, value float64) ([]float64, []float64) {
	freqs := make([]float64, bins)
	psd := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * res
		psd[i] = value
	}
	return freqs, psd
}

func TestCompute_FlatSpectrum(t *testing.T) {
	freqs, psd := uniformPSD(0.5, 257, 2)
	p := Compute(freqs, psd)

	// Bins per band at 0.5 Hz spacing: delta 0.5..3.5 (7), theta 4..7.5 (8),
	// alpha 8..12.5 (10), beta 13..29.5 (34), gamma 30..99.5 (140).
	want := Powers{7, 8, 10, 34, 140}
	for i := range want {
		assert.InDelta(t, want[i], p[i], 1e-12, Name(i).String())
	}
}

func TestCompute_HalfOpenBoundaries(t *testing.T) {
	freqs := []float64{4, 8, 13, 30, 100}
	psd := []float64{1, 10, 100, 1000, 10000}
	// res = 4
	p := Compute(freqs, psd)

	assert.Equal(t, 0.0, p.Get(Delta))
	assert.Equal(t, 4.0, p.Get(Theta))
	assert.Equal(t, 40.0, p.Get(Alpha))
	assert.Equal(t, 400.0, p.Get(Beta))
	assert.Equal(t, 4000.0, p.Get(Gamma), "100 Hz is outside gamma")
}

func TestCompute_Degenerate(t *testing.T) {
	assert.Equal(t, Powers{}, Compute(nil, nil))
	assert.Equal(t, Powers{}, Compute([]float64{10}, []float64{5}))
	// Mismatched lengths use the common prefix.
	p := Compute([]float64{9, 10, 11}, []float64{1, 1})
	assert.Equal(t, 2.0, p.Get(Alpha))
}

func TestFromPSD_AlphaDominates(t *testing.T) {
	fs := 256.0
	sig := testutil.DeterministicSine(10, fs, 20, int(10*fs))

	psd, err := spectrum.Welch(sig, fs)
	require.NoError(t, err)

	p := FromPSD(psd)
	assert.Equal(t, Alpha, p.Dominant())
	assert.Greater(t, p.Relative().Get(Alpha), 0.95)

	// Band sum cannot exceed the integrated spectrum.
	assert.LessOrEqual(t, p.Total(), psd.Range(0, 100).Integrate()+1e-9)
}

func TestPowers_Helpers(t *testing.T) {
	p := Powers{1, 2, 3, 4, 0}

	assert.Equal(t, 10.0, p.Total())
	rel := p.Relative()
	assert.InDelta(t, 1.0, rel.Total(), 1e-12)
	assert.InDelta(t, 0.3, rel.Get(Alpha), 1e-12)
	assert.Equal(t, Beta, p.Dominant())
	assert.Equal(t, 0.0, p.Get(Name(12)))

	m := p.Map()
	require.Len(t, m, NumBands)
	assert.Equal(t, 3.0, m["alpha"])

	assert.Equal(t, Powers{}, Powers{}.Relative())
}

func TestDefsAndLookup(t *testing.T) {
	d := Defs()
	require.Len(t, d, NumBands)
	d[0].Low = 99
	assert.Equal(t, 0.5, Defs()[0].Low, "Defs must return a copy")

	alpha, ok := Lookup(" Alpha ")
	require.True(t, ok)
	assert.Equal(t, Def{Alpha, 8, 13}, alpha)
	assert.True(t, alpha.Contains(8))
	assert.False(t, alpha.Contains(13))

	_, ok = Lookup("mu")
	assert.False(t, ok)

	assert.Equal(t, "gamma", Gamma.String())
	assert.Equal(t, "Name(-1)", Name(-1).String())
}

func TestIntegrate_ArbitraryRange(t *testing.T) {
	freqs, psd := uniformPSD(1, 129, 1)
	assert.Equal(t, 3.0, Integrate(freqs, psd, 49, 52))
	assert.Equal(t, 0.0, Integrate(freqs, psd, 52, 49))
	assert.False(t, math.IsNaN(Integrate(freqs, psd, math.Inf(-1), math.Inf(1))))
}
