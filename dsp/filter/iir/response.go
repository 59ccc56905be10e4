package iir

import "math"

const (
	responsePoints  = 512
	responseMinFreq = 0.1
)

// Response is the magnitude response of a zero-phase filter sampled on a
// logarithmic frequency grid.
type Response struct {
	Freqs       []float64
	MagnitudeDB []float64
}

// FrequencyResponse evaluates the forward-backward magnitude of cfg at 512
// log-spaced frequencies from 0.1 Hz to Nyquist. Each value is
// 20*log10(|H|^2), the response of the cascade applied twice, and is -Inf
// where the cascade has an exact zero.
func FrequencyResponse(cfg Config, sampleRate float64) (Response, error) {
	coeffs, err := prepare(cfg, sampleRate)
	if err != nil {
		return Response{}, err
	}

	freqs := LogFrequencies(responseMinFreq, sampleRate/2, responsePoints)
	mags := make([]float64, len(freqs))
	for i, f := range freqs {
		mags[i] = coeffs.ZeroPhaseMagnitudeDB(f, sampleRate)
	}
	return Response{Freqs: freqs, MagnitudeDB: mags}, nil
}

// LogFrequencies returns n logarithmically spaced frequencies from lo to hi
// inclusive. It returns nil when n < 1 or the range is not positive.
func LogFrequencies(lo, hi float64, n int) []float64 {
	if n < 1 || !(lo > 0) || !(hi >= lo) {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	out[n-1] = hi
	return out
}
