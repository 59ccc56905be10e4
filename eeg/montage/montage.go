// Package montage re-references multi-channel EEG recordings.
//
// All functions allocate new channel arrays and never modify their input.
package montage

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Pair is one bipolar derivation, Anode minus Cathode.
type Pair struct {
	Anode   string
	Cathode string
}

func (p Pair) String() string { return p.Anode + "-" + p.Cathode }

// Longitudinal 10-20 bipolar chain ("double banana").
var chain = [...]Pair{
	{"Fp1", "F7"}, {"F7", "T3"}, {"T3", "T5"}, {"T5", "O1"},
	{"Fp2", "F8"}, {"F8", "T4"}, {"T4", "T6"}, {"T6", "O2"},
	{"Fp1", "F3"}, {"F3", "C3"}, {"C3", "P3"}, {"P3", "O1"},
	{"Fp2", "F4"}, {"F4", "C4"}, {"C4", "P4"}, {"P4", "O2"},
	{"Fz", "Cz"}, {"Cz", "Pz"},
}

// Chain returns a copy of the longitudinal bipolar pair table in
// derivation order.
func Chain() []Pair {
	out := make([]Pair, len(chain))
	copy(out, chain[:])
	return out
}

// AverageReference subtracts the cross-channel mean from every sample.
// Channels are assumed to share one length; shorter channels limit the
// number of output samples.
func AverageReference(channels [][]float64) [][]float64 {
	if len(channels) == 0 {
		return [][]float64{}
	}

	n := len(channels[0])
	for _, ch := range channels[1:] {
		n = min(n, len(ch))
	}

	mean := make([]float64, n)
	for _, ch := range channels {
		floats.Add(mean, ch[:n])
	}
	floats.Scale(1/float64(len(channels)), mean)

	out := make([][]float64, len(channels))
	for i, ch := range channels {
		out[i] = make([]float64, n)
		floats.SubTo(out[i], ch[:n], mean)
	}
	return out
}

// Bipolar derives the longitudinal bipolar montage. Every pair of Chain
// whose two electrodes are both present yields one channel named "A-B"
// with the caller's label spelling. Labels match case-insensitively,
// ignoring surrounding whitespace and an "EEG " prefix.
//
// When no pair matches, Bipolar falls back to sequential differences
// ch[i]-ch[i+1] labelled "L[i]-L[i+1]".
func Bipolar(labels []string, channels [][]float64) ([]string, [][]float64) {
	n := min(len(labels), len(channels))

	index := make(map[string]int, n)
	for i := range n {
		key := normalize(labels[i])
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var (
		outLabels []string
		outData   [][]float64
	)
	for _, p := range chain {
		a, okA := index[normalize(p.Anode)]
		b, okB := index[normalize(p.Cathode)]
		if !okA || !okB {
			continue
		}
		outLabels = append(outLabels, strings.TrimSpace(labels[a])+"-"+strings.TrimSpace(labels[b]))
		outData = append(outData, difference(channels[a], channels[b]))
	}

	if len(outLabels) > 0 {
		return outLabels, outData
	}

	outLabels = []string{}
	outData = [][]float64{}
	for i := 0; i+1 < n; i++ {
		outLabels = append(outLabels, labels[i]+"-"+labels[i+1])
		outData = append(outData, difference(channels[i], channels[i+1]))
	}
	return outLabels, outData
}

func difference(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	floats.SubTo(out, a[:n], b[:n])
	return out
}

func normalize(label string) string {
	s := strings.ToUpper(strings.TrimSpace(label))
	s = strings.TrimPrefix(s, "EEG ")
	return strings.TrimSpace(s)
}
