package eeg_test

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg"
	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func ExampleAnalyzer_BandPowers() {
	const fs = 256.0
	rec := eeg.Recording{
		Labels:     []string{"O1"},
		Channels:   [][]float64{testutil.DeterministicSine(10, fs, 20, int(10*fs))},
		SampleRate: fs,
	}

	powers, err := eeg.New().BandPowers(rec)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("dominant band:", powers[0].Dominant())
	// Output:
	// dominant band: alpha
}
