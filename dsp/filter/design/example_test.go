package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/filter/biquad"
	"github.com/cwbudde/algo-eeg/dsp/filter/design"
)

func ExampleNotch() {
	fs := 256.0
	c := biquad.Cascade{design.Notch(50, design.NotchQ(50, 2), fs)}

	fmt.Printf("10 Hz: %.2f dB\n", c.MagnitudeDB(10, fs))
	fmt.Printf("51 Hz: %.2f dB\n", c.MagnitudeDB(51, fs))
	// Output:
	// 10 Hz: -0.00 dB
	// 51 Hz: -2.02 dB
}
