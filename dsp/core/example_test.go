package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(500),
		core.WithChannels(21),
	)

	fmt.Printf("sampleRate=%.0f channels=%d nyquist=%.0f\n", cfg.SampleRate, cfg.Channels, cfg.Nyquist())

	// Output:
	// sampleRate=500 channels=21 nyquist=250
}

func ExampleNextPowerOfTwo() {
	fmt.Println(core.NextPowerOfTwo(0), core.NextPowerOfTwo(1), core.NextPowerOfTwo(200), core.NextPowerOfTwo(256))

	// Output:
	// 1 1 256 256
}
