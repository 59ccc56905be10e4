package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-eeg/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f std=%.1f zc=%d\n", s.RMS, s.Std, s.ZeroCrossings)

	// Output:
	// rms=1.0 std=1.0 zc=3
}

func ExampleHjorth() {
	h := timestats.Hjorth([]float64{0, 1, 0, -1, 0, 1, 0, -1, 0})
	fmt.Printf("activity=%.2f\n", h.Activity)

	// Output:
	// activity=0.44
}
