package pass

import (
	"github.com/cwbudde/algo-eeg/dsp/filter/biquad"
	"github.com/cwbudde/algo-eeg/dsp/filter/design"
)

// ButterworthLP designs a lowpass Butterworth cascade of ceil(order/2)
// sections.
//
// Section Qs use the sine form 1/(2*sin(π(2i+1)/(2*order))), which for even
// orders is the same set as 1/(2*cos(π(2k+1)/(2*order))). For odd orders the
// cosine form would give the real pole an unbounded Q, so the final section
// is instead a bilinear first-order section (B2=A2=0) with its pole at
// (1-k)/(1+k), k = tan(π*freq/sampleRate).
func ButterworthLP(freq float64, order int, sampleRate float64) biquad.Cascade {
	if order <= 0 {
		return nil
	}
	sections := make(biquad.Cascade, 0, Sections(order))

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, design.Lowpass(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}
	return sections
}

// ButterworthHP designs a highpass Butterworth cascade of ceil(order/2)
// sections.
//
// Section Qs use the sine form 1/(2*sin(π(2i+1)/(2*order))), which for even
// orders is the same set as 1/(2*cos(π(2k+1)/(2*order))). For odd orders the
// cosine form would give the real pole an unbounded Q, so the final section
// is instead a bilinear first-order section (B2=A2=0) with its pole at
// (1-k)/(1+k), k = tan(π*freq/sampleRate).
func ButterworthHP(freq float64, order int, sampleRate float64) biquad.Cascade {
	if order <= 0 {
		return nil
	}
	sections := make(biquad.Cascade, 0, Sections(order))

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, design.Highpass(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

// ButterworthBP designs a bandpass as a highpass cascade at low followed by
// a lowpass cascade at high, both of the given order.
func ButterworthBP(low, high float64, order int, sampleRate float64) biquad.Cascade {
	if order <= 0 {
		return nil
	}
	hp := ButterworthHP(low, order, sampleRate)
	return append(hp, ButterworthLP(high, order, sampleRate)...)
}

// Sections returns the number of biquad sections of a Butterworth cascade of
// the given order.
func Sections(order int) int {
	if order <= 0 {
		return 0
	}
	return (order + 1) / 2
}
