// Package iir designs and applies zero-phase IIR filters for biosignals.
//
// A [Config] selects one of four filter types. Butterworth bandpass,
// highpass and lowpass filters are realized as cascades of biquad sections
// from dsp/filter/design/pass; the notch is a single RBJ notch with a fixed
// 2 Hz bandwidth. Every filter is applied forward and backward
// ([biquad.FiltFilt]) so the output has no phase shift and the magnitude
// response is squared.
//
// Frequencies are read from the config by type:
//
//	Bandpass  Low and High
//	Highpass  Low
//	Lowpass   High
//	Notch     Low (the notch centre)
//
// [Config.Validate] rejects unusable parameters with a [*ValidationError]
// before any processing. A cascade whose poles are not strictly inside the
// unit circle is refused, and outputs containing NaN or Inf are discarded;
// both return [ErrUnstable].
package iir
