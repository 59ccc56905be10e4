package spectrum

import "errors"

var (
	// ErrInvalidSampleRate is returned when the sample rate is not a positive finite number.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidWindowSize is returned for analysis windows shorter than 2 samples.
	ErrInvalidWindowSize = errors.New("spectrum: window size must be >= 2")
	// ErrInvalidOverlap is returned for overlap fractions outside [0, 1), or
	// outside [0, 1] for the spectrogram.
	ErrInvalidOverlap = errors.New("spectrum: invalid overlap")
	// ErrInvalidMaxFrequency is returned for a non-positive spectrogram frequency limit.
	ErrInvalidMaxFrequency = errors.New("spectrum: max frequency must be > 0")
	// ErrInvalidProbeFrequency is returned for a Goertzel target outside [0, Nyquist].
	ErrInvalidProbeFrequency = errors.New("spectrum: probe frequency must be in [0, sampleRate/2]")
	// ErrSignalTooShort is returned when coherence cannot form a single segment.
	ErrSignalTooShort = errors.New("spectrum: signal shorter than one analysis window")
)
