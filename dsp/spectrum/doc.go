// Package spectrum provides spectral estimators for sampled biosignals.
//
// [Welch] averages windowed, overlapping periodograms into a one-sided power
// spectral density in µV²/Hz. Signals shorter than one analysis window fall
// back to a single [Direct] periodogram. [ComputeSpectrogram] produces a
// log-power time-frequency matrix and [Coherence] the magnitude-squared
// coherence between two channels. [MeasureLineNoise] uses a [Goertzel] probe
// to estimate how much of a channel is mains interference.
//
// Estimators are pure functions: inputs are never modified and every result
// is freshly allocated. The transform backend is pluggable through
// [WithBackend].
package spectrum
