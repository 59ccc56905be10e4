// Package eeg ties the DSP engine together for multi-channel recordings.
//
// A [Recording] carries labelled channels sharing one sample rate. An
// [Analyzer] runs the per-channel analyses (statistics, spectra, band
// powers), zero-phase filtering and montage transforms on it. The analyzer
// is immutable after construction, holds no caches and never modifies the
// recordings it is given; every result is newly allocated.
package eeg
