// Package fft implements the discrete Fourier transform used by the spectral
// estimators.
//
// [Forward] is an iterative radix-2 Cooley-Tukey transform. Inputs of any
// length are zero-padded on the high end to the next power of two, and the
// returned [Result] carries both the padded size N and the logical input
// length so callers can compute frequency resolution as sampleRate/N.
//
// The [Transformer] interface lets estimators swap the default [Radix2]
// implementation for a [Planned] backend built on algo-fft plans.
package fft
