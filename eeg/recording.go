package eeg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// ErrInvalidRecording is wrapped by every Recording.Validate failure.
var ErrInvalidRecording = errors.New("eeg: invalid recording")

// ErrUnknownChannel is returned when a label does not name a channel.
var ErrUnknownChannel = errors.New("eeg: unknown channel")

// Recording is a set of equally long channels sampled at SampleRate Hz.
// Samples are in µV.
type Recording struct {
	Labels     []string
	Channels   [][]float64
	SampleRate float64
}

// Validate checks that the sample rate is positive and finite, that there
// is at least one channel, one label per channel and that all channels
// share one length.
func (r Recording) Validate() error {
	if !(r.SampleRate > 0) || !core.IsFinite(r.SampleRate) {
		return fmt.Errorf("%w: sample rate %g", ErrInvalidRecording, r.SampleRate)
	}
	if len(r.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidRecording)
	}
	if len(r.Labels) != len(r.Channels) {
		return fmt.Errorf("%w: %d labels for %d channels", ErrInvalidRecording, len(r.Labels), len(r.Channels))
	}
	n := len(r.Channels[0])
	for i, ch := range r.Channels {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %q has %d samples, want %d", ErrInvalidRecording, r.Labels[i], len(ch), n)
		}
	}
	return nil
}

// Samples returns the per-channel sample count, 0 without channels.
func (r Recording) Samples() int {
	if len(r.Channels) == 0 {
		return 0
	}
	return len(r.Channels[0])
}

// Duration returns the recording length in seconds.
func (r Recording) Duration() float64 {
	if !(r.SampleRate > 0) {
		return 0
	}
	return float64(r.Samples()) / r.SampleRate
}

// Index returns the position of the channel whose label matches
// case-insensitively, or -1.
func (r Recording) Index(label string) int {
	label = strings.TrimSpace(label)
	for i, l := range r.Labels {
		if strings.EqualFold(strings.TrimSpace(l), label) {
			return i
		}
	}
	return -1
}

// Channel returns the samples of the labelled channel.
func (r Recording) Channel(label string) ([]float64, error) {
	i := r.Index(label)
	if i < 0 || i >= len(r.Channels) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, label)
	}
	return r.Channels[i], nil
}

func (r Recording) withChannels(labels []string, channels [][]float64) Recording {
	return Recording{
		Labels:     labels,
		Channels:   channels,
		SampleRate: r.SampleRate,
	}
}

func (r Recording) labelsCopy() []string {
	out := make([]string, len(r.Labels))
	copy(out, r.Labels)
	return out
}
