package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(512), WithChannels(32))
	if cfg.SampleRate != 512 {
		t.Fatalf("sample rate = %v, want 512", cfg.SampleRate)
	}
	if cfg.Channels != 32 {
		t.Fatalf("channels = %d, want 32", cfg.Channels)
	}
	if cfg.Nyquist() != 256 {
		t.Fatalf("nyquist = %v, want 256", cfg.Nyquist())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithChannels(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
