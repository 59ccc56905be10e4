package iir

import (
	"errors"
	"math"
	"testing"
)

func TestFrequencyResponse_Grid(t *testing.T) {
	resp, err := FrequencyResponse(Config{Type: Lowpass, High: 30, Order: 4}, fs)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Freqs) != 512 || len(resp.MagnitudeDB) != 512 {
		t.Fatalf("points=%d/%d, want 512", len(resp.Freqs), len(resp.MagnitudeDB))
	}
	if resp.Freqs[0] != 0.1 || resp.Freqs[511] != 128 {
		t.Fatalf("range [%v, %v], want [0.1, 128]", resp.Freqs[0], resp.Freqs[511])
	}
	for i := 1; i < len(resp.Freqs); i++ {
		if resp.Freqs[i] <= resp.Freqs[i-1] {
			t.Fatalf("frequencies not increasing at %d", i)
		}
	}
	if math.Abs(resp.MagnitudeDB[0]) > 1e-6 {
		t.Fatalf("passband %v dB, want 0", resp.MagnitudeDB[0])
	}
}

func TestFrequencyResponse_DoubledAtCutoff(t *testing.T) {
	// A single pass is -3 dB at the cutoff; forward-backward is -6 dB.
	resp, err := FrequencyResponse(Config{Type: Highpass, Low: 1, Order: 2}, fs)
	if err != nil {
		t.Fatal(err)
	}
	best := 0
	for i, f := range resp.Freqs {
		if math.Abs(f-1) < math.Abs(resp.Freqs[best]-1) {
			best = i
		}
	}
	if db := resp.MagnitudeDB[best]; db > -5 || db < -7 {
		t.Fatalf("%.3f Hz: %.2f dB, want about -6", resp.Freqs[best], db)
	}
}

func TestFrequencyResponse_Invalid(t *testing.T) {
	_, err := FrequencyResponse(Config{Type: Notch, Low: 200}, fs)
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("err=%v, want ErrInvalidParams", err)
	}
}

func TestLogFrequencies(t *testing.T) {
	got := LogFrequencies(1, 100, 3)
	want := []float64{1, 10, 100}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if LogFrequencies(0, 10, 5) != nil || LogFrequencies(1, 10, 0) != nil {
		t.Fatal("expected nil for invalid input")
	}
	if got := LogFrequencies(2, 10, 1); len(got) != 1 || got[0] != 2 {
		t.Fatalf("single point=%v", got)
	}
}

func TestTypeStringAndParse(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("round trip %v: got %v err %v", typ, got, err)
		}
	}
	if got, _ := ParseType(" HP "); got != Highpass {
		t.Fatalf("alias hp=%v", got)
	}
	if _, err := ParseType("comb"); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("err=%v", err)
	}
	if s := Type(9).String(); s != "Type(9)" {
		t.Fatalf("String()=%q", s)
	}
	if Notch.Butterworth() || !Bandpass.Butterworth() {
		t.Fatal("Butterworth classification wrong")
	}
}
