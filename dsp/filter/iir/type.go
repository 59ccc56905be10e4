package iir

import (
	"fmt"
	"strings"
)

// Type selects the filter response.
type Type int

const (
	Bandpass Type = iota
	Highpass
	Lowpass
	Notch
)

var typeNames = [...]string{
	Bandpass: "bandpass",
	Highpass: "highpass",
	Lowpass:  "lowpass",
	Notch:    "notch",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Butterworth reports whether the type is realized as a Butterworth cascade
// and therefore uses Config.Order.
func (t Type) Butterworth() bool {
	return t == Bandpass || t == Highpass || t == Lowpass
}

// ParseType parses a type name case-insensitively. "bp", "hp", "lp" and
// "bandstop" are accepted as aliases.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bandpass", "bp":
		return Bandpass, nil
	case "highpass", "hp":
		return Highpass, nil
	case "lowpass", "lp":
		return Lowpass, nil
	case "notch", "bandstop":
		return Notch, nil
	default:
		return 0, fmt.Errorf("iir: unknown filter type %q: %w", s, ErrInvalidParams)
	}
}

// Types returns all filter types in declaration order.
func Types() []Type {
	return []Type{Bandpass, Highpass, Lowpass, Notch}
}
