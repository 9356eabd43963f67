package gait

import (
	"fmt"
	"strings"
)

// Type picks which legs swing together.
type Type int

const (
	// Two groups of three legs take turns.
	Tripod Type = iota

	// One leg at a time lifts, the rest push in staggered strokes.
	Ripple
)

var typeNames = [...]string{
	Tripod: "tripod",
	Ripple: "ripple",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	for i, n := range typeNames {
		if strings.EqualFold(n, string(b)) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown gait type: %q", string(b))
}

// Mode picks which way the hips swing.
type Mode int

const (
	// Left and right hips swing in opposite directions, moving the body
	// forward.
	Walking Mode = iota

	// Every hip swings the same way, turning the body on the spot.
	Rotating
)

var modeNames = [...]string{
	Walking:  "walking",
	Rotating: "rotating",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	for i, n := range modeNames {
		if strings.EqualFold(n, string(b)) {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown walk mode: %q", string(b))
}
