package hexapod

import (
	"fmt"
)

// Range is an inclusive interval of acceptable values for a parameter.
type Range struct {
	Min float64
	Max float64
}

func MakeRange(min float64, max float64) Range {
	return Range{min, max}
}

// Symmetric returns the range [-limit, limit].
func Symmetric(limit float64) Range {
	return Range{-limit, limit}
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Check returns an error naming the parameter if v is out of range.
func (r Range) Check(name string, v float64) error {
	if r.Contains(v) {
		return nil
	}
	return fmt.Errorf("%s must be within %s, got %.2f", name, r, v)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

var (
	// Fraction of the body (or tibia) length to translate by.
	TranslationRange = Symmetric(1)

	// Body rotation about each axis, in degrees.
	RotationRange = Symmetric(90)

	// Hip and leg stance, in degrees.
	StanceRange = Symmetric(90)
)
