package math3d

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Placement is a move over the ground: a turn about the Z axis through the
// origin (in degrees, counter-clockwise), followed by a shift.
type Placement struct {
	Heading  float64
	Position r3.Vector
}

func (p Placement) String() string {
	return fmt.Sprintf("Placement{x=%+07.2f y=%+07.2f z=%+07.2f, r=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}

// Matrix returns the transform which turns by the heading, then shifts.
func (p Placement) Matrix() Matrix44 {
	return RotZ(p.Heading, p.Position)
}

// PlacementBetween returns the placement which takes the segment from a0 to
// a1 onto the segment from b0 to b1, turning only about Z and not moving
// vertically. a0 lands exactly on b0 (in x and y). a1 lands on b1 only if the
// segments have the same length and slope.
func PlacementBetween(a0, a1, b0, b1 r3.Vector) Placement {
	from := VectorFromTo(a0, a1)
	to := VectorFromTo(b0, b1)

	heading := AngleBetween(from, to)
	if !IsCounterClockwise(from, to, ZAxis) {
		heading = -heading
	}

	t := VectorFromTo(RotZ(heading, ZeroVector3).Apply(a0), b0)
	t.Z = 0

	return Placement{Heading: heading, Position: t}
}
