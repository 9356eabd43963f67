package math3d

import (
	"fmt"
)

// EulerAngles is a body rotation, in degrees, about the fixed X, Y and Z axes.
type EulerAngles struct {
	X float64
	Y float64
	Z float64
}

// Matrix returns the rotation as a transform (Rx·Ry·Rz).
func (ea EulerAngles) Matrix() Matrix44 {
	return RotXYZ(ea.X, ea.Y, ea.Z)
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{x=%+.2f° y=%+.2f° z=%+.2f°}", ea.X, ea.Y, ea.Z)
}
