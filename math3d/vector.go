package math3d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/utils"
)

var (
	ZeroVector3 = r3.Vector{}
	XAxis       = r3.Vector{X: 1}
	YAxis       = r3.Vector{Y: 1}
	ZAxis       = r3.Vector{Z: 1}
)

// Point3D is a position in some coordinate space, tagged with a name and id
// which are only used to tell points apart when debugging or matching. They
// play no part in the geometry.
type Point3D struct {
	r3.Vector
	Name string
	ID   string
}

// MakePoint returns a new named point.
func MakePoint(x, y, z float64, name, id string) Point3D {
	return Point3D{r3.Vector{X: x, Y: y, Z: z}, name, id}
}

func (p Point3D) String() string {
	return fmt.Sprintf("%s{x=%0.2f y=%0.2f z=%0.2f}", p.Name, p.X, p.Y, p.Z)
}

// Markdown renders the point the way the failure messages want it.
func (p Point3D) Markdown() string {
	return fmt.Sprintf("%s\n\n(x: %.2f, y: %.2f, z: %.2f)", p.Name, p.X, p.Y, p.Z)
}

// Trot returns a copy of the point transformed by the given matrix, i.e. the
// point is assumed to be in a local frame whose pose relative to the parent
// frame is m.
func (p Point3D) Trot(m Matrix44) Point3D {
	return Point3D{m.Apply(p.Vector), p.Name, p.ID}
}

// Shift returns a copy of the point translated by t.
func (p Point3D) Shift(t r3.Vector) Point3D {
	return Point3D{p.Vector.Add(t), p.Name, p.ID}
}

// TrotShift transforms, then translates.
func (p Point3D) TrotShift(m Matrix44, t r3.Vector) Point3D {
	return p.Trot(m).Shift(t)
}

// Renamed returns a copy of the point transformed by m, with a new identity.
func (p Point3D) Renamed(m Matrix44, name, id string) Point3D {
	return Point3D{m.Apply(p.Vector), name, id}
}

// VectorFromTo returns the vector pointing from a to b.
func VectorFromTo(a, b r3.Vector) r3.Vector {
	return b.Sub(a)
}

// Unit returns v scaled to length one. Zero vectors are returned unchanged.
func Unit(v r3.Vector) r3.Vector {
	l := v.Norm()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// AngleBetween returns the angle (in degrees, 0..180) between two vectors.
// Zero if either of them has no length.
func AngleBetween(a, b r3.Vector) float64 {
	if a.Norm() == 0 || b.Norm() == 0 {
		return 0
	}
	cos := a.Dot(b) / math.Sqrt(a.Dot(a)*b.Dot(b))
	cos = math.Max(-1, math.Min(1, cos))
	return utils.Deg(math.Acos(cos))
}

// IsCounterClockwise returns true if a·(b×n) is positive.
func IsCounterClockwise(a, b, n r3.Vector) bool {
	return a.Dot(b.Cross(n)) > 0
}

// ProjectOntoPlane returns the component of u which lies in the plane with
// normal n.
func ProjectOntoPlane(u, n r3.Vector) r3.Vector {
	s := u.Dot(n) / n.Dot(n)
	return u.Sub(n.Mul(s))
}

// PlaneNormal returns the unit normal of the plane through the three points,
// oriented by the right-hand rule (a -> b -> c).
func PlaneNormal(a, b, c r3.Vector) r3.Vector {
	return Unit(b.Sub(a).Cross(c.Sub(a)))
}
