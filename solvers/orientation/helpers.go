package orientation

import (
	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "orientation"})

const (
	// How far (perpendicular to the plane) a point must be under a candidate
	// ground plane before it counts as below it.
	lowerTolerance = 1.0

	// How close a leg point must be to the ground plane for the leg to count as
	// touching it.
	groundTolerance = 10.0

	// Slack on each barycentric coordinate of the center of gravity.
	stabilityTolerance = 0.001
)

// Trio is three leg indices.
type Trio [3]int

// Well separated trios, tried first.
var someTrios = []Trio{
	{0, 1, 3},
	{0, 1, 4},
	{0, 2, 3},
	{0, 2, 4},
	{0, 2, 5},
	{0, 3, 4},
	{0, 3, 5},
	{1, 2, 4},
	{1, 2, 5},
	{1, 3, 4},
	{1, 3, 5},
	{1, 4, 5},
	{2, 3, 5},
	{2, 4, 5},
}

// Trios of neighbouring legs, tried last.
var adjacentTrios = []Trio{
	{0, 1, 2},
	{1, 2, 3},
	{2, 3, 4},
	{3, 4, 5},
	{0, 4, 5},
	{0, 1, 5},
}

// Trios returns every three-leg subset, in the order the solvers try them.
func Trios() []Trio {
	ts := make([]Trio, 0, len(someTrios)+len(adjacentTrios))
	ts = append(ts, someTrios...)
	return append(ts, adjacentTrios...)
}

// Contains returns true if the trio includes the given leg index.
func (t Trio) Contains(i int) bool {
	return t[0] == i || t[1] == i || t[2] == i
}

// Others returns the three leg indices not in the trio, ascending.
func (t Trio) Others() [3]int {
	var o [3]int
	n := 0
	for i := 0; i < legs.NumLegs; i++ {
		if !t.Contains(i) {
			o[n] = i
			n++
		}
	}
	return o
}

// Properties describe the ground plane relative to the (flat) body: its unit
// normal, the distance from the center of gravity, and the legs on it.
type Properties struct {
	Normal     r3.Vector
	Height     float64
	GroundLegs []legs.Position
}

// IsLower returns true if p is below the plane with the given normal and
// height, by more than the tolerance.
func IsLower(p, normal r3.Vector, height float64) bool {
	return -normal.Dot(p) > height+lowerTolerance
}

// IsStable returns true if the center of gravity (the origin) projects inside
// the triangle p0, p1, p2.
func IsStable(p0, p1, p2 r3.Vector) bool {
	u := math3d.VectorFromTo(p0, p1)
	v := math3d.VectorFromTo(p0, p2)
	w := math3d.VectorFromTo(p0, math3d.ZeroVector3)
	n := u.Cross(v)
	n2 := n.Dot(n)
	if n2 == 0 {
		return false
	}

	beta := u.Cross(w).Dot(n) / n2
	gamma := w.Cross(v).Dot(n) / n2
	alpha := 1 - beta - gamma

	for _, c := range []float64{alpha, beta, gamma} {
		if c < -stabilityTolerance || c > 1+stabilityTolerance {
			return false
		}
	}

	return true
}

// FindLegsOnGround returns the legs which have any point (other than the body
// contact) on the plane, within tolerance.
func FindLegsOnGround(ls [legs.NumLegs]legs.Linkage, normal r3.Vector, height float64) []legs.Position {
	ground := []legs.Position{}
	for _, l := range ls {
		for _, p := range l.Points[legs.CoxiaPoint:] {
			if scalar.EqualWithinAbs(height, -normal.Dot(p.Vector), groundTolerance) {
				ground = append(ground, l.Position)
				break
			}
		}
	}
	return ground
}

// plane returns the normal and height of the plane through three points.
func plane(p0, p1, p2 r3.Vector) (r3.Vector, float64) {
	n := math3d.PlaneNormal(p0, p1, p2)
	return n, -n.Dot(p0)
}
