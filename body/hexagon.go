package body

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
)

// Dimensions describe the body hexagon. Front is the X offset of the four
// corner vertices, Side is their Y offset, and Middle is the X offset of the
// two middle vertices.
type Dimensions struct {
	Front  float64 `json:"front"`
	Side   float64 `json:"side"`
	Middle float64 `json:"middle"`
}

const (
	cogID  = "6"
	headID = "7"
)

// Hexagon is the body of the hexapod: six vertices (one per leg, indexed by
// leg position) plus the head and the center of gravity.
//
//	     x2          x1
//	      \   head  /
//	       *---*---*
//	      /    |    \
//	x3 --*----cog----*-- x0
//	      \    |    /
//	       *---*---*
//	      /         \
//	     x4          x5
type Hexagon struct {
	Dimensions Dimensions
	Vertices   [legs.NumLegs]math3d.Point3D
	Head       math3d.Point3D
	COG        math3d.Point3D
}

// NewHexagon returns a flat hexagon centered at the origin.
func NewHexagon(d Dimensions) Hexagon {
	h := Hexagon{Dimensions: d}

	xs := [legs.NumLegs]float64{d.Middle, d.Front, -d.Front, -d.Middle, -d.Front, d.Front}
	ys := [legs.NumLegs]float64{0, d.Side, d.Side, 0, -d.Side, -d.Side}

	for _, pos := range legs.Positions() {
		i := pos.Index()
		h.Vertices[i] = math3d.MakePoint(xs[i], ys[i], 0, fmt.Sprintf("%sVertex", pos), fmt.Sprint(i))
	}

	h.Head = math3d.MakePoint(0, d.Side, 0, "headPoint", headID)
	h.COG = math3d.MakePoint(0, 0, 0, "centerOfGravityPoint", cogID)

	return h
}

// Vertex returns the vertex which the given leg is attached to.
func (h Hexagon) Vertex(pos legs.Position) math3d.Point3D {
	return h.Vertices[pos.Index()]
}

// ClosedPoints returns the vertices with the first repeated at the end, which
// is handy for drawing the outline.
func (h Hexagon) ClosedPoints() []math3d.Point3D {
	ps := make([]math3d.Point3D, 0, legs.NumLegs+1)
	ps = append(ps, h.Vertices[:]...)
	return append(ps, h.Vertices[0])
}

// AllPoints returns the vertices, then the center of gravity, then the head.
func (h Hexagon) AllPoints() []math3d.Point3D {
	ps := make([]math3d.Point3D, 0, legs.NumLegs+2)
	ps = append(ps, h.Vertices[:]...)
	return append(ps, h.COG, h.Head)
}

func (h Hexagon) Trot(m math3d.Matrix44) Hexagon {
	return h.transform(func(p math3d.Point3D) math3d.Point3D { return p.Trot(m) })
}

func (h Hexagon) Shift(t r3.Vector) Hexagon {
	return h.transform(func(p math3d.Point3D) math3d.Point3D { return p.Shift(t) })
}

func (h Hexagon) TrotShift(m math3d.Matrix44, t r3.Vector) Hexagon {
	return h.transform(func(p math3d.Point3D) math3d.Point3D { return p.TrotShift(m, t) })
}

func (h Hexagon) transform(f func(math3d.Point3D) math3d.Point3D) Hexagon {
	c := h
	for i, p := range h.Vertices {
		c.Vertices[i] = f(p)
	}
	c.Head = f(h.Head)
	c.COG = f(h.COG)
	return c
}
