package legs

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/math3d"
)

// Linkage is one leg: its four points (body contact, coxia, femur, foot tip),
// always in that order, plus the pose and position they were computed from.
//
//	p0 *----* p1        localZ
//	         \          |  localY
//	          * p2      | /
//	          |         |/
//	          * p3      *---- localX
type Linkage struct {
	Dimensions Dimensions
	Position   Position
	Pose       Pose
	Points     [numPoints]math3d.Point3D
}

// NewLinkage computes the points of a leg attached to the body at origin, in
// the hexapod's coordinate frame.
func NewLinkage(dims Dimensions, pos Position, origin r3.Vector, pose Pose) Linkage {
	l := Linkage{
		Dimensions: dims,
		Position:   pos,
		Pose:       pose,
	}

	// Chain of transforms relative to the body contact point. Beta is measured
	// from the coxia axis, gamma from the perpendicular to it.
	root := MakeRootSegment()
	coxia := MakeSegment("coxia", root, math3d.RotY(-pose.Beta, r3.Vector{X: dims.Coxia}))
	femur := MakeSegment("femur", coxia, math3d.RotY(90-pose.Gamma, r3.Vector{X: dims.Femur}))
	tibia := MakeSegment("tibia", femur, math3d.RotY(0, r3.Vector{X: dims.Tibia}))

	local := [numPoints]r3.Vector{
		root.End(),
		coxia.End(),
		femur.End(),
		tibia.End(),
	}

	twist := math3d.RotZ(pos.AxisAngle()+pose.Alpha, origin)
	for i, v := range local {
		l.Points[i] = math3d.Point3D{
			Vector: twist.Apply(v),
			Name:   fmt.Sprintf("%s-%s", pos, PointType(i)),
			ID:     fmt.Sprintf("%d-%d", pos.Index(), i),
		}
	}

	return l
}

// Name returns e.g. "rightMiddleLeg".
func (l Linkage) Name() string {
	return fmt.Sprintf("%sLeg", l.Position)
}

func (l Linkage) ID() int {
	return l.Position.Index()
}

func (l Linkage) String() string {
	return fmt.Sprintf("&Linkage{%s %s}", l.Name(), l.Pose)
}

func (l Linkage) Point(t PointType) math3d.Point3D {
	return l.Points[t]
}

func (l Linkage) BodyContact() math3d.Point3D {
	return l.Points[BodyContactPoint]
}

func (l Linkage) Coxia() math3d.Point3D {
	return l.Points[CoxiaPoint]
}

func (l Linkage) Femur() math3d.Point3D {
	return l.Points[FemurPoint]
}

func (l Linkage) FootTip() math3d.Point3D {
	return l.Points[FootTipPoint]
}

// MaybeGroundContact returns the lowest point of the leg, ignoring the body
// contact point. When points are equally low, the one furthest from the body
// wins. This is a guess: nothing says that the point is actually touching the
// ground.
func (l Linkage) MaybeGroundContact() (PointType, math3d.Point3D) {
	best := FootTipPoint
	for t := FemurPoint; t > BodyContactPoint; t-- {
		if l.Points[t].Z < l.Points[best].Z {
			best = t
		}
	}
	return best, l.Points[best]
}

// MaybeGroundContactPoint is MaybeGroundContact without the type.
func (l Linkage) MaybeGroundContactPoint() math3d.Point3D {
	_, p := l.MaybeGroundContact()
	return p
}

// Trot returns a copy of the leg with every point transformed by m. The pose
// is not recomputed.
func (l Linkage) Trot(m math3d.Matrix44) Linkage {
	return l.transform(func(p math3d.Point3D) math3d.Point3D { return p.Trot(m) })
}

// Shift returns a copy of the leg with every point translated by t.
func (l Linkage) Shift(t r3.Vector) Linkage {
	return l.transform(func(p math3d.Point3D) math3d.Point3D { return p.Shift(t) })
}

// TrotShift transforms, then translates.
func (l Linkage) TrotShift(m math3d.Matrix44, t r3.Vector) Linkage {
	return l.transform(func(p math3d.Point3D) math3d.Point3D { return p.TrotShift(m, t) })
}

func (l Linkage) transform(f func(math3d.Point3D) math3d.Point3D) Linkage {
	c := l
	for i, p := range l.Points {
		c.Points[i] = f(p)
	}
	return c
}
