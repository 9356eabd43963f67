package hexapod

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/body"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/hexakin/hexapod/solvers/orientation"
	"github.com/hexakin/hexapod/solvers/twist"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "hexapod"})

// Axes are the local coordinate axes of the hexapod, in the world space.
type Axes struct {
	X math3d.Point3D
	Y math3d.Point3D
	Z math3d.Point3D
}

// DefaultAxes returns the world axes, which are the local axes of a hexapod
// standing level.
func DefaultAxes() Axes {
	return Axes{
		X: math3d.MakePoint(1, 0, 0, "hexapodXaxis", "no-id"),
		Y: math3d.MakePoint(0, 1, 0, "hexapodYaxis", "no-id"),
		Z: math3d.MakePoint(0, 0, 1, "hexapodZaxis", "no-id"),
	}
}

// Trot rotates the axes. Translation doesn't apply to directions, so only the
// rotation part of m is used.
func (a Axes) Trot(m math3d.Matrix44) Axes {
	o := m.Apply(math3d.ZeroVector3)
	f := func(p math3d.Point3D) math3d.Point3D {
		q := p.Trot(m)
		q.Vector = q.Sub(o)
		return q
	}
	return Axes{f(a.X), f(a.Y), f(a.Z)}
}

// Options control how a hexapod is assembled from a pose.
type Options struct {
	// Use the fast orientation solver, which trusts that the lowest point of
	// each leg is the one on the ground.
	AssumeKnownGroundPoints bool

	// Correct the yaw when every grounded leg is turned the same way.
	ResolveTwist bool

	// Passed to the general orientation solver.
	Orientation orientation.Options
}

// Hexapod is a hexapod in a given pose, standing on the ground: the ground is
// the plane z=0, and the body is above it.
//
// When FoundSolution is false, no stable stance exists for the pose, and the
// body, legs, axes and ground legs are all unset.
type Hexapod struct {
	Dimensions Dimensions
	Pose       legs.Poses

	Body       body.Hexagon
	Legs       [legs.NumLegs]legs.Linkage
	LocalAxes  Axes
	GroundLegs []legs.Position

	FoundSolution bool
}

// New assembles a hexapod: poses every leg relative to a flat body, finds the
// plane it would stand on, and rotates everything so that plane is the
// ground. Legs missing from the pose are at zero.
func New(dims Dimensions, pose legs.Poses, opts Options) *Hexapod {
	h := &Hexapod{
		Dimensions: dims,
		Pose:       pose.Clone(),
	}

	flat := body.NewHexagon(dims.Body())
	ls := buildLegs(flat, pose, dims.Legs())

	var solved *orientation.Properties
	var ok bool
	if opts.AssumeKnownGroundPoints {
		solved, ok = orientation.Specific(ls)
	} else {
		solved, ok = orientation.General(ls, opts.Orientation)
	}

	if !ok {
		log.Debug("no stable orientation")
		return h
	}

	h.FoundSolution = true
	h.GroundLegs = solved.GroundLegs

	m := math3d.AlignVectors(solved.Normal, math3d.ZAxis)
	up := r3.Vector{Z: solved.Height}

	for i, l := range ls {
		h.Legs[i] = l.TrotShift(m, up)
	}
	h.Body = flat.TrotShift(m, up)
	h.LocalAxes = DefaultAxes().Trot(m)

	if opts.ResolveTwist {
		h.resolveTwist(ls, flat)
	}

	return h
}

func buildLegs(hex body.Hexagon, pose legs.Poses, dims legs.Dimensions) [legs.NumLegs]legs.Linkage {
	var ls [legs.NumLegs]legs.Linkage
	for _, pos := range legs.Positions() {
		ls[pos] = legs.NewLinkage(dims, pos, hex.Vertex(pos).Vector, pose[pos])
	}
	return ls
}

// resolveTwist turns the hexapod about Z when the legs on the ground are all
// swung the same way. flatLegs are the legs before orientation.
func (h *Hexapod) resolveTwist(flatLegs [legs.NumLegs]legs.Linkage, flat body.Hexagon) {
	allZero := true
	for _, l := range h.Legs {
		if l.Pose.Alpha != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return
	}

	ground := make([]legs.Linkage, 0, len(h.GroundLegs))
	for _, pos := range h.GroundLegs {
		ground = append(ground, flatLegs[pos])
	}

	if !twist.SimpleTwist(ground) && !twist.MightTwist(ground) {
		return
	}

	var defaults [legs.NumLegs]math3d.Point3D
	up := r3.Vector{Z: h.Dimensions.Tibia}
	for i, l := range buildLegs(flat, legs.UniformPoses(legs.Pose{}), h.Dimensions.Legs()) {
		defaults[i] = l.Shift(up).MaybeGroundContactPoint()
	}

	angle := twist.ComplexTwist(h.GroundContactPoints(), defaults)
	if angle != 0 {
		log.WithField("angle", angle).Debug("resolving twist")
		h.twist(angle)
	}
}

func (h *Hexapod) twist(angle float64) {
	m := math3d.RotZ(angle, math3d.ZeroVector3)
	h.Body = h.Body.Trot(m)
	for i, l := range h.Legs {
		h.Legs[i] = l.Trot(m)
	}
	h.LocalAxes = h.LocalAxes.Trot(m)
}

// DistanceFromGround returns the height of the center of gravity.
func (h *Hexapod) DistanceFromGround() float64 {
	return h.Body.COG.Z
}

// CogProjection returns the center of gravity, projected onto the ground.
func (h *Hexapod) CogProjection() math3d.Point3D {
	return math3d.MakePoint(h.Body.COG.X, h.Body.COG.Y, 0, "centerOfGravityProjectionPoint", "no-id")
}

// GroundContactPoints returns the lowest point of each leg on the ground.
func (h *Hexapod) GroundContactPoints() []math3d.Point3D {
	ps := make([]math3d.Point3D, 0, len(h.GroundLegs))
	for _, pos := range h.GroundLegs {
		ps = append(ps, h.Legs[pos].MaybeGroundContactPoint())
	}
	return ps
}

// Info summarizes whether the hexapod could be stood up.
type Info struct {
	IsAlert bool   `json:"isAlert"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *Hexapod) Info() Info {
	if h.FoundSolution {
		return Info{false, "Success!", "Stable orientation found."}
	}
	return Info{true, "Unstable position.", "error in solving for orientation "}
}

// Trot returns a copy of the hexapod transformed by m.
func (h *Hexapod) Trot(m math3d.Matrix44) *Hexapod {
	c := h.clone()
	c.Body = h.Body.Trot(m)
	for i, l := range h.Legs {
		c.Legs[i] = l.Trot(m)
	}
	c.LocalAxes = h.LocalAxes.Trot(m)
	return c
}

// Shift returns a copy of the hexapod translated by t.
func (h *Hexapod) Shift(t r3.Vector) *Hexapod {
	c := h.clone()
	c.Body = h.Body.Shift(t)
	for i, l := range h.Legs {
		c.Legs[i] = l.Shift(t)
	}
	return c
}

func (h *Hexapod) clone() *Hexapod {
	c := *h
	c.Pose = h.Pose.Clone()
	c.GroundLegs = append([]legs.Position(nil), h.GroundLegs...)
	return &c
}

func (h *Hexapod) String() string {
	if !h.FoundSolution {
		return "&Hexapod{no solution}"
	}
	return fmt.Sprintf("&Hexapod{height=%.2f ground=%v}", h.DistanceFromGround(), h.GroundLegs)
}
