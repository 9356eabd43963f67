package hexapod

import (
	"slices"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/hexakin/hexapod/solvers/ik"
	"github.com/pkg/errors"
)

// ErrNoStartStance is returned when the start pose of some IK params can't
// stand, so there is nothing to take targets from.
var ErrNoStartStance = errors.New("start pose has no stable orientation")

// SolveOptions control SolveInverseKinematics.
type SolveOptions struct {
	// Shift the rotated body, rather than rotating the shifted one.
	RotateThenShift bool

	// Used to assemble both the start and solved hexapods.
	Hexapod Options
}

// DefaultSolveOptions rotates then shifts.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{RotateThenShift: true}
}

// Solution is the outcome of SolveInverseKinematics. When the solve fails,
// Hexapod is nil, Pose may be partial, and Result says why.
type Solution struct {
	Pose    legs.Poses
	Hexapod *Hexapod
	Result  ik.Result

	// How the freshly assembled hexapod was moved over the ground to put its
	// feet back on the targets.
	Placement math3d.Placement
}

// BuildTargets returns the IK targets for moving h: its body vertices moved by
// rot and t, with the feet staying where they are.
func BuildTargets(h *Hexapod, rot math3d.Matrix44, t r3.Vector, rotateThenShift bool) ik.Targets {
	var out ik.Targets

	for i, l := range h.Legs {
		out.GroundContacts[i] = l.MaybeGroundContactPoint()
	}

	var moved = h.Body
	if rotateThenShift {
		moved = moved.Trot(rot).Shift(t)
	} else {
		moved = moved.Shift(t).Trot(rot)
	}
	out.BodyContacts = moved.Vertices

	out.XAxis = rot.Apply(math3d.XAxis).Sub(rot.Apply(math3d.ZeroVector3))
	out.ZAxis = rot.Apply(math3d.ZAxis).Sub(rot.Apply(math3d.ZeroVector3))

	return out
}

// SolveParams stands the hexapod up in the start pose of the params, moves
// its body by them, and solves for the pose which keeps its feet in place.
func SolveParams(dims Dimensions, p IKParams, rotateThenShift bool, opts Options) (ik.Result, *Hexapod, ik.Targets, error) {
	start := New(dims, p.StartPose(), opts)
	if !start.FoundSolution {
		return ik.Result{}, start, ik.Targets{}, ErrNoStartStance
	}

	targets := BuildTargets(start, p.Rotation(), p.Translation(dims), rotateThenShift)
	return ik.Solve(dims.Legs(), targets), start, targets, nil
}

// SolveInverseKinematics finds the pose which moves the body of a hexapod
// standing in the start pose of p, without moving its feet. The returned
// hexapod is in that pose, turned and shifted so that its feet are on the
// targets.
func SolveInverseKinematics(dims Dimensions, p IKParams, opts SolveOptions) (*Solution, error) {
	res, _, targets, err := SolveParams(dims, p, opts.RotateThenShift, opts.Hexapod)
	if err != nil {
		return nil, err
	}

	s := &Solution{
		Pose:   res.Pose,
		Result: res,
	}

	if !res.FoundSolution {
		return s, res.Err
	}

	current := New(dims, res.Pose, opts.Hexapod)
	if !current.FoundSolution {
		// The solver thinks the pose stands, but the orientation solver
		// disagrees. Trust the pose, without pivoting.
		log.WithField("pose", res.Pose).Warn("solved pose has no stable orientation")
		s.Hexapod = current
		return s, nil
	}

	p1, p2, ok := findTwoPivots(current.GroundContactPoints(), targets.GroundContacts[:], res.LegsOffGround)
	if !ok {
		log.WithField("pose", res.Pose).Debug("fewer than two pivots")
		s.Hexapod = current
		return s, nil
	}

	s.Placement = math3d.PlacementBetween(p1.current.Vector, p2.current.Vector, p1.target.Vector, p2.target.Vector)
	s.Hexapod = current.Trot(s.Placement.Matrix())

	return s, nil
}

type pivotPair struct {
	current math3d.Point3D
	target  math3d.Point3D
}

// findTwoPivots returns the first two current ground points which have a
// target with the same name, ignoring legs which are off the ground.
func findTwoPivots(current, targets []math3d.Point3D, excluded []legs.Position) (pivotPair, pivotPair, bool) {
	byName := make(map[string]math3d.Point3D, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}

	var found []pivotPair
	for _, c := range current {
		pos, _, err := legs.ParsePointName(c.Name)
		if err != nil || slices.Contains(excluded, pos) {
			continue
		}

		t, ok := byName[c.Name]
		if !ok {
			continue
		}

		found = append(found, pivotPair{c, t})
		if len(found) == 2 {
			return found[0], found[1], true
		}
	}

	return pivotPair{}, pivotPair{}, false
}
