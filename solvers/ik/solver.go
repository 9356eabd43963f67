package ik

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/hexakin/hexapod/solvers/support"
	"github.com/hexakin/hexapod/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "ik"})

// MaxAlpha is the furthest (in degrees, either way) that a hip can turn.
const MaxAlpha = 90.0

// Targets are where the body and feet should end up. Body contact points are
// the vertices of the body after it has been moved; ground contact points are
// where each foot should touch the ground. XAxis and ZAxis are the local axes
// of the moved body.
type Targets struct {
	BodyContacts   [legs.NumLegs]math3d.Point3D
	GroundContacts [legs.NumLegs]math3d.Point3D
	XAxis          r3.Vector
	ZAxis          r3.Vector
}

// Result is the outcome of a whole body solve. When FoundSolution is false,
// Err holds the reason and Pose may be partial.
type Result struct {
	Pose          legs.Poses
	FoundSolution bool
	LegsOffGround []legs.Position
	Message       Message
	Err           error
}

// HasLegsOffGround returns true if any leg can't reach its target.
func (r Result) HasLegsOffGround() bool {
	return len(r.LegsOffGround) > 0
}

// Solve finds the pose of every leg which puts the body contact points and
// foot tips at their targets. Legs which can't reach their target are left
// dangling, as long as enough remain on the ground to support the body.
func Solve(dims legs.Dimensions, t Targets) Result {
	r := Result{
		Pose:          legs.Poses{},
		LegsOffGround: []legs.Position{},
		Message:       msgInitialized,
	}

	for _, v := range t.BodyContacts {
		if v.Z < 0 {
			return r.fail(msgBadPoint(v), errors.Wrapf(ErrBadVertex, "%s", v))
		}
	}

	for _, pos := range legs.Positions() {
		body := t.BodyContacts[pos]
		ground := t.GroundContacts[pos]

		bodyToFoot := math3d.VectorFromTo(body.Vector, ground.Vector)
		coxiaDir := math3d.Unit(math3d.ProjectOntoPlane(bodyToFoot, t.ZAxis))
		coxiaPoint := math3d.Point3D{
			Vector: body.Add(coxiaDir.Mul(dims.Coxia)),
			Name:   pos.String() + "-" + legs.CoxiaPoint.String(),
			ID:     body.ID,
		}

		if coxiaPoint.Z < 0 {
			return r.fail(msgBadPoint(coxiaPoint), errors.Wrapf(ErrBadPoint, "%s", coxiaPoint))
		}

		rho := math3d.AngleBetween(coxiaDir, bodyToFoot)
		summa := bodyToFoot.Norm()
		alpha := computeAlpha(coxiaDir, pos.AxisAngle(), t.XAxis, t.ZAxis)

		if math.Abs(alpha) > MaxAlpha {
			return r.fail(msgAlphaNotInRange(pos, alpha, MaxAlpha), errors.Wrapf(ErrAlphaNotInRange, "%s leg: %.2f", pos, alpha))
		}

		leg := SolveLeg(pos, dims, summa, rho)
		if !leg.ObtainedSolution {
			log.WithField("leg", pos).Debug(leg.Message)
			return r.fail(msgBadLeg(leg.Message), leg.Err)
		}

		if !leg.ReachedTarget {
			r.LegsOffGround = append(r.LegsOffGround, pos)
			if unstable, reason := support.Check(r.LegsOffGround); unstable {
				return r.fail(msgNoSupport(reason), errors.Wrapf(ErrNoSupport, "%v off the ground", r.LegsOffGround))
			}
		}

		r.Pose[pos] = legs.Pose{Alpha: alpha, Beta: leg.Beta, Gamma: leg.Gamma}
	}

	r.FoundSolution = true
	if r.HasLegsOffGround() {
		r.Message = msgSuccessLegsOnAir(r.LegsOffGround)
	} else {
		r.Message = msgSuccess
	}

	return r
}

func (r Result) fail(m Message, err error) Result {
	r.FoundSolution = false
	r.Message = m
	r.Err = err
	return r
}

// computeAlpha returns the angle between the leg's X axis and the coxia, in
// (-180, 180]. Exactly 180 is reported as zero.
func computeAlpha(coxiaDir r3.Vector, axisAngle float64, xAxis, zAxis r3.Vector) float64 {
	sign := 1.0
	if math3d.IsCounterClockwise(coxiaDir, xAxis, zAxis) {
		sign = -1
	}

	alpha := utils.Mod(sign*math3d.AngleBetween(coxiaDir, xAxis)-axisAngle, 360)

	if alpha > 180 {
		return alpha - 360
	}

	// A leg pointing straight back along its own axis counts as zero.
	if alpha == 180 || alpha == -180 {
		return 0
	}

	return alpha
}
