package ik

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/hexakin/hexapod/utils"
	"github.com/pkg/errors"
)

// LegResult is the outcome of solving the beta and gamma of a single leg.
type LegResult struct {
	Position legs.Position
	Beta     float64
	Gamma    float64

	// ObtainedSolution is false when the leg can't be posed at all; Err says
	// why. ReachedTarget is false when the leg was posed, but its foot tip is
	// short of the target.
	ObtainedSolution bool
	ReachedTarget    bool

	Message string
	Err     error
}

// SolveLeg finds the beta and gamma which put the foot tip at the target. The
// problem is solved in the plane of the leg, with the body contact point at
// the origin and the coxia along the X axis. The target is summa away from the
// body contact point, rho degrees below the coxia.
//
//	(body)--coxia--(c)
//	                | \
//	                |  femur
//	                |    \
//	              pars    (f)
//	                |    /
//	                |  tibia
//	                | /
//	             (target)
func SolveLeg(pos legs.Position, dims legs.Dimensions, summa, rho float64) LegResult {
	sin, cos := utils.SinCos(rho)
	coxia := r3.Vector{X: dims.Coxia}
	target := r3.Vector{X: summa * cos, Z: -summa * sin}

	parsVec := math3d.VectorFromTo(coxia, target)
	pars := parsVec.Norm()

	if isTriangle(pars, dims.Femur, dims.Tibia) {
		return solveTriangle(pos, dims, target, parsVec, pars)
	}

	if pars+dims.Tibia < dims.Femur {
		return legFailure(pos, ErrFemurTooLong, "Failure. Femur length too long.")
	}

	if pars+dims.Femur < dims.Tibia {
		return legFailure(pos, ErrTibiaTooLong, "Failure. Tibia length too long.")
	}

	// Too far away. Point the leg straight at the target.
	return LegResult{
		Position:         pos,
		Beta:             -math3d.AngleBetween(parsVec, math3d.XAxis),
		Gamma:            90,
		ObtainedSolution: true,
		ReachedTarget:    false,
		Message:          fmt.Sprintf("Success! But this leg won't reach the target ground point. (%s)", pos),
	}
}

func solveTriangle(pos legs.Position, dims legs.Dimensions, target, parsVec r3.Vector, pars float64) LegResult {
	theta := sss(dims.Tibia, dims.Femur, pars)
	phi := math3d.AngleBetween(parsVec, math3d.XAxis)

	var beta float64
	if target.Z < 0 {
		beta = theta - phi
	} else {
		beta = theta + phi
	}

	femurZ := dims.Femur * math.Sin(utils.Rad(beta))
	if target.Z > femurZ {
		r := legFailure(pos, ErrBlocked, "Failure. The ground is blocking the path. The target point can only be reached it by digging the ground.")
		r.Beta = beta
		r.ReachedTarget = true
		return r
	}

	epsi := sss(pars, dims.Femur, dims.Tibia)

	return LegResult{
		Position:         pos,
		Beta:             beta,
		Gamma:            epsi - 90,
		ObtainedSolution: true,
		ReachedTarget:    true,
		Message:          fmt.Sprintf("Success! (%s)", pos),
	}
}

func legFailure(pos legs.Position, err error, msg string) LegResult {
	return LegResult{
		Position: pos,
		Message:  fmt.Sprintf("%s (%s)", msg, pos),
		Err:      errors.Wrapf(err, "%s leg", pos),
	}
}

func isTriangle(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// sss returns the angle α, given the length of sides a, b, and c.
// See: http://en.wikipedia.org/wiki/Solution_of_triangles
func sss(a float64, b float64, c float64) float64 {
	return utils.Deg(math.Acos(((b * b) + (c * c) - (a * a)) / (2 * b * c)))
}
