// Package twist detects and corrects yaw which the ground contact points leave
// unconstrained. When every foot on the ground has swung around its hip the
// same way, the orientation solvers can't tell that apart from the whole body
// being turned.
package twist

import (
	"math"

	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/hexakin/hexapod/utils"
)

// MightTwist returns true if three or more legs on the ground are standing on
// their foot tips with the hip turned the same way.
func MightTwist(ground []legs.Linkage) bool {
	pos, neg := 0, 0

	for _, l := range ground {
		typ, _ := l.MaybeGroundContact()
		if typ != legs.FootTipPoint || l.Pose.Alpha == 0 {
			continue
		}

		if l.Pose.Alpha > 0 {
			pos++
		} else {
			neg++
		}
	}

	return pos >= 3 || neg >= 3
}

// SimpleTwist returns true if every leg on the ground has the same alpha and
// touches the ground with the same kind of point, and that is enough to cause
// a twist.
func SimpleTwist(ground []legs.Linkage) bool {
	if len(ground) == 0 {
		return false
	}

	first := ground[0]
	firstType, firstPoint := first.MaybeGroundContact()

	for _, l := range ground[1:] {
		if l.Pose.Alpha != first.Pose.Alpha {
			return false
		}
		if typ, _ := l.MaybeGroundContact(); typ != firstType {
			return false
		}
	}

	switch firstType {
	case legs.BodyContactPoint, legs.CoxiaPoint:
		return false

	case legs.FemurPoint:
		// Only a twist if some body contact point is on the ground too, at a
		// different height.
		found := false
		for _, l := range ground {
			if typ, p := l.MaybeGroundContact(); typ == legs.BodyContactPoint {
				found = p.Z != firstPoint.Z
				break
			}
		}
		if !found {
			return false
		}
	}

	return MightTwist(ground)
}

// ComplexTwist returns the angle (in degrees, about the Z axis) between the
// first foot tip in current and the same leg's point in defaults, which is
// indexed by leg. Zero if no current point is a foot tip.
func ComplexTwist(current []math3d.Point3D, defaults [legs.NumLegs]math3d.Point3D) float64 {
	for _, p := range current {
		pos, typ, err := legs.ParsePointName(p.Name)
		if err != nil || typ != legs.FootTipPoint {
			continue
		}

		d := defaults[pos.Index()]
		return utils.Deg(math.Atan2(d.Y, d.X) - math.Atan2(p.Y, p.X))
	}

	return 0
}
