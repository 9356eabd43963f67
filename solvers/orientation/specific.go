package orientation

import (
	"github.com/hexakin/hexapod/legs"
)

// Specific finds the ground plane assuming that the lowest point of each leg
// (its MaybeGroundContact) is the one touching the ground, if any is. This is
// cheap, but wrong whenever that guess is.
//
// Trios of legs are tried in priority order, and the first whose plane keeps
// the center of gravity inside the triangle and has no other leg below it
// wins.
func Specific(ls [legs.NumLegs]legs.Linkage) (*Properties, bool) {
	for _, t := range Trios() {
		p0 := ls[t[0]].MaybeGroundContactPoint().Vector
		p1 := ls[t[1]].MaybeGroundContactPoint().Vector
		p2 := ls[t[2]].MaybeGroundContactPoint().Vector

		if !IsStable(p0, p1, p2) {
			continue
		}

		normal, height := plane(p0, p1, p2)

		lower := false
		for _, o := range t.Others() {
			if IsLower(ls[o].MaybeGroundContactPoint().Vector, normal, height) {
				lower = true
				break
			}
		}

		if lower {
			continue
		}

		return &Properties{
			Normal:     normal,
			Height:     height,
			GroundLegs: FindLegsOnGround(ls, normal, height),
		}, true
	}

	log.Debug("no stable plane through ground contact points")
	return nil, false
}
