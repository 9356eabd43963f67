package orientation

import (
	"math/rand/v2"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"gonum.org/v1/gonum/stat/combin"
	"golang.org/x/sync/errgroup"
)

// Options tweak the general solver. The zero value searches sequentially in
// the fixed priority order.
type Options struct {
	// Shuffle the well separated trios before searching. Any valid plane is
	// still a valid answer, but which one is found first may change.
	Shuffle bool

	// Rand is used to shuffle. Defaults to the global source.
	Rand *rand.Rand

	// Parallel evaluates each trio in its own goroutine. The result is the
	// same as the sequential search.
	Parallel bool
}

// jointTrios are the 27 ways of picking one of coxia, femur, foot tip from
// each of three legs, foot tips first.
var jointTrios = func() [][3]legs.PointType {
	cs := combin.Cartesian([]int{3, 3, 3})
	ts := make([][3]legs.PointType, len(cs))
	for i, c := range cs {
		for j := range c {
			ts[i][j] = legs.FootTipPoint - legs.PointType(c[j])
		}
	}
	return ts
}()

// General finds the ground plane without assuming which point of each leg is
// touching the ground. Every trio of legs, and every choice of coxia, femur
// or foot tip for each leg in the trio, is tried; a candidate plane is valid
// if it keeps the center of gravity inside its triangle and no other point of
// any leg is below it.
//
// The first valid plane with a nonzero height wins. A plane through the body
// (height zero) is only returned if nothing else is valid.
func General(ls [legs.NumLegs]legs.Linkage, opts Options) (*Properties, bool) {
	trios := orderedTrios(opts)

	var found []*searchResult
	if opts.Parallel {
		found = searchParallel(ls, trios)
	} else {
		found = make([]*searchResult, 0, len(trios))
		for _, t := range trios {
			r := searchTrio(ls, t)
			found = append(found, r)
			if r.best != nil {
				break
			}
		}
	}

	var fallback *Properties
	for _, r := range found {
		if r.best != nil {
			return r.best, true
		}
		if fallback == nil {
			fallback = r.fallback
		}
	}

	if fallback != nil {
		fallback.GroundLegs = FindLegsOnGround(ls, fallback.Normal, fallback.Height)
		return fallback, true
	}

	log.Debug("no stable plane through any leg points")
	return nil, false
}

func orderedTrios(opts Options) []Trio {
	some := make([]Trio, len(someTrios))
	copy(some, someTrios)

	if opts.Shuffle {
		shuffle := rand.Shuffle
		if opts.Rand != nil {
			shuffle = opts.Rand.Shuffle
		}
		shuffle(len(some), func(i, j int) {
			some[i], some[j] = some[j], some[i]
		})
	}

	return append(some, adjacentTrios...)
}

// searchResult is the outcome of searching a single trio: the first valid
// plane with a nonzero height, and the first with a zero height.
type searchResult struct {
	best     *Properties
	fallback *Properties
}

func searchParallel(ls [legs.NumLegs]legs.Linkage, trios []Trio) []*searchResult {
	results := make([]*searchResult, len(trios))

	var g errgroup.Group
	for i, t := range trios {
		g.Go(func() error {
			results[i] = searchTrio(ls, t)
			return nil
		})
	}

	// Nothing returns an error.
	_ = g.Wait()

	return results
}

func searchTrio(ls [legs.NumLegs]legs.Linkage, t Trio) *searchResult {
	r := &searchResult{}
	others := t.Others()

	for _, joints := range jointTrios {
		p0 := ls[t[0]].Point(joints[0]).Vector
		p1 := ls[t[1]].Point(joints[1]).Vector
		p2 := ls[t[2]].Point(joints[2]).Vector

		if !IsStable(p0, p1, p2) {
			continue
		}

		normal, height := plane(p0, p1, p2)

		if sameLegPointIsLower(ls, t, joints, normal, height) {
			continue
		}

		if otherLegPointIsLower(ls, others, normal, height) {
			continue
		}

		if height == 0 {
			if r.fallback == nil {
				r.fallback = &Properties{Normal: normal, Height: height}
			}
			continue
		}

		r.best = &Properties{
			Normal:     normal,
			Height:     height,
			GroundLegs: FindLegsOnGround(ls, normal, height),
		}
		return r
	}

	return r
}

func sameLegPointIsLower(ls [legs.NumLegs]legs.Linkage, t Trio, joints [3]legs.PointType, normal r3.Vector, height float64) bool {
	for i, li := range t {
		for j, p := range ls[li].Points {
			pt := legs.PointType(j)
			if pt == legs.BodyContactPoint || pt == joints[i] {
				continue
			}
			if IsLower(p.Vector, normal, height) {
				return true
			}
		}
	}
	return false
}

func otherLegPointIsLower(ls [legs.NumLegs]legs.Linkage, others [3]int, normal r3.Vector, height float64) bool {
	for _, li := range others {
		for _, p := range ls[li].Points[legs.CoxiaPoint:] {
			if IsLower(p.Vector, normal, height) {
				return true
			}
		}
	}
	return false
}
