package support

import (
	"slices"
	"testing"

	"github.com/hexakin/hexapod/legs"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/combin"
)

func TestCheck(t *testing.T) {
	type eg struct {
		off      []legs.Position
		unstable bool
		reason   string
	}

	examples := []eg{
		{nil, false, MightBeStableLess},
		{[]legs.Position{legs.LeftBack}, false, MightBeStableLess},
		{[]legs.Position{legs.LeftBack, legs.LeftFront}, false, MightBeStableLess},
		{[]legs.Position{legs.LeftBack, legs.LeftFront, legs.LeftMiddle}, true, LeftLegsOff},
		{[]legs.Position{legs.RightBack, legs.RightFront, legs.RightMiddle}, true, RightLegsOff},
		{[]legs.Position{legs.RightBack, legs.LeftFront, legs.RightMiddle}, false, MightBeStableMore},
		{[]legs.Position{legs.RightBack, legs.LeftFront, legs.RightMiddle, legs.LeftBack}, true, TooManyLegsOff},
	}

	for i, x := range examples {
		unstable, reason := Check(x.off)
		assert.Equal(t, x.unstable, unstable, "example %d", i+1)
		assert.Equal(t, x.reason, reason, "example %d", i+1)
	}
}

func subsets(k int) [][]legs.Position {
	var out [][]legs.Position
	for _, c := range combin.Combinations(legs.NumLegs, k) {
		ps := make([]legs.Position, k)
		for i, idx := range c {
			ps[i] = legs.Position(idx)
		}
		out = append(out, ps)
	}
	return out
}

func TestAnyFourLegsOffIsUnstable(t *testing.T) {
	for _, off := range subsets(4) {
		unstable, reason := Check(off)
		assert.True(t, unstable, "%v", off)
		assert.Equal(t, TooManyLegsOff, reason)
	}
}

func TestMonotonic(t *testing.T) {
	for _, off := range subsets(3) {
		unstable, _ := Check(off)

		// Lifting another leg never makes things better.
		if unstable {
			for _, p := range legs.Positions() {
				if !slices.Contains(off, p) {
					more, _ := Check(append(append([]legs.Position{}, off...), p))
					assert.True(t, more, "%v + %s", off, p)
				}
			}
		}

		// Putting a leg back down from three always might be stable.
		for i := range off {
			fewer := append(append([]legs.Position{}, off[:i]...), off[i+1:]...)
			u, _ := Check(fewer)
			assert.False(t, u, "%v", fewer)
		}
	}
}
