package twist

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"github.com/stretchr/testify/assert"
)

var legDims = legs.Dimensions{Coxia: 45, Femur: 75, Tibia: 135}

func groundLegs(alphas [legs.NumLegs]float64, beta, gamma float64) []legs.Linkage {
	ls := make([]legs.Linkage, 0, legs.NumLegs)
	for _, pos := range legs.Positions() {
		ls = append(ls, legs.NewLinkage(legDims, pos, r3.Vector{}, legs.Pose{Alpha: alphas[pos], Beta: beta, Gamma: gamma}))
	}
	return ls
}

func TestMightTwist(t *testing.T) {
	type eg struct {
		alphas [legs.NumLegs]float64
		exp    bool
	}

	examples := []eg{
		{[legs.NumLegs]float64{45, 45, -45, -45, 0, 0}, false},
		{[legs.NumLegs]float64{30, 30, 30, 30, 30, 30}, true},
		{[legs.NumLegs]float64{-10, -10, -10, 0, 0, 0}, true},
		{[legs.NumLegs]float64{10, 10, -10, -10, 0, 0}, false},
		{[legs.NumLegs]float64{}, false},
	}

	for i, x := range examples {
		assert.Equal(t, x.exp, MightTwist(groundLegs(x.alphas, -20, 20)), "example %d", i+1)
	}
}

func TestMightTwistIgnoresNonFootTips(t *testing.T) {
	// Legs straight up, so the coxia points are lowest.
	ls := groundLegs([legs.NumLegs]float64{30, 30, 30, 30, 30, 30}, 90, 90)
	assert.False(t, MightTwist(ls))
}

func TestSimpleTwist(t *testing.T) {
	same := [legs.NumLegs]float64{30, 30, 30, 30, 30, 30}

	assert.True(t, SimpleTwist(groundLegs(same, -20, 20)))
	assert.False(t, SimpleTwist(groundLegs([legs.NumLegs]float64{30, 30, 30, 30, 30, 31}, -20, 20)))
	assert.False(t, SimpleTwist(groundLegs([legs.NumLegs]float64{}, -20, 20)))

	// Standing on coxias.
	assert.False(t, SimpleTwist(groundLegs(same, 90, 90)))

	// Standing on femurs, with no body contact point down.
	assert.False(t, SimpleTwist(groundLegs(same, -90, -90)))

	assert.False(t, SimpleTwist(nil))
}

func TestComplexTwist(t *testing.T) {
	var defaults [legs.NumLegs]math3d.Point3D
	defaults[legs.RightFront] = math3d.MakePoint(100, 0, 0, "rightFront-footTipPoint", "1-3")

	current := []math3d.Point3D{
		math3d.MakePoint(0, 100, 0, "leftBack-coxiaPoint", "4-1"),
		math3d.MakePoint(0, 100, 0, "rightFront-footTipPoint", "1-3"),
	}
	assert.InDelta(t, -90, ComplexTwist(current, defaults), 1e-9)

	assert.Equal(t, 0.0, ComplexTwist(current[:1], defaults))
	assert.Equal(t, 0.0, ComplexTwist(nil, defaults))
}
