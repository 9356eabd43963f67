package math3d

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestPlacementMatrix(t *testing.T) {
	type eg struct {
		p   Placement
		in  r3.Vector
		exp r3.Vector
	}

	examples := []eg{
		{Placement{}, r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 1, Y: 2, Z: 3}},
		{Placement{Heading: 90}, r3.Vector{X: 1}, r3.Vector{Y: 1}},
		{Placement{Heading: 180}, r3.Vector{X: 1}, r3.Vector{X: -1}},
		{Placement{Heading: 90, Position: r3.Vector{X: 9, Y: 9, Z: 1}}, r3.Vector{X: 1}, r3.Vector{X: 9, Y: 10, Z: 1}},
	}

	for i, x := range examples {
		act := x.p.Matrix().Apply(x.in)
		assert.InDelta(t, x.exp.X, act.X, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.exp.Y, act.Y, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.exp.Z, act.Z, 1e-9, "example %d", i+1)
	}
}

func TestPlacementBetween(t *testing.T) {
	type eg struct {
		a0, a1, b0, b1 r3.Vector
		heading        float64
		pos            r3.Vector
	}

	examples := []eg{
		// Already there.
		{r3.Vector{X: 1}, r3.Vector{X: 2}, r3.Vector{X: 1}, r3.Vector{X: 2}, 0, r3.Vector{}},

		// Shift only. Height is ignored.
		{r3.Vector{X: 1, Z: 5}, r3.Vector{X: 2, Z: 5}, r3.Vector{X: 4, Y: 1}, r3.Vector{X: 5, Y: 1}, 0, r3.Vector{X: 3, Y: 1}},

		// Turn left.
		{r3.Vector{X: 1}, r3.Vector{X: 2}, r3.Vector{Y: 1}, r3.Vector{Y: 2}, 90, r3.Vector{}},

		// Turn right, then shift.
		{r3.Vector{Y: 1}, r3.Vector{Y: 2}, r3.Vector{X: 2, Y: 1}, r3.Vector{X: 3, Y: 1}, -90, r3.Vector{X: 1, Y: 1}},
	}

	for i, x := range examples {
		p := PlacementBetween(x.a0, x.a1, x.b0, x.b1)
		assert.InDelta(t, x.heading, p.Heading, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.pos.X, p.Position.X, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.pos.Y, p.Position.Y, 1e-9, "example %d", i+1)
		assert.Equal(t, 0.0, p.Position.Z, "example %d", i+1)

		// The first point always lands.
		act := p.Matrix().Apply(x.a0)
		assert.InDelta(t, x.b0.X, act.X, 1e-9, "example %d", i+1)
		assert.InDelta(t, x.b0.Y, act.Y, 1e-9, "example %d", i+1)
	}
}

func TestEulerAngles(t *testing.T) {
	assert.True(t, EulerAngles{}.Matrix().ApproxEqual(IdentityMatrix, 1e-12))
	assert.Equal(t, "&Euler{x=+10.00° y=-5.00° z=+0.00°}", EulerAngles{X: 10, Y: -5}.String())
}
