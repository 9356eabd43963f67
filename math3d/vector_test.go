package math3d

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestUnit(t *testing.T) {
	type eg struct {
		in  r3.Vector
		out r3.Vector
	}

	examples := []eg{
		{r3.Vector{X: 0, Y: 0, Z: 0}, ZeroVector3},
		{r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
		{r3.Vector{X: 2, Y: 2, Z: 2}, r3.Vector{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
		{r3.Vector{X: 0, Y: 0, Z: -4}, r3.Vector{X: 0, Y: 0, Z: -1}},
	}

	for i, x := range examples {
		act := Unit(x.in)
		assert.InDelta(t, x.out.X, act.X, 1e-12, "example %d", i+1)
		assert.InDelta(t, x.out.Y, act.Y, 1e-12, "example %d", i+1)
		assert.InDelta(t, x.out.Z, act.Z, 1e-12, "example %d", i+1)
	}
}

func TestAngleBetween(t *testing.T) {
	type eg struct {
		a   r3.Vector
		b   r3.Vector
		exp float64
	}

	examples := []eg{
		{XAxis, XAxis, 0},
		{XAxis, YAxis, 90},
		{XAxis, r3.Vector{X: -3}, 180},
		{XAxis, r3.Vector{X: 1, Y: 1}, 45},
		{r3.Vector{X: 2, Y: 2, Z: 2}, r3.Vector{X: 3, Y: 3, Z: 3}, 0},
		{ZeroVector3, YAxis, 0},
		{YAxis, ZeroVector3, 0},
	}

	for i, x := range examples {
		assert.InDelta(t, x.exp, AngleBetween(x.a, x.b), 1e-6, "example %d", i+1)
	}
}

func TestIsCounterClockwise(t *testing.T) {
	assert.True(t, IsCounterClockwise(r3.Vector{X: 1, Y: -1}, XAxis, ZAxis))
	assert.False(t, IsCounterClockwise(r3.Vector{X: 1, Y: 1}, XAxis, ZAxis))
	assert.False(t, IsCounterClockwise(XAxis, XAxis, ZAxis))
}

func TestProjectOntoPlane(t *testing.T) {
	v := ProjectOntoPlane(r3.Vector{X: 3, Y: 4, Z: -5}, r3.Vector{Z: 2})
	assert.Equal(t, r3.Vector{X: 3, Y: 4, Z: 0}, v)

	v = ProjectOntoPlane(r3.Vector{X: 1, Y: 1, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 0})
	assert.InDelta(t, 0, v.Norm(), 1e-12)
}

func TestPlaneNormal(t *testing.T) {
	n := PlaneNormal(r3.Vector{}, r3.Vector{X: 3}, r3.Vector{Y: 3})
	assert.Equal(t, ZAxis, n)

	n = PlaneNormal(r3.Vector{}, r3.Vector{Y: 3}, r3.Vector{X: 3})
	assert.Equal(t, r3.Vector{Z: -1}, n)
}

func TestPointShiftKeepsIdentity(t *testing.T) {
	p := MakePoint(1, 2, 3, "leftBack-femurPoint", "4-2")
	s := p.Shift(r3.Vector{X: 10, Y: 20, Z: 30})

	assert.Equal(t, "leftBack-femurPoint", s.Name)
	assert.Equal(t, "4-2", s.ID)
	assert.Equal(t, r3.Vector{X: 11, Y: 22, Z: 33}, s.Vector)

	// the original is untouched
	assert.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, p.Vector)

	back := s.Shift(r3.Vector{X: -10, Y: -20, Z: -30})
	assert.Equal(t, p, back)
}
