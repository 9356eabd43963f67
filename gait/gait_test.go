package gait

import (
	"encoding/json"
	"testing"

	"github.com/hexakin/hexapod"
	"github.com/hexakin/hexapod/legs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func stance() legs.Poses {
	return hexapod.IKParams{HipStance: 25, LegStance: -20}.StartPose()
}

func assertFrames(t *testing.T, exp []float64, act Frames, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, act, len(exp), msgAndArgs...)
	assert.InDeltaSlice(t, exp, []float64(act), 1e-6, msgAndArgs...)
}

func TestRamp(t *testing.T) {
	assert.Equal(t, Frames{-10, 0, 10, 20}, ramp(-20, 40, 4))
	assert.Equal(t, Frames{15, 10, 5, 0}, ramp(20, -20, 4))
	assert.Equal(t, Frames{5}, ramp(0, 5, 1))
}

func TestRotated(t *testing.T) {
	phases := [ripplePhases]Frames{{0}, {1}, {2}, {3}, {4}, {5}}
	assert.Equal(t, Frames{0, 1, 2, 3, 4, 5}, rotated(phases, 0))
	assert.Equal(t, Frames{5, 0, 1, 2, 3, 4}, rotated(phases, 5))
	assert.Equal(t, Frames{2, 3, 4, 5, 0, 1}, rotated(phases, 2))
}

func TestHipSwings(t *testing.T) {
	w := HipSwings(Walking, 25)
	r := HipSwings(Rotating, 25)

	for _, pos := range legs.Positions() {
		if pos.IsLeft() {
			assert.Equal(t, -25.0, w[pos], pos.String())
		} else {
			assert.Equal(t, 25.0, w[pos], pos.String())
		}
		assert.Equal(t, 25.0, r[pos], pos.String())
	}
}

func TestTripodSequence(t *testing.T) {
	g := TripodSequence(stance(), 40, HipSwings(Walking, 25), 4)
	require.Equal(t, 16, g.Len())

	type eg struct {
		pos   legs.Position
		alpha []float64
		beta  []float64
		gamma []float64
	}

	examples := []eg{
		{
			pos:   legs.RightMiddle,
			alpha: []float64{-18.75, -12.5, -6.25, 0, 6.25, 12.5, 18.75, 25, 25, 18.75, 12.5, 6.25, 0, -6.25, -12.5, -18.75},
			beta:  []float64{-10, 0, 10, 20, 20, 10, 0, -10, -10, -10, -10, -10, -10, -10, -10, -10},
			gamma: []float64{15, 10, 5, 0, 0, 5, 10, 15, 15, 15, 15, 15, 15, 15, 15, 15},
		},
		{
			pos:   legs.RightFront,
			alpha: []float64{0, -6.25, -12.5, -18.75, -25, -31.25, -37.5, -43.75, -43.75, -37.5, -31.25, -25, -18.75, -12.5, -6.25, 0},
			beta:  []float64{-10, -10, -10, -10, -10, -10, -10, -10, -10, 0, 10, 20, 20, 10, 0, -10},
			gamma: []float64{15, 15, 15, 15, 15, 15, 15, 15, 15, 10, 5, 0, 0, 5, 10, 15},
		},
		{
			pos:   legs.LeftBack,
			alpha: []float64{-6.25, -12.5, -18.75, -25, -31.25, -37.5, -43.75, -50, -50, -43.75, -37.5, -31.25, -25, -18.75, -12.5, -6.25},
			beta:  []float64{-10, 0, 10, 20, 20, 10, 0, -10, -10, -10, -10, -10, -10, -10, -10, -10},
			gamma: []float64{15, 10, 5, 0, 0, 5, 10, 15, 15, 15, 15, 15, 15, 15, 15, 15},
		},
	}

	for _, x := range examples {
		s := g.Leg(x.pos)
		assertFrames(t, x.alpha, s.Alpha, x.pos.String())
		assertFrames(t, x.beta, s.Beta, x.pos.String())
		assertFrames(t, x.gamma, s.Gamma, x.pos.String())
	}
}

func TestTripodGroupsAlternate(t *testing.T) {
	g := TripodSequence(stance(), 40, HipSwings(Walking, 25), 4)

	// While one group is lifted, the other holds.
	for n := 0; n < g.Len(); n++ {
		aUp := g.Frame(tripodA[0], n).Beta != g.Frame(tripodA[0], g.Len()-1).Beta
		bUp := g.Frame(tripodB[0], n).Beta != g.Frame(tripodB[0], 0).Beta
		assert.False(t, aUp && bUp, "tick %d", n)
	}
}

func TestRippleSequence(t *testing.T) {
	g := RippleSequence(stance(), 40, HipSwings(Walking, 25), 2)
	require.Equal(t, 12, g.Len())

	type eg struct {
		pos   legs.Position
		alpha []float64
		beta  []float64
		gamma []float64
	}

	examples := []eg{
		{
			pos:   legs.LeftBack,
			alpha: []float64{-12.5, -25, -37.5, -50, -43.75, -37.5, -31.25, -25, -18.75, -12.5, -6.25, 0},
			beta:  []float64{0, 20, 20, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			gamma: []float64{10, 0, 0, 10, 10, 10, 10, 10, 10, 10, 10, 10},
		},
		{
			pos:   legs.RightMiddle,
			alpha: []float64{-18.75, -25, -12.5, 0, 12.5, 25, 18.75, 12.5, 6.25, 0, -6.25, -12.5},
			beta:  []float64{0, 0, 0, 20, 20, 0, 0, 0, 0, 0, 0, 0},
			gamma: []float64{10, 10, 10, 0, 0, 10, 10, 10, 10, 10, 10, 10},
		},
	}

	for _, x := range examples {
		s := g.Leg(x.pos)
		assertFrames(t, x.alpha, s.Alpha, x.pos.String())
		assertFrames(t, x.beta, s.Beta, x.pos.String())
		assertFrames(t, x.gamma, s.Gamma, x.pos.String())
	}
}

func TestRippleRotating(t *testing.T) {
	g := RippleSequence(stance(), 40, HipSwings(Rotating, 10), 1)
	require.Equal(t, 6, g.Len())
	assertFrames(t, []float64{20, 15, 25, 35, 30, 25}, g.Leg(legs.LeftFront).Alpha)
	assertFrames(t, []float64{20, 20, 20, 20, 20, 20}, g.Leg(legs.LeftFront).Beta)
}

func TestFramesWrap(t *testing.T) {
	g := TripodSequence(stance(), 40, HipSwings(Walking, 25), 2)
	assert.Equal(t, g.Frame(legs.LeftFront, 3), g.Frame(legs.LeftFront, 3+g.Len()))
}

func TestFramesIterator(t *testing.T) {
	g := TripodSequence(stance(), 40, HipSwings(Walking, 25), 2)

	count := 0
	for n, ps := range g.Frames() {
		assert.Equal(t, count, n)
		assert.True(t, ps.Complete())
		assert.Equal(t, g.Frame(legs.RightBack, n), ps[legs.RightBack])
		count++
	}
	assert.Equal(t, g.Len(), count)

	// Stopping early is fine.
	for n := range g.Frames() {
		if n == 2 {
			break
		}
	}
}

func TestWalkSequence(t *testing.T) {
	g, err := WalkSequence(hexapod.BaseDimensions(), BaseParams(), Tripod, Walking)
	require.NoError(t, err)
	require.Equal(t, 16, g.Len())

	assertFrames(t,
		[]float64{-18.75, -12.5, -6.25, 0, 6.25, 12.5, 18.75, 25, 25, 18.75, 12.5, 6.25, 0, -6.25, -12.5, -18.75},
		g.Leg(legs.RightMiddle).Alpha)

	r, err := WalkSequence(hexapod.BaseDimensions(), BaseParams(), Ripple, Rotating)
	require.NoError(t, err)
	assert.Equal(t, 24, r.Len())
}

func TestWalkSequenceNegativeSwings(t *testing.T) {
	p := BaseParams()
	a, err := WalkSequence(hexapod.BaseDimensions(), p, Tripod, Walking)
	require.NoError(t, err)

	p.HipSwing = -p.HipSwing
	p.LiftSwing = -p.LiftSwing
	b, err := WalkSequence(hexapod.BaseDimensions(), p, Tripod, Walking)
	require.NoError(t, err)

	assert.Equal(t, a.Sequences(), b.Sequences())
}

func TestWalkSequenceFailures(t *testing.T) {
	dims := hexapod.BaseDimensions()

	p := BaseParams()
	p.StepCount = 0
	_, err := WalkSequence(dims, p, Tripod, Walking)
	assert.Error(t, err)

	// Shoving the body all the way forward leaves a leg behind.
	p = BaseParams()
	p.HipStance = 0
	p.LegStance = 0
	p.TX = 1
	_, err = WalkSequence(dims, p, Tripod, Walking)
	assert.True(t, errors.Is(err, ErrLegsOff), "%v", err)

	p = BaseParams()
	p.RX = 60
	p.HipStance = 0
	p.LegStance = 0
	_, err = WalkSequence(dims, p, Ripple, Walking)
	assert.True(t, errors.Is(err, ErrNoStance), "%v", err)
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, BaseParams().Validate())

	p := BaseParams()
	p.StepCount = 0
	p.HipSwing = 30
	p.RX = 100
	assert.Len(t, multierr.Errors(p.Validate()), 3)
}

func TestTypeText(t *testing.T) {
	var ty Type
	require.NoError(t, ty.UnmarshalText([]byte("Ripple")))
	assert.Equal(t, Ripple, ty)
	assert.Error(t, ty.UnmarshalText([]byte("gallop")))

	var m Mode
	require.NoError(t, json.Unmarshal([]byte(`"rotating"`), &m))
	assert.Equal(t, Rotating, m)

	b, err := json.Marshal(struct {
		T Type
		M Mode
	}{Tripod, Walking})
	require.NoError(t, err)
	assert.JSONEq(t, `{"T":"tripod","M":"walking"}`, string(b))
}
