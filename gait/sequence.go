package gait

import (
	"slices"

	"github.com/hexakin/hexapod/legs"
)

var (
	tripodA = []legs.Position{legs.LeftFront, legs.RightMiddle, legs.LeftBack}
	tripodB = []legs.Position{legs.RightFront, legs.LeftMiddle, legs.RightBack}

	// Which of the six ripple phases each leg starts at.
	//
	// left-back     |-- a --|-- b --|   1   |   2   |   3   |   4   |
	// left-middle   |   3   |   4   |-- a --|-- b --|   1   |   2   |
	// left-front    |   1   |   2   |   3   |   4   |-- a --|-- b --|
	// right-front   |   4   |-- a --|-- b --|   1   |   2   |   3   |
	// right-back    |   1   |   2   |   3   |-- a --|-- b --|   4   |
	// right-middle  |-- b --|   1   |   2   |   3   |   4   |-- a --|
	//
	// a: lift, b: shove down, 1-4: power stroke.
	rippleOffsets = [legs.NumLegs]int{
		legs.LeftBack:    0,
		legs.RightFront:  1,
		legs.LeftMiddle:  2,
		legs.RightBack:   3,
		legs.LeftFront:   4,
		legs.RightMiddle: 5,
	}
)

const ripplePhases = 6

// HipSwings returns how far each hip swings either side of its stance.
func HipSwings(mode Mode, swing float64) [legs.NumLegs]float64 {
	var out [legs.NumLegs]float64
	for _, pos := range legs.Positions() {
		if mode == Walking && pos.IsLeft() {
			out[pos] = -swing
		} else {
			out[pos] = swing
		}
	}
	return out
}

// TripodSequence returns a gait in which two groups of three legs take turns
// to lift and swing forward, while the other group pushes back. Each half of
// the cycle takes 2*steps ticks.
func TripodSequence(start legs.Poses, liftSwing float64, hipSwings [legs.NumLegs]float64, steps int) Gait {
	double := 2 * steps

	var out Gait
	out.length = 2 * double

	build := func(pos legs.Position) (fw, beta, gamma Frames) {
		p := start[pos]
		d := hipSwings[pos]
		fw = ramp(p.Alpha-d, 2*d, double)
		beta = ramp(p.Beta, liftSwing, steps)
		gamma = ramp(p.Gamma, -liftSwing/2, steps)
		return
	}

	for _, pos := range tripodA {
		fw, beta, gamma := build(pos)
		out.legs[pos] = Sequence{
			Alpha: concat(fw, reversed(fw)),
			Beta:  concat(beta, reversed(beta), fill(beta[0], double)),
			Gamma: concat(gamma, reversed(gamma), fill(gamma[0], double)),
		}
	}

	for _, pos := range tripodB {
		fw, beta, gamma := build(pos)
		out.legs[pos] = Sequence{
			Alpha: concat(reversed(fw), fw),
			Beta:  concat(fill(beta[0], double), beta, reversed(beta)),
			Gamma: concat(fill(gamma[0], double), gamma, reversed(gamma)),
		}
	}

	return out
}

// RippleSequence returns a gait in which one leg at a time lifts and swings
// forward, and the rest push back in four short strokes. Each of the six
// phases takes steps ticks.
func RippleSequence(start legs.Poses, liftSwing float64, hipSwings [legs.NumLegs]float64, steps int) Gait {
	var out Gait
	out.length = ripplePhases * steps

	for _, pos := range legs.Positions() {
		p := start[pos]
		d := hipSwings[pos]
		half := d / 2

		betaLift := ramp(p.Beta, liftSwing, steps)
		gammaLift := ramp(p.Gamma, -liftSwing/2, steps)
		betaHold := fill(betaLift[0], steps)
		gammaHold := fill(gammaLift[0], steps)

		alpha := [ripplePhases]Frames{
			ramp(p.Alpha-d, d, steps),
			ramp(p.Alpha, d, steps),
			ramp(p.Alpha+d, -half, steps),
			ramp(p.Alpha+half, -half, steps),
			ramp(p.Alpha, -half, steps),
			ramp(p.Alpha-half, -half, steps),
		}
		beta := [ripplePhases]Frames{betaLift, reversed(betaLift), betaHold, betaHold, betaHold, betaHold}
		gamma := [ripplePhases]Frames{gammaLift, reversed(gammaLift), gammaHold, gammaHold, gammaHold, gammaHold}

		off := rippleOffsets[pos]
		out.legs[pos] = Sequence{
			Alpha: rotated(alpha, off),
			Beta:  rotated(beta, off),
			Gamma: rotated(gamma, off),
		}
	}

	return out
}

// ramp returns n values moving from start towards start+delta, in equal steps.
// The first value is one step in and the last is start+delta.
func ramp(start, delta float64, n int) Frames {
	out := make(Frames, n)
	step := delta / float64(n)
	v := start
	for i := range out {
		v += step
		out[i] = v
	}
	return out
}

func fill(v float64, n int) Frames {
	out := make(Frames, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func reversed(f Frames) Frames {
	out := slices.Clone(f)
	slices.Reverse(out)
	return out
}

func concat(fs ...Frames) Frames {
	return slices.Concat(fs...)
}

// rotated concatenates the phases, starting at phase off and wrapping around.
func rotated(phases [ripplePhases]Frames, off int) Frames {
	var out Frames
	for i := 0; i < ripplePhases; i++ {
		out = append(out, phases[(off+i)%ripplePhases]...)
	}
	return out
}
