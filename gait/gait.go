// Package gait turns a static stance into a periodic walking sequence.
package gait

import (
	"iter"

	"github.com/hexakin/hexapod/legs"
)

// Frames holds one value per tick.
type Frames []float64

// Sequence is the joint angles of a single leg, tick by tick.
type Sequence struct {
	Alpha Frames `json:"alpha"`
	Beta  Frames `json:"beta"`
	Gamma Frames `json:"gamma"`
}

func (s Sequence) pose(n int) legs.Pose {
	return legs.Pose{Alpha: s.Alpha[n], Beta: s.Beta[n], Gamma: s.Gamma[n]}
}

type Gait struct {
	legs   [legs.NumLegs]Sequence
	length int
}

// Len returns the number of ticks necessary to complete a full cycle of the
// gait, such that the feet are back in their original position relative to the
// body.
func (g *Gait) Len() int {
	return g.length
}

// Leg returns the whole sequence of a single leg.
func (g *Gait) Leg(pos legs.Position) Sequence {
	return g.legs[pos]
}

// Frame returns the pose of the given leg at the given tick. Ticks wrap, so
// the caller can just keep counting.
func (g *Gait) Frame(pos legs.Position, n int) legs.Pose {
	return g.legs[pos].pose(n % g.length)
}

// Poses returns the pose of every leg at the given tick.
func (g *Gait) Poses(n int) legs.Poses {
	ps := make(legs.Poses, legs.NumLegs)
	for _, pos := range legs.Positions() {
		ps[pos] = g.Frame(pos, n)
	}
	return ps
}

// Frames yields every tick of one cycle with the poses of all legs.
func (g *Gait) Frames() iter.Seq2[int, legs.Poses] {
	return func(yield func(int, legs.Poses) bool) {
		for n := 0; n < g.length; n++ {
			if !yield(n, g.Poses(n)) {
				return
			}
		}
	}
}

// Sequences returns the sequence of every leg, keyed by leg name.
func (g *Gait) Sequences() map[string]Sequence {
	out := make(map[string]Sequence, legs.NumLegs)
	for _, pos := range legs.Positions() {
		out[pos.String()] = g.legs[pos]
	}
	return out
}
