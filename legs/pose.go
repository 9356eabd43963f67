package legs

import (
	"fmt"
)

// Dimensions are the lengths of the three segments of a leg.
type Dimensions struct {
	Coxia float64 `json:"coxia"`
	Femur float64 `json:"femur"`
	Tibia float64 `json:"tibia"`
}

// Pose is the three joint angles of a leg, in degrees.
//
//   - Alpha: hip yaw, between the leg's X axis and the coxia.
//   - Beta: between the coxia and the femur.
//   - Gamma: between the perpendicular of the coxia and the tibia.
type Pose struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

func (p Pose) String() string {
	return fmt.Sprintf("&Pose{a=%+.2f° b=%+.2f° g=%+.2f°}", p.Alpha, p.Beta, p.Gamma)
}

// Poses maps each leg to its pose. Solvers may return a partial map.
type Poses map[Position]Pose

// Complete returns true if every leg has a pose.
func (ps Poses) Complete() bool {
	for _, p := range Positions() {
		if _, ok := ps[p]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy, so callers can't mutate each other's poses.
func (ps Poses) Clone() Poses {
	c := make(Poses, len(ps))
	for k, v := range ps {
		c[k] = v
	}
	return c
}

// UniformPoses returns the same pose for every leg.
func UniformPoses(p Pose) Poses {
	ps := make(Poses, NumLegs)
	for _, pos := range Positions() {
		ps[pos] = p
	}
	return ps
}
