package hexapod

import (
	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/legs"
	"github.com/hexakin/hexapod/math3d"
	"go.uber.org/multierr"
)

// IKParams describe how the body should be moved relative to where it stands
// in the start stance.
//
// Translations are fractions: TX of the middle, TY of the side, TZ of the
// tibia. Rotations are degrees about the body axes, applied X then Y then Z.
// The start stance has every leg at the same leg stance, with the front and
// back legs turned about their hips by the hip stance.
type IKParams struct {
	TX        float64 `json:"tx"`
	TY        float64 `json:"ty"`
	TZ        float64 `json:"tz"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	RZ        float64 `json:"rz"`
	HipStance float64 `json:"hipStance"`
	LegStance float64 `json:"legStance"`
}

// BaseIKParams returns params which don't move anything.
func BaseIKParams() IKParams {
	return IKParams{}
}

// Translation returns the absolute translation vector.
func (p IKParams) Translation(d Dimensions) r3.Vector {
	return r3.Vector{
		X: p.TX * d.Middle,
		Y: p.TY * d.Side,
		Z: p.TZ * d.Tibia,
	}
}

// Orientation returns the body rotation.
func (p IKParams) Orientation() math3d.EulerAngles {
	return math3d.EulerAngles{X: p.RX, Y: p.RY, Z: p.RZ}
}

// Rotation returns the body rotation matrix.
func (p IKParams) Rotation() math3d.Matrix44 {
	return p.Orientation().Matrix()
}

// StartPose returns the pose of the flat hexapod before it is moved. The
// feet of this pose are the targets which the moved hexapod should stand on.
func (p IKParams) StartPose() legs.Poses {
	alphas := [legs.NumLegs]float64{0, -p.HipStance, p.HipStance, 0, -p.HipStance, p.HipStance}

	ps := make(legs.Poses, legs.NumLegs)
	for _, pos := range legs.Positions() {
		ps[pos] = legs.Pose{
			Alpha: alphas[pos],
			Beta:  p.LegStance,
			Gamma: -p.LegStance,
		}
	}

	return ps
}

// Validate returns an error for every param which is out of range.
func (p IKParams) Validate() error {
	return multierr.Combine(
		TranslationRange.Check("tx", p.TX),
		TranslationRange.Check("ty", p.TY),
		TranslationRange.Check("tz", p.TZ),
		RotationRange.Check("rx", p.RX),
		RotationRange.Check("ry", p.RY),
		RotationRange.Check("rz", p.RZ),
		StanceRange.Check("hipStance", p.HipStance),
		StanceRange.Check("legStance", p.LegStance),
	)
}
