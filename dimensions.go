package hexapod

import (
	"fmt"

	"github.com/hexakin/hexapod/body"
	"github.com/hexakin/hexapod/legs"
	"go.uber.org/multierr"
)

// Dimensions are the body and leg measurements of a hexapod, in whatever unit
// the caller likes. Nothing here cares, as long as it's consistent.
type Dimensions struct {
	Front  float64 `json:"front"`
	Side   float64 `json:"side"`
	Middle float64 `json:"middle"`
	Coxia  float64 `json:"coxia"`
	Femur  float64 `json:"femur"`
	Tibia  float64 `json:"tibia"`
}

// BaseDimensions returns the dimensions of the reference robot.
func BaseDimensions() Dimensions {
	return Dimensions{
		Front:  59,
		Side:   120,
		Middle: 92,
		Coxia:  45,
		Femur:  75,
		Tibia:  135,
	}
}

func (d Dimensions) Body() body.Dimensions {
	return body.Dimensions{Front: d.Front, Side: d.Side, Middle: d.Middle}
}

func (d Dimensions) Legs() legs.Dimensions {
	return legs.Dimensions{Coxia: d.Coxia, Femur: d.Femur, Tibia: d.Tibia}
}

// Validate returns an error for every dimension which isn't positive.
func (d Dimensions) Validate() error {
	var err error
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"front", d.Front},
		{"side", d.Side},
		{"middle", d.Middle},
		{"coxia", d.Coxia},
		{"femur", d.Femur},
		{"tibia", d.Tibia},
	} {
		if f.v <= 0 {
			err = multierr.Append(err, fmt.Errorf("%s must be positive, got %.2f", f.name, f.v))
		}
	}
	return err
}

// StartPose returns the neutral pose of the reference robot: feet spread
// around the body, standing level.
func StartPose() legs.Poses {
	return legs.Poses{
		legs.RightMiddle: {Alpha: 45, Beta: -20, Gamma: 20},
		legs.RightFront:  {Alpha: 45, Beta: -20, Gamma: 20},
		legs.LeftFront:   {Alpha: -45, Beta: -20, Gamma: 20},
		legs.LeftMiddle:  {Alpha: -45, Beta: -20, Gamma: 20},
		legs.LeftBack:    {Alpha: 0, Beta: -20, Gamma: 20},
		legs.RightBack:   {Alpha: 0, Beta: -20, Gamma: 20},
	}
}
