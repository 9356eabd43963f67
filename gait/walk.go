package gait

import (
	"fmt"
	"math"

	"github.com/hexakin/hexapod"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "gait"})

var (
	ErrNoStance = errors.New("no stance to walk from")
	ErrLegsOff  = errors.New("legs off the ground in stance")
)

// MaxHipSwing is the furthest a hip may swing either side of its stance.
const MaxHipSwing = 25

// Params describe the stance to walk from, and how far to swing each leg.
type Params struct {
	TX        float64 `json:"tx"`
	TZ        float64 `json:"tz"`
	RX        float64 `json:"rx"`
	RY        float64 `json:"ry"`
	LegStance float64 `json:"legStance"`
	HipStance float64 `json:"hipStance"`

	StepCount int     `json:"stepCount"`
	HipSwing  float64 `json:"hipSwing"`
	LiftSwing float64 `json:"liftSwing"`
}

func BaseParams() Params {
	return Params{
		LegStance: -20,
		HipStance: 25,
		StepCount: 4,
		HipSwing:  25,
		LiftSwing: 40,
	}
}

// IKParams returns the params of the stance. Walking never shifts sideways
// or turns the body about Z.
func (p Params) IKParams() hexapod.IKParams {
	return hexapod.IKParams{
		TX:        p.TX,
		TZ:        p.TZ,
		RX:        p.RX,
		RY:        p.RY,
		LegStance: p.LegStance,
		HipStance: p.HipStance,
	}
}

func (p Params) Validate() error {
	err := p.IKParams().Validate()
	if p.StepCount < 1 {
		err = multierr.Append(err, fmt.Errorf("stepCount must be at least 1, got %d", p.StepCount))
	}
	err = multierr.Append(err, hexapod.Symmetric(MaxHipSwing).Check("hipSwing", p.HipSwing))
	return err
}

// WalkSequence solves the stance described by p, and returns a gait which
// walks (or turns) from it. The stance must stand on all six legs.
func WalkSequence(dims hexapod.Dimensions, p Params, t Type, m Mode) (*Gait, error) {
	if p.StepCount < 1 {
		return nil, errors.Errorf("bad step count: %d", p.StepCount)
	}

	res, _, _, err := hexapod.SolveParams(dims, p.IKParams(), true, hexapod.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoStance, err)
	}
	if !res.FoundSolution {
		return nil, fmt.Errorf("%w: %w", ErrNoStance, res.Err)
	}
	if res.HasLegsOffGround() {
		return nil, errors.Wrapf(ErrLegsOff, "%v", res.LegsOffGround)
	}

	swings := HipSwings(m, math.Abs(p.HipSwing))
	lift := math.Abs(p.LiftSwing)

	log.WithFields(logrus.Fields{
		"type":  t,
		"mode":  m,
		"steps": p.StepCount,
	}).Debug("building walk sequence")

	var g Gait
	switch t {
	case Ripple:
		g = RippleSequence(res.Pose, lift, swings, p.StepCount)
	default:
		g = TripodSequence(res.Pose, lift, swings, p.StepCount)
	}

	return &g, nil
}
