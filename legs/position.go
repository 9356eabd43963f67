package legs

import (
	"fmt"
	"strings"
)

// NumLegs is the number of legs on a hexapod.
const NumLegs = 6

// Position identifies one of the six legs. Its value is the leg index, which
// is used for array ordering and as the prefix of leg point ids.
//
//	     leftFront(2)    rightFront(1)
//	             \   head  /
//	              *---*---*
//	             /    |    \
//	leftMiddle(3)-*--cog--*-rightMiddle(0)
//	             \    |    /
//	              *---*---*
//	             /         \
//	     leftBack(4)     rightBack(5)
type Position int

const (
	RightMiddle Position = iota
	RightFront
	LeftFront
	LeftMiddle
	LeftBack
	RightBack
)

var (
	positionNames = [NumLegs]string{
		"rightMiddle",
		"rightFront",
		"leftFront",
		"leftMiddle",
		"leftBack",
		"rightBack",
	}

	// Angle (in degrees) between the hexapod X axis and the leg's local X
	// axis, when alpha is zero.
	axisAngles = [NumLegs]float64{0, 45, 135, 180, 225, 315}

	isLeft = [NumLegs]bool{false, false, true, true, true, false}
)

// Positions returns every position, ordered by leg index.
func Positions() [NumLegs]Position {
	return [NumLegs]Position{RightMiddle, RightFront, LeftFront, LeftMiddle, LeftBack, RightBack}
}

// ParsePosition returns the position with the given name, e.g. "leftBack".
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown leg position: %q", name)
}

func (p Position) Valid() bool {
	return p >= 0 && int(p) < NumLegs
}

// Index returns the leg index (0-5).
func (p Position) Index() int {
	return int(p)
}

// AxisAngle returns the fixed angle between the hexapod X axis and the X axis
// of this leg, in degrees.
func (p Position) AxisAngle() float64 {
	return axisAngles[p]
}

// IsLeft returns true for the three legs on the left side of the body.
func (p Position) IsLeft() bool {
	return isLeft[p]
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// MarshalText lets positions be used as JSON object keys.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid leg position: %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(b []byte) error {
	pp, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// PointType identifies one of the four points of a leg, in order from the
// body outwards.
type PointType int

const (
	BodyContactPoint PointType = iota
	CoxiaPoint
	FemurPoint
	FootTipPoint
)

const numPoints = 4

var pointTypeNames = [numPoints]string{
	"bodyContactPoint",
	"coxiaPoint",
	"femurPoint",
	"footTipPoint",
}

func (t PointType) String() string {
	if t < 0 || int(t) >= numPoints {
		return fmt.Sprintf("PointType(%d)", int(t))
	}
	return pointTypeNames[t]
}

// ParsePointName splits a leg point name like "leftBack-femurPoint" into its
// position and point type.
func ParsePointName(name string) (Position, PointType, error) {
	pos, typ, ok := strings.Cut(name, "-")
	if !ok {
		return 0, 0, fmt.Errorf("not a leg point name: %q", name)
	}

	p, err := ParsePosition(pos)
	if err != nil {
		return 0, 0, err
	}

	for i, n := range pointTypeNames {
		if n == typ {
			return p, PointType(i), nil
		}
	}

	return 0, 0, fmt.Errorf("unknown point type: %q", typ)
}
