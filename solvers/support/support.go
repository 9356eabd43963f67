package support

import (
	"github.com/hexakin/hexapod/legs"
)

const (
	MightBeStableLess = "Might be stable.\nLess than three known legs are off the ground."
	TooManyLegsOff    = "Definitely Unstable.\nToo many legs off the floor."
	RightLegsOff      = "Definitely Unstable.\nAll right legs are off the floor."
	LeftLegsOff       = "Definitely Unstable.\nAll left legs are off the floor."
	MightBeStableMore = "Might be stable.\nThree known legs are off the ground.\nOne is on opposite side of the other two."
)

// Check returns true if the hexapod definitely can't stand with the given legs
// off the ground, and the reason either way. A false result doesn't mean that
// the stance is stable, only that it can't be ruled out from the leg count.
func Check(offGround []legs.Position) (bool, string) {
	if len(offGround) < 3 {
		return false, MightBeStableLess
	}

	if len(offGround) >= 4 {
		return true, TooManyLegsOff
	}

	left := 0
	for _, p := range offGround {
		if p.IsLeft() {
			left++
		}
	}

	switch left {
	case 0:
		return true, RightLegsOff
	case len(offGround):
		return true, LeftLegsOff
	}

	return false, MightBeStableMore
}
