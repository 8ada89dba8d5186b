package game

import "math"

// Direction is one of eight compass headings, or DirNone when there is
// no offset at all.
type Direction uint8

const (
	DirNone Direction = iota
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

var directionNames = [...]string{"none", "n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Angle is the clockwise draw rotation, in radians, for a sprite whose
// art faces north. DirNone draws unrotated.
func (d Direction) Angle() float64 {
	if d == DirNone {
		return 0
	}
	return float64(d-DirN) * math.Pi / 4
}

// ClassifyDirection buckets an offset using the default 60px margin.
func ClassifyDirection(dx, dy float64) Direction {
	return ClassifyDirectionMargin(dx, dy, DirectionMargin)
}

// ClassifyDirectionMargin buckets (dx, dy) into one of the eight headings.
// The horizontal band is checked first, so an offset inside both bands
// is E or W. Only (0,0) yields DirNone.
func ClassifyDirectionMargin(dx, dy, margin float64) Direction {
	if math.Abs(dy) < margin && dx != 0 {
		if dx > 0 {
			return DirE
		}
		return DirW
	}
	if math.Abs(dx) < margin && dy != 0 {
		if dy > 0 {
			return DirS
		}
		return DirN
	}
	switch {
	case dx > 0 && dy > 0:
		return DirSE
	case dx > 0 && dy < 0:
		return DirNE
	case dx < 0 && dy > 0:
		return DirSW
	case dx < 0 && dy < 0:
		return DirNW
	case dx > 0:
		return DirE
	case dx < 0:
		return DirW
	case dy > 0:
		return DirS
	case dy < 0:
		return DirN
	}
	return DirNone
}
