package core

// Direction is a unit translation a piece can attempt.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionOffsets = [...]Coord{
	DirectionNone:  {0, 0},
	DirectionDown:  {0, 1},
	DirectionLeft:  {-1, 0},
	DirectionRight: {1, 0},
}

// Offset returns the unit vector of d.
func (d Direction) Offset() Coord {
	if int(d) >= len(directionOffsets) {
		return Coord{}
	}
	return directionOffsets[d]
}

// Opposite mirrors horizontal directions. Down and None have no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf maps a unit vector back to its Direction. Anything else is DirectionNone.
func DirectionOf(c Coord) Direction {
	for d, offset := range directionOffsets {
		if d != int(DirectionNone) && offset == c {
			return Direction(d)
		}
	}
	return DirectionNone
}

// Rotation is a quarter turn around a piece's pivot.
type Rotation uint8

const (
	RotationNone Rotation = iota
	RotationCW
	RotationCCW
)

// Direction is the side a rotation sweeps towards: CW leans right, CCW leans left.
func (r Rotation) Direction() Direction {
	switch r {
	case RotationCW:
		return DirectionRight
	case RotationCCW:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

func (r Rotation) String() string {
	switch r {
	case RotationCW:
		return "cw"
	case RotationCCW:
		return "ccw"
	default:
		return "none"
	}
}

// Collision classifies the first conflict found for a candidate piece pose.
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionUnder
)

// Direction returns the side of the piece the collision happened on.
func (c Collision) Direction() Direction {
	switch c {
	case CollisionLeft:
		return DirectionLeft
	case CollisionRight:
		return DirectionRight
	case CollisionUnder:
		return DirectionDown
	default:
		return DirectionNone
	}
}

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionUnder:
		return "under"
	default:
		return "none"
	}
}

// CollisionFor is the collision reported when moving in d runs into something.
func CollisionFor(d Direction) Collision {
	switch d {
	case DirectionLeft:
		return CollisionLeft
	case DirectionRight:
		return CollisionRight
	case DirectionDown:
		return CollisionUnder
	default:
		return CollisionNone
	}
}
