// Package core holds the grid primitives shared by the board and its pieces:
// coordinates, flat indices, movement enums and colored cells.
package core

// Coord is a grid-relative position. Arithmetic is componentwise and never clamped.
type Coord struct {
	X, Y int
}

// Add returns the componentwise sum of c and other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the componentwise difference of c and other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// ToPos converts c into an index of a flat array that is width cells wide.
func (c Coord) ToPos(width int) Pos {
	return Pos(c.X + c.Y*width)
}

// Pos is a linear index into a board's flat cell array.
// Negative values mean "no index".
type Pos int

// NoPos is the sentinel returned when there is no valid index.
const NoPos Pos = -1

// Valid reports whether p can be used as an index at all.
func (p Pos) Valid() bool {
	return p >= 0
}

// ToCoord converts p back into a Coord for a board that is width cells wide.
func (p Pos) ToCoord(width int) Coord {
	return Coord{X: int(p) % width, Y: int(p) / width}
}
