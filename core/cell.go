package core

// Cell is one colored unit square, either part of a falling piece or committed
// to the board. It is a plain value with no identity beyond its coordinate.
type Cell struct {
	Color Color
	Coord Coord
}

// NewCell builds a cell of the given color at coord.
func NewCell(color Color, coord Coord) Cell {
	return Cell{Color: color, Coord: coord}
}
