// Package piece implements tetrinomes: four colored cells with an optional
// pivot, canonical layouts, and random spawning from an immutable table.
package piece

import (
	"slices"

	"github.com/plus3/tetrust/core"
)

// Size is the number of cells in every piece.
const Size = 4

var (
	rotateCW  = [2][2]int{{0, -1}, {1, 0}}
	rotateCCW = [2][2]int{{0, 1}, {-1, 0}}
)

// Piece is a cluster of exactly Size cells. Translation and rotation move the
// cells but never change how many there are. Piece is a value type; copying
// it yields an independent candidate pose.
type Piece struct {
	Kind  Kind
	Bones [Size]core.Cell

	pivot    int
	hasPivot bool
}

// New builds a piece from explicit cells. pivot is the index of the pivot
// cell, or any negative value for a piece that does not rotate.
func New(kind Kind, bones [Size]core.Cell, pivot int) Piece {
	p := Piece{Kind: kind, Bones: bones}
	if pivot >= 0 && pivot < Size {
		p.pivot = pivot
		p.hasPivot = true
	}
	return p
}

// Pivot returns the cell the piece rotates around.
func (p Piece) Pivot() (core.Cell, bool) {
	if !p.hasPivot {
		return core.Cell{}, false
	}
	return p.Bones[p.pivot], true
}

// Coords returns the coordinate of every cell.
func (p Piece) Coords() [Size]core.Coord {
	var coords [Size]core.Coord
	for i, bone := range p.Bones {
		coords[i] = bone.Coord
	}
	return coords
}

// Shift returns the coordinates the piece would occupy after adding offset,
// without moving it.
func (p Piece) Shift(offset core.Coord) [Size]core.Coord {
	coords := p.Coords()
	for i := range coords {
		coords[i] = coords[i].Add(offset)
	}
	return coords
}

// MoveTo replaces the cell coordinates, keeping their order.
func (p *Piece) MoveTo(coords [Size]core.Coord) {
	for i := range p.Bones {
		p.Bones[i].Coord = coords[i]
	}
}

// Translate moves every cell by offset.
func (p *Piece) Translate(offset core.Coord) {
	p.MoveTo(p.Shift(offset))
}

// Rotate turns the piece a quarter around its pivot. Pieces without a pivot
// and RotationNone are left unchanged.
func (p *Piece) Rotate(rot core.Rotation) {
	if !p.hasPivot {
		return
	}

	var m [2][2]int
	switch rot {
	case core.RotationCW:
		m = rotateCW
	case core.RotationCCW:
		m = rotateCCW
	default:
		return
	}

	pivot := p.Bones[p.pivot].Coord
	for i := range p.Bones {
		d := p.Bones[i].Coord.Sub(pivot)
		p.Bones[i].Coord = pivot.Add(core.Coord{
			X: m[0][0]*d.X + m[0][1]*d.Y,
			Y: m[1][0]*d.X + m[1][1]*d.Y,
		})
	}
}

// Moved returns a copy of p translated by dir and then rotated by rot.
func (p Piece) Moved(dir core.Direction, rot core.Rotation) Piece {
	p.Translate(dir.Offset())
	p.Rotate(rot)
	return p
}

// Width is the horizontal extent of the piece in cells.
func (p Piece) Width() int {
	minX, maxX := p.Bones[0].Coord.X, p.Bones[0].Coord.X
	for _, bone := range p.Bones[1:] {
		minX = min(minX, bone.Coord.X)
		maxX = max(maxX, bone.Coord.X)
	}
	return maxX - minX + 1
}

// Rows returns the distinct rows the piece occupies in ascending order.
func (p Piece) Rows() []int {
	rows := make([]int, 0, Size)
	for _, bone := range p.Bones {
		rows = append(rows, bone.Coord.Y)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}
