package piece

import (
	"errors"
	"fmt"

	"github.com/plus3/tetrust/core"
)

var (
	ErrBoneCount   = errors.New("layout must mark exactly 4 cells")
	ErrPivotCount  = errors.New("layout has more than one pivot")
	ErrLayoutWidth = errors.New("layout rows differ in width")
)

// Layout is an ascii picture of a piece: 'x' marks a body cell, 'o' the
// pivot cell and anything else is empty. Row 0 is the top.
type Layout []string

// Prototype pairs a layout with the kind and color it is spawned with.
type Prototype struct {
	Kind   Kind
	Color  core.Color
	Layout Layout
}

// Standard are the seven canonical pieces.
var Standard = [NumKinds]Prototype{
	{Kind: I, Color: core.Green, Layout: Layout{
		"----",
		"xoxx",
		"----",
		"----",
	}},
	{Kind: O, Color: core.Aqua, Layout: Layout{
		"-xx-",
		"-xx-",
		"----",
		"----",
	}},
	{Kind: T, Color: core.Blue, Layout: Layout{
		"--x-",
		"-xox",
		"----",
		"----",
	}},
	{Kind: S, Color: core.White, Layout: Layout{
		"--xx",
		"-xo-",
		"----",
		"----",
	}},
	{Kind: Z, Color: core.Pink, Layout: Layout{
		"xx--",
		"-ox-",
		"----",
		"----",
	}},
	{Kind: J, Color: core.Red, Layout: Layout{
		"x---",
		"xox-",
		"----",
		"----",
	}},
	{Kind: L, Color: core.Yellow, Layout: Layout{
		"--x-",
		"xox-",
		"----",
		"----",
	}},
}

// FromLayout builds a piece of the given kind and color from layout.
// Cells are ordered left to right, top to bottom.
func FromLayout(kind Kind, color core.Color, layout Layout) (Piece, error) {
	var bones [Size]core.Cell
	count, pivot := 0, -1

	for y, row := range layout {
		if len(row) != len(layout[0]) {
			return Piece{}, fmt.Errorf("piece %s row %d: %w", kind, y, ErrLayoutWidth)
		}
		for x, c := range row {
			if c != 'x' && c != 'o' {
				continue
			}
			if count == Size {
				return Piece{}, fmt.Errorf("piece %s: %w", kind, ErrBoneCount)
			}
			if c == 'o' {
				if pivot >= 0 {
					return Piece{}, fmt.Errorf("piece %s: %w", kind, ErrPivotCount)
				}
				pivot = count
			}
			bones[count] = core.NewCell(color, core.Coord{X: x, Y: y})
			count++
		}
	}

	if count != Size {
		return Piece{}, fmt.Errorf("piece %s: found %d cells: %w", kind, count, ErrBoneCount)
	}
	return New(kind, bones, pivot), nil
}
