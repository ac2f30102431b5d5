package board_test

import (
	"testing"

	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/piece"
	"github.com/stretchr/testify/require"
)

const (
	width  = 10
	height = 20
)

// script hands out queued pieces, then repeats its fallback.
type script struct {
	pieces   []piece.Piece
	fallback piece.Piece
	served   int
}

func (s *script) Next(int) piece.Piece {
	s.served++
	if len(s.pieces) == 0 {
		return s.fallback
	}
	p := s.pieces[0]
	s.pieces = s.pieces[1:]
	return p
}

func (s *script) push(pieces ...piece.Piece) {
	s.pieces = append(s.pieces, pieces...)
}

func prototype(t *testing.T, kind piece.Kind) piece.Piece {
	t.Helper()
	p, ok := piece.StandardTable().Lookup(kind)
	require.True(t, ok)
	return p
}

// placed returns the prototype of kind rotated by rot, then shifted by offset.
func placed(t *testing.T, kind piece.Kind, rot core.Rotation, offset core.Coord) piece.Piece {
	t.Helper()
	p := prototype(t, kind)
	p.Rotate(rot)
	p.Translate(offset)
	return p
}

func fillRow(b interface {
	Set(core.Pos, core.Cell)
	Width() int
}, row int, skip ...int) {
	skipped := map[int]bool{}
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if skipped[x] {
			continue
		}
		c := core.Coord{X: x, Y: row}
		b.Set(c.ToPos(b.Width()), core.NewCell(core.Red, c))
	}
}

func rowCells(cells []core.Cell, row int) []int {
	var xs []int
	for _, c := range cells {
		if c.Coord.Y == row {
			xs = append(xs, c.Coord.X)
		}
	}
	return xs
}
