package board

import (
	"time"

	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/piece"
)

// PieceSource produces the next falling piece for a board of the given width.
type PieceSource interface {
	Next(boardWidth int) piece.Piece
}

// Hooks are optional callbacks fired as pieces and rows change state.
type Hooks struct {
	Spawned       func(p piece.Piece)
	Committed     func(p piece.Piece)
	ClearStarted  func(row int)
	ClearFinished func(row int)
}

// Grid owns a board and the piece currently falling on it. The falling piece
// is never part of board storage until it is committed.
type Grid struct {
	blocks  *Blocks
	current piece.Piece
	source  PieceSource
	hooks   Hooks
}

// NewGrid creates a grid over blocks and spawns its first piece from source.
func NewGrid(blocks *Blocks, source PieceSource, hooks Hooks) *Grid {
	g := &Grid{
		blocks: blocks,
		source: source,
		hooks:  hooks,
	}
	g.spawn()
	return g
}

func (g *Grid) Blocks() *Blocks {
	return g.blocks
}

// Current returns a copy of the falling piece.
func (g *Grid) Current() piece.Piece {
	return g.current
}

// SetCurrent replaces the falling piece.
func (g *Grid) SetCurrent(p piece.Piece) {
	g.current = p
}

func (g *Grid) spawn() {
	g.current = g.source.Next(g.blocks.Width())
	if g.hooks.Spawned != nil {
		g.hooks.Spawned(g.current)
	}
}

// MoveIf tries to translate the falling piece by dir and then rotate it by
// rot. A pose that would fall through the floor or onto a block commits the
// current piece, starts clearing any full rows and spawns the next piece; in
// that case MoveIf returns true. A rotation that hits a wall or block gets a
// single kick of half the piece width away from the collision. A plain
// sideways move that collides does nothing.
func (g *Grid) MoveIf(dir core.Direction, rot core.Rotation) bool {
	candidate := g.current.Moved(dir, rot)

	switch collision := g.blocks.CheckCollision(candidate, dir, rot); collision {
	case core.CollisionUnder:
		g.commitPiece()
		g.clearRowIf()
		g.spawn()
		return true

	case core.CollisionLeft, core.CollisionRight:
		if rot == core.RotationNone {
			return false
		}
		kick := collision.Direction().Opposite()
		for i := 0; i < candidate.Width()/2; i++ {
			candidate.Translate(kick.Offset())
		}
		if g.blocks.CheckCollision(candidate, kick, core.RotationNone) == core.CollisionNone {
			g.current = candidate
		}

	case core.CollisionNone:
		g.current = candidate
	}
	return false
}

// HardDrop moves the falling piece down until it commits.
func (g *Grid) HardDrop() bool {
	for i := 0; i <= g.blocks.Height()+piece.Size; i++ {
		if g.MoveIf(core.DirectionDown, core.RotationNone) {
			return true
		}
	}
	return false
}

// ClearBoard wipes every committed cell. The falling piece is kept.
func (g *Grid) ClearBoard() {
	g.blocks.Clear()
}

// Animate advances the clear animations by one tick of elapsed time.
func (g *Grid) Animate(elapsed time.Duration) {
	g.blocks.Animate(elapsed)
}

// FinishClear removes rows whose clear animation completed.
func (g *Grid) FinishClear() []int {
	rows := g.blocks.FinishClear()
	if g.hooks.ClearFinished != nil {
		for _, row := range rows {
			g.hooks.ClearFinished(row)
		}
	}
	return rows
}

// Cells lists what a renderer should draw: committed cells first, then the
// falling piece.
func (g *Grid) Cells() []core.Cell {
	cells := g.blocks.Cells()
	return append(cells, g.current.Bones[:]...)
}

// commitPiece writes the falling piece into the board unconditionally.
func (g *Grid) commitPiece() {
	for _, bone := range g.current.Bones {
		g.blocks.Set(bone.Coord.ToPos(g.blocks.Width()), bone)
	}
	if g.hooks.Committed != nil {
		g.hooks.Committed(g.current)
	}
}

// clearRowIf scans from the top row down to the lowest row of the committed
// piece. Rows above the piece are included since compaction after an earlier
// clear can fill them.
func (g *Grid) clearRowIf() {
	rows := g.current.Rows()
	last := min(rows[len(rows)-1], g.blocks.Height()-1)

	for row := 0; row <= last; row++ {
		if g.blocks.IsClearing(row) || !g.blocks.RowFull(row) {
			continue
		}
		if g.blocks.StartClear(row) && g.hooks.ClearStarted != nil {
			g.hooks.ClearStarted(row)
		}
	}
}
