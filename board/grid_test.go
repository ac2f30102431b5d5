package board_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	spawned  []piece.Piece
	commits  []piece.Piece
	started  []int
	finished []int
}

func (r *recorder) hooks() board.Hooks {
	return board.Hooks{
		Spawned:       func(p piece.Piece) { r.spawned = append(r.spawned, p) },
		Committed:     func(p piece.Piece) { r.commits = append(r.commits, p) },
		ClearStarted:  func(row int) { r.started = append(r.started, row) },
		ClearFinished: func(row int) { r.finished = append(r.finished, row) },
	}
}

func newGrid(t *testing.T, src *script, opts ...board.Option) (*board.Grid, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := board.NewGrid(board.NewBlocks(width, height, opts...), src, rec.hooks())
	require.Len(t, rec.spawned, 1)
	return g, rec
}

func TestMoveIfTranslates(t *testing.T) {
	src := &script{fallback: placed(t, piece.T, core.RotationNone, core.Coord{X: 4})}
	g, _ := newGrid(t, src)
	start := g.Current()

	assert.False(t, g.MoveIf(core.DirectionLeft, core.RotationNone))
	assert.Equal(t, start.Shift(core.Coord{X: -1}), g.Current().Coords())

	assert.False(t, g.MoveIf(core.DirectionRight, core.RotationNone))
	assert.False(t, g.MoveIf(core.DirectionDown, core.RotationNone))
	assert.Equal(t, start.Shift(core.Coord{Y: 1}), g.Current().Coords())
}

func TestSidewaysCollisionIsNoop(t *testing.T) {
	src := &script{fallback: placed(t, piece.O, core.RotationNone, core.Coord{X: -1})}
	g, _ := newGrid(t, src)
	start := g.Current()

	assert.False(t, g.MoveIf(core.DirectionLeft, core.RotationNone))
	assert.Equal(t, start, g.Current())

	block := core.Coord{X: 2, Y: 0}
	g.Blocks().Set(block.ToPos(width), core.NewCell(core.Red, block))
	assert.False(t, g.MoveIf(core.DirectionRight, core.RotationNone))
	assert.Equal(t, start, g.Current())
}

func TestSoftDropCommitsAtBottom(t *testing.T) {
	o := placed(t, piece.O, core.RotationNone, core.Coord{X: 4})
	next := placed(t, piece.T, core.RotationNone, core.Coord{X: 4})
	src := &script{pieces: []piece.Piece{o}, fallback: next}
	g, rec := newGrid(t, src)

	moves := 0
	for !g.MoveIf(core.DirectionDown, core.RotationNone) {
		moves++
		require.Less(t, moves, height, "piece never committed")
	}

	assert.Equal(t, height-2, moves)
	require.Len(t, rec.commits, 1)
	assert.Equal(t, 4, g.Blocks().Len())
	assert.Equal(t, []int{5, 6}, rowCells(g.Blocks().Cells(), height-1))
	assert.Equal(t, []int{5, 6}, rowCells(g.Blocks().Cells(), height-2))
	assert.Equal(t, next, g.Current(), "a new piece is spawned after the commit")

	g.ClearBoard()
	assert.Equal(t, 0, g.Blocks().Len())
	assert.Empty(t, g.Blocks().Cells())
	assert.Equal(t, next, g.Current())
	assert.Len(t, rec.spawned, 2)
}

func TestHardDrop(t *testing.T) {
	src := &script{fallback: placed(t, piece.I, core.RotationNone, core.Coord{X: 3})}
	g, rec := newGrid(t, src)

	assert.True(t, g.HardDrop())
	assert.Equal(t, []int{3, 4, 5, 6}, rowCells(g.Blocks().Cells(), height-1))

	assert.True(t, g.HardDrop())
	assert.Equal(t, []int{3, 4, 5, 6}, rowCells(g.Blocks().Cells(), height-2))
	assert.Len(t, rec.commits, 2)
}

func TestCellsIncludeCurrentPiece(t *testing.T) {
	src := &script{fallback: placed(t, piece.I, core.RotationNone, core.Coord{X: 3})}
	g, _ := newGrid(t, src)
	g.HardDrop()

	cells := g.Cells()
	cur := g.Current()
	require.Len(t, cells, 2*piece.Size)
	assert.Equal(t, g.Blocks().Cells(), cells[:piece.Size])
	assert.Equal(t, cur.Bones[:], cells[piece.Size:])
}

func TestLineClearEndToEnd(t *testing.T) {
	vertical := func(x int) piece.Piece {
		// the clockwise I occupies column 1 of its layout
		return placed(t, piece.I, core.RotationCW, core.Coord{X: x - 1})
	}
	src := &script{fallback: placed(t, piece.O, core.RotationNone, core.Coord{X: -1})}
	src.push(
		placed(t, piece.I, core.RotationNone, core.Coord{X: 0}),
		placed(t, piece.I, core.RotationNone, core.Coord{X: 4}),
		vertical(8),
		vertical(9),
	)
	g, rec := newGrid(t, src)

	for drop := 0; drop < 3; drop++ {
		require.True(t, g.HardDrop())
		assert.Empty(t, rec.started, "drop %d", drop)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, rowCells(g.Blocks().Cells(), height-1))

	require.True(t, g.HardDrop())
	assert.Equal(t, []int{height - 1}, rec.started)
	assert.Equal(t, []int{height - 1}, g.Blocks().Clearing())

	// committing on top of the animating row does not restart its clear
	require.True(t, g.HardDrop())
	assert.Equal(t, []int{height - 1}, rec.started)

	ticks := int(board.DefaultClearDuration / board.DefaultClearFrame)
	for tick := 1; tick < ticks; tick++ {
		g.Animate(board.DefaultClearFrame)
		require.Empty(t, g.FinishClear(), "tick %d", tick)
		require.True(t, g.Blocks().RowFull(height-1), "tick %d", tick)
	}
	g.Animate(board.DefaultClearFrame)
	assert.Equal(t, []int{height - 1}, g.FinishClear())
	assert.Equal(t, []int{height - 1}, rec.finished)
	assert.Empty(t, g.Blocks().Clearing())

	cells := g.Blocks().Cells()
	assert.Equal(t, []int{0, 1, 8, 9}, rowCells(cells, height-1))
	assert.Equal(t, []int{0, 1, 8, 9}, rowCells(cells, height-2))
	assert.Equal(t, []int{8, 9}, rowCells(cells, height-3))
	assert.Empty(t, rowCells(cells, height-4))
}

func TestWallKick(t *testing.T) {
	vertical := placed(t, piece.I, core.RotationCW, core.Coord{X: -1, Y: 5})
	require.Equal(t, [piece.Size]core.Coord{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 7}, {X: 0, Y: 8}}, vertical.Coords())

	t.Run("kicked pose is accepted", func(t *testing.T) {
		g, _ := newGrid(t, &script{fallback: vertical})

		assert.False(t, g.MoveIf(core.DirectionNone, core.RotationCW))
		assert.Equal(t, [piece.Size]core.Coord{{X: 3, Y: 6}, {X: 2, Y: 6}, {X: 1, Y: 6}, {X: 0, Y: 6}}, g.Current().Coords())
	})

	t.Run("blocked kick discards the rotation", func(t *testing.T) {
		g, _ := newGrid(t, &script{fallback: vertical})
		blocker := core.Coord{X: 3, Y: 6}
		g.Blocks().Set(blocker.ToPos(width), core.NewCell(core.Red, blocker))

		assert.False(t, g.MoveIf(core.DirectionNone, core.RotationCW))
		assert.Equal(t, vertical, g.Current())
	})

	t.Run("kick away from the right wall", func(t *testing.T) {
		right := placed(t, piece.I, core.RotationCW, core.Coord{X: width - 2, Y: 5})
		g, _ := newGrid(t, &script{fallback: right})

		assert.False(t, g.MoveIf(core.DirectionNone, core.RotationCCW))
		for _, c := range g.Current().Coords() {
			assert.Equal(t, 6, c.Y)
			assert.Less(t, c.X, width)
		}
		assert.Equal(t, width-4, g.Current().Coords()[0].X)
	})

	t.Run("kick away from a block", func(t *testing.T) {
		start := placed(t, piece.I, core.RotationCW, core.Coord{X: 3, Y: 5})
		g, _ := newGrid(t, &script{fallback: start})
		blocker := core.Coord{X: 3, Y: 6}
		g.Blocks().Set(blocker.ToPos(width), core.NewCell(core.Red, blocker))

		assert.False(t, g.MoveIf(core.DirectionNone, core.RotationCCW))
		assert.Equal(t, [piece.Size]core.Coord{{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 7, Y: 6}, {X: 8, Y: 6}}, g.Current().Coords())
	})
}

func TestRotationWithoutCollision(t *testing.T) {
	start := placed(t, piece.T, core.RotationNone, core.Coord{X: 4, Y: 4})
	g, _ := newGrid(t, &script{fallback: start})

	g.MoveIf(core.DirectionNone, core.RotationCW)
	g.MoveIf(core.DirectionNone, core.RotationCCW)
	assert.Equal(t, start, g.Current())
}

func TestClearBoardAbandonsClears(t *testing.T) {
	g, rec := newGrid(t, &script{fallback: placed(t, piece.I, core.RotationNone, core.Coord{X: 3})}, board.WithClearTiming(time.Millisecond, time.Millisecond))
	fillRow(g.Blocks(), height-1)
	g.Blocks().StartClear(height - 1)

	g.ClearBoard()
	g.Animate(time.Millisecond)
	assert.Empty(t, g.FinishClear())
	assert.Empty(t, rec.finished)
	assert.Equal(t, 0, g.Blocks().Len())
}

func TestSetCurrentReplacesFallingPiece(t *testing.T) {
	g, rec := newGrid(t, &script{fallback: placed(t, piece.O, core.RotationNone, core.Coord{X: 4})})
	replacement := placed(t, piece.I, core.RotationNone, core.Coord{X: 3})

	g.SetCurrent(replacement)
	assert.Equal(t, replacement, g.Current())
	assert.Len(t, rec.spawned, 1, "replacing the piece is not a spawn")

	require.True(t, g.HardDrop())
	assert.Equal(t, []int{3, 4, 5, 6}, rowCells(g.Blocks().Cells(), height-1))
	require.Len(t, rec.commits, 1)
	assert.Equal(t, piece.I, rec.commits[0].Kind)
}
