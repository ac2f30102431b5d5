// Package board implements the playfield: a flat array of committed cells,
// collision checks for candidate piece poses, and the animated line clear
// that removes full rows and compacts the rows above them.
package board

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrust/anim"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/piece"
)

const (
	DefaultClearFrame    = 50 * time.Millisecond
	DefaultClearDuration = time.Second
)

// Block is a committed cell. Timer is only set while the block's row plays
// its clear animation.
type Block struct {
	Cell  core.Cell
	Timer *anim.FrameTimer
}

var _ anim.Animatable = (*Block)(nil)

// Animate advances the block color one step around the cycle on every Ready frame.
func (b *Block) Animate(state anim.FrameState) {
	if state == anim.Ready {
		b.Cell.Color = b.Cell.Color.Next()
	}
}

// Option configures Blocks.
type Option func(*Blocks)

// WithClearTiming sets the per-frame duration and total length of the line
// clear animation.
func WithClearTiming(frame, total time.Duration) Option {
	return func(b *Blocks) {
		b.clearFrame = frame
		b.clearDuration = total
	}
}

// Blocks stores the committed cells of a board. Rows in their clear animation
// are tracked in a FIFO queue in the order their animation started.
type Blocks struct {
	width, height int
	data          []*Block

	clearing []int
	queued   *intmap.Map[int, struct{}]

	clearFrame    time.Duration
	clearDuration time.Duration
}

// NewBlocks creates an empty board of width x height cells.
func NewBlocks(width, height int, opts ...Option) *Blocks {
	b := &Blocks{
		width:         width,
		height:        height,
		data:          make([]*Block, width*height),
		queued:        intmap.New[int, struct{}](height),
		clearFrame:    DefaultClearFrame,
		clearDuration: DefaultClearDuration,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Blocks) Width() int  { return b.width }
func (b *Blocks) Height() int { return b.height }

func (b *Blocks) inRange(pos core.Pos) bool {
	return pos.Valid() && int(pos) < len(b.data)
}

// Set writes cell at pos, replacing whatever was there. Negative positions are
// skipped.
func (b *Blocks) Set(pos core.Pos, cell core.Cell) {
	if !b.inRange(pos) {
		return
	}
	b.data[pos] = &Block{Cell: cell}
}

// Block returns the block at pos, or nil if the slot is empty or pos is not
// on the board.
func (b *Blocks) Block(pos core.Pos) *Block {
	if !b.inRange(pos) {
		return nil
	}
	return b.data[pos]
}

// At returns the cell stored at pos.
func (b *Blocks) At(pos core.Pos) (core.Cell, bool) {
	block := b.Block(pos)
	if block == nil {
		return core.Cell{}, false
	}
	return block.Cell, true
}

// Occupied reports whether a committed cell sits at c.
func (b *Blocks) Occupied(c core.Coord) bool {
	return b.Block(c.ToPos(b.width)) != nil
}

// Clear empties the board. In-flight clear animations are abandoned.
func (b *Blocks) Clear() {
	clear(b.data)
	b.clearing = b.clearing[:0]
	b.queued.Clear()
}

// Len is the number of committed cells.
func (b *Blocks) Len() int {
	n := 0
	for _, block := range b.data {
		if block != nil {
			n++
		}
	}
	return n
}

// Cells returns a snapshot of every committed cell, animating cells carrying
// their current wave color.
func (b *Blocks) Cells() []core.Cell {
	cells := make([]core.Cell, 0, len(b.data))
	for _, block := range b.data {
		if block != nil {
			cells = append(cells, block.Cell)
		}
	}
	return cells
}

func (b *Blocks) row(row int) []*Block {
	if row < 0 || row >= b.height {
		return nil
	}
	start := row * b.width
	return b.data[start : start+b.width]
}

// RowFull reports whether every slot of row is occupied.
func (b *Blocks) RowFull(row int) bool {
	blocks := b.row(row)
	if blocks == nil {
		return false
	}
	for _, block := range blocks {
		if block == nil {
			return false
		}
	}
	return true
}

// ClearRow empties every slot of row.
func (b *Blocks) ClearRow(row int) {
	clear(b.row(row))
}

// IsClearing reports whether row is waiting in the clear queue.
func (b *Blocks) IsClearing(row int) bool {
	_, ok := b.queued.Get(row)
	return ok
}

// Clearing returns the clear queue, oldest first.
func (b *Blocks) Clearing() []int {
	return append([]int(nil), b.clearing...)
}

// StartClear attaches a wave animation to every block of row that has none
// yet and enqueues the row. Each block starts from the color at its column so
// the wave sweeps left to right while all blocks finish together. A row that
// is already queued is left alone and false is returned.
func (b *Blocks) StartClear(row int) bool {
	blocks := b.row(row)
	if blocks == nil || b.IsClearing(row) {
		return false
	}

	frames := int(b.clearDuration / b.clearFrame)
	for x, block := range blocks {
		if block == nil || block.Timer != nil {
			continue
		}
		block.Cell.Color = core.ColorAt(x)
		block.Timer = anim.EqualSized(frames, b.clearFrame, 0)
	}

	b.clearing = append(b.clearing, row)
	b.queued.Put(row, struct{}{})
	return true
}

// RowReady reports whether every animating block of row has finished. It
// peeks at the timers and never consumes a frame.
func (b *Blocks) RowReady(row int) bool {
	for _, block := range b.row(row) {
		if block != nil && block.Timer != nil && block.Timer.Peek() != anim.Done {
			return false
		}
	}
	return true
}

// Animate advances every active clear timer by elapsed, once.
func (b *Blocks) Animate(elapsed time.Duration) {
	for _, block := range b.data {
		if block != nil && block.Timer != nil {
			block.Animate(block.Timer.Advance(elapsed))
		}
	}
}

// FinishClear removes every queued row whose animation is done, compacting
// the rows above each one down by a row. It returns the removed rows in
// queue order.
func (b *Blocks) FinishClear() []int {
	var cleared []int

	for i := 0; i < len(b.clearing); {
		row := b.clearing[i]
		if !b.RowReady(row) {
			i++
			continue
		}

		b.ClearRow(row)
		b.dequeue(i)
		for upper := row - 1; upper >= 0; upper-- {
			// an empty row means nothing above it needs to fall
			if b.DropRowDown(upper) == 0 {
				break
			}
		}
		cleared = append(cleared, row)
	}

	return cleared
}

func (b *Blocks) dequeue(i int) {
	b.queued.Del(b.clearing[i])
	b.clearing = append(b.clearing[:i], b.clearing[i+1:]...)
}

// DropRowDown moves every block of row one row down and returns how many
// moved. A queued row that moves keeps its place in the queue under its new
// index.
func (b *Blocks) DropRowDown(row int) int {
	if row < 0 || row >= b.height-1 {
		return 0
	}

	count := 0
	start := row * b.width
	for x := 0; x < b.width; x++ {
		block := b.data[start+x]
		if block == nil {
			continue
		}
		block.Cell.Coord.Y++
		b.data[start+x] = nil
		b.data[start+x+b.width] = block
		count++
	}

	if count > 0 && b.IsClearing(row) {
		for i, queued := range b.clearing {
			if queued == row {
				b.clearing[i] = row + 1
			}
		}
		b.queued.Del(row)
		b.queued.Put(row+1, struct{}{})
	}
	return count
}

// CheckCollision tests a candidate pose cell by cell and returns the first
// conflict. Bounds are checked before occupancy. When a cell lands on a
// committed block the result depends on the attempted move: dir if there is
// one, otherwise the side the rotation sweeps towards.
func (b *Blocks) CheckCollision(p piece.Piece, dir core.Direction, rot core.Rotation) core.Collision {
	for _, coord := range p.Coords() {
		switch {
		case coord.X < 0:
			return core.CollisionLeft
		case coord.X >= b.width:
			return core.CollisionRight
		case coord.Y >= b.height:
			return core.CollisionUnder
		}

		if !b.Occupied(coord) {
			continue
		}
		if dir != core.DirectionNone {
			return core.CollisionFor(dir)
		}
		switch rot.Direction() {
		case core.DirectionLeft:
			return core.CollisionLeft
		case core.DirectionRight:
			return core.CollisionRight
		default:
			return core.CollisionNone
		}
	}
	return core.CollisionNone
}
