package game

import (
	"time"

	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/loop"
)

// AnimationSystem advances every clear animation by one frame per tick.
type AnimationSystem struct {
	Grid *board.Grid
}

func (s *AnimationSystem) Execute(frame *loop.UpdateFrame) {
	s.Grid.Animate(frame.Elapsed)
}

// ClearSystem removes rows whose animation completed. It must run before
// GravitySystem so a freed row is compacted before the piece falls into it.
type ClearSystem struct {
	Grid *board.Grid
}

func (s *ClearSystem) Execute(*loop.UpdateFrame) {
	s.Grid.FinishClear()
}

// GravitySystem moves the falling piece down one row every Interval of
// accumulated elapsed time.
type GravitySystem struct {
	Grid     *board.Grid
	Interval time.Duration

	accumulated time.Duration
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.accumulated += frame.Elapsed
	if s.accumulated < s.Interval {
		return
	}
	s.accumulated = 0
	s.Grid.MoveIf(core.DirectionDown, core.RotationNone)
}
