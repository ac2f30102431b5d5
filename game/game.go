// Package game ties a board to a fixed-tick scheduler and player intents.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/loop"
	"github.com/plus3/tetrust/piece"
)

type Option func(*options)

type options struct {
	source board.PieceSource
	hooks  board.Hooks
}

// WithSource replaces the seeded random spawner.
func WithSource(source board.PieceSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithHooks registers callbacks that fire after the game has updated its own
// stats.
func WithHooks(hooks board.Hooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// Game is a single session. It is not safe for concurrent use; the driver
// calls Update and Apply from one goroutine.
type Game struct {
	cfg       Config
	grid      *board.Grid
	scheduler *loop.Scheduler
	stats     *Stats
}

// New validates cfg and spawns the first piece.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = piece.NewSpawner(piece.StandardTable(), rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))
	}

	g := &Game{
		cfg:       cfg,
		scheduler: loop.NewScheduler(),
		stats:     newStats(),
	}

	blocks := board.NewBlocks(cfg.Width, cfg.Height, board.WithClearTiming(cfg.ClearFrame, cfg.ClearDuration))
	g.grid = board.NewGrid(blocks, o.source, g.statsHooks(o.hooks))

	g.scheduler.Register(&AnimationSystem{Grid: g.grid})
	g.scheduler.Register(&ClearSystem{Grid: g.grid})
	g.scheduler.Register(&GravitySystem{Grid: g.grid, Interval: cfg.FallInterval()})
	return g, nil
}

func (g *Game) statsHooks(user board.Hooks) board.Hooks {
	return board.Hooks{
		Spawned: func(p piece.Piece) {
			g.stats.spawned(p.Kind)
			if user.Spawned != nil {
				user.Spawned(p)
			}
		},
		Committed: func(p piece.Piece) {
			g.stats.Pieces++
			if user.Committed != nil {
				user.Committed(p)
			}
		},
		ClearStarted: user.ClearStarted,
		ClearFinished: func(row int) {
			g.stats.RowsCleared++
			if user.ClearFinished != nil {
				user.ClearFinished(row)
			}
		},
	}
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Grid() *board.Grid {
	return g.grid
}

// RegisterSystem appends a system that runs after the built-in ones.
func (g *Game) RegisterSystem(system loop.System) {
	g.scheduler.Register(system)
}

// Update runs one tick covering elapsed simulated time.
func (g *Game) Update(elapsed time.Duration) {
	g.scheduler.Once(elapsed)
}

func (g *Game) Ticks() uint64 {
	return g.scheduler.Ticks()
}

// Apply executes an intent immediately. It reports whether the falling piece
// was committed.
func (g *Game) Apply(intent Intent) bool {
	switch intent {
	case MoveLeft:
		return g.grid.MoveIf(core.DirectionLeft, core.RotationNone)
	case MoveRight:
		return g.grid.MoveIf(core.DirectionRight, core.RotationNone)
	case MoveDown:
		return g.grid.MoveIf(core.DirectionDown, core.RotationNone)
	case RotateCW:
		return g.grid.MoveIf(core.DirectionNone, core.RotationCW)
	case RotateCCW:
		return g.grid.MoveIf(core.DirectionNone, core.RotationCCW)
	case HardDrop:
		return g.grid.HardDrop()
	case ClearBoard:
		g.grid.ClearBoard()
	}
	return false
}

// Cells lists what to draw this frame.
func (g *Game) Cells() []core.Cell {
	return g.grid.Cells()
}

func (g *Game) Stats() *Stats {
	g.stats.Ticks = g.scheduler.Ticks()
	return g.stats
}

func (g *Game) SchedulerStats() *loop.SchedulerStats {
	return g.scheduler.Stats()
}
