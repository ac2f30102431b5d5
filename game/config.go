package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/piece"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the fixed parameters of a session. Two games built from equal
// configs and fed the same intents on the same ticks end in the same state.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Tick is the elapsed time fed to every update.
	Tick time.Duration `yaml:"tick"`
	// FallEvery is the gravity period in ticks.
	FallEvery int `yaml:"fall_every"`

	ClearFrame    time.Duration `yaml:"clear_frame"`
	ClearDuration time.Duration `yaml:"clear_duration"`

	Seed uint64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        20,
		Tick:          time.Second / 16,
		FallEvery:     10,
		ClearFrame:    board.DefaultClearFrame,
		ClearDuration: board.DefaultClearDuration,
	}
}

// FallInterval is the simulated time between two gravity steps.
func (c Config) FallInterval() time.Duration {
	return time.Duration(c.FallEvery) * c.Tick
}

// Validate reports the first problem with c, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width < 2*piece.Size+1:
		return fmt.Errorf("%w: width %d is narrower than %d", ErrInvalidConfig, c.Width, 2*piece.Size+1)
	case c.Height < piece.Size:
		return fmt.Errorf("%w: height %d is shorter than %d", ErrInvalidConfig, c.Height, piece.Size)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalidConfig, c.Tick)
	case c.FallEvery <= 0:
		return fmt.Errorf("%w: fall_every must be positive, got %d", ErrInvalidConfig, c.FallEvery)
	case c.ClearFrame <= 0:
		return fmt.Errorf("%w: clear_frame must be positive, got %v", ErrInvalidConfig, c.ClearFrame)
	case c.ClearDuration < c.ClearFrame:
		return fmt.Errorf("%w: clear_duration %v is shorter than clear_frame %v", ErrInvalidConfig, c.ClearDuration, c.ClearFrame)
	}
	return nil
}
