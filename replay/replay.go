package replay

import (
	"fmt"

	"github.com/plus3/tetrust/game"
)

// Replay builds a new game from the log's config and plays the log into it.
func Replay(l Log, opts ...game.Option) (*game.Game, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g, err := game.New(l.Config, opts...)
	if err != nil {
		return nil, err
	}
	return g, Play(g, l)
}

// Play feeds the log into a game that has not been updated yet. Intents of
// tick t are applied before update t; those recorded after the last update
// are applied at the end.
func Play(g *game.Game, l Log) error {
	if g.Config() != l.Config {
		return fmt.Errorf("%w: %+v != %+v", ErrConfigMismatch, g.Config(), l.Config)
	}
	if g.Ticks() != 0 {
		return fmt.Errorf("%w: game already ran %d ticks", ErrConfigMismatch, g.Ticks())
	}

	next := 0
	applyUpTo := func(tick uint64) {
		for next < len(l.Entries) && l.Entries[next].Tick == tick {
			g.Apply(l.Entries[next].Intent)
			next++
		}
	}

	for tick := uint64(0); tick < l.Ticks; tick++ {
		applyUpTo(tick)
		g.Update(l.Config.Tick)
	}
	applyUpTo(l.Ticks)

	if next != len(l.Entries) {
		return fmt.Errorf("%w: %d entries were not replayed", ErrMalformedLog, len(l.Entries)-next)
	}
	return nil
}
