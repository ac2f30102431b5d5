package replay

import (
	"slices"

	"github.com/plus3/tetrust/game"
)

// Recorder forwards intents and ticks to a game while logging the intents.
type Recorder struct {
	game    *game.Game
	entries []Entry
}

func NewRecorder(g *game.Game) *Recorder {
	return &Recorder{game: g}
}

func (r *Recorder) Game() *game.Game {
	return r.game
}

func (r *Recorder) Apply(intent game.Intent) bool {
	r.entries = append(r.entries, Entry{Tick: r.game.Ticks(), Intent: intent})
	return r.game.Apply(intent)
}

// Update runs one tick of the game's configured length, the same tick a
// replay feeds.
func (r *Recorder) Update() {
	r.game.Update(r.game.Config().Tick)
}

// Log returns a snapshot of the session so far.
func (r *Recorder) Log() Log {
	return Log{
		Config:  r.game.Config(),
		Ticks:   r.game.Ticks(),
		Entries: slices.Clone(r.entries),
	}
}
