package main

import (
	"math/rand/v2"

	"github.com/plus3/tetrust/game"
)

// applier is satisfied by both *game.Game and *replay.Recorder.
type applier interface {
	Apply(intent game.Intent) bool
}

// AutoPlayer presses random keys between ticks. It never clears the board on
// purpose so stacks grow until rows complete or the board tops out.
type AutoPlayer struct {
	rng      *rand.Rand
	maxMoves int
	intents  []game.Intent
}

func NewAutoPlayer(rng *rand.Rand, maxMoves int) *AutoPlayer {
	intents := make([]game.Intent, 0, len(game.Intents()))
	for _, intent := range game.Intents() {
		if intent != game.ClearBoard {
			intents = append(intents, intent)
		}
	}
	return &AutoPlayer{rng: rng, maxMoves: maxMoves, intents: intents}
}

// Play applies up to maxMoves intents and returns how many it applied.
func (p *AutoPlayer) Play(a applier) int {
	n := p.rng.IntN(p.maxMoves + 1)
	for range n {
		a.Apply(p.intents[p.rng.IntN(len(p.intents))])
	}
	return n
}
