package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrust/game"
)

var keyIntents = map[tcell.Key]game.Intent{
	tcell.KeyLeft:  game.MoveLeft,
	tcell.KeyRight: game.MoveRight,
	tcell.KeyDown:  game.MoveDown,
	tcell.KeyUp:    game.RotateCW,
}

var runeIntents = map[rune]game.Intent{
	'h': game.MoveLeft,
	'l': game.MoveRight,
	'j': game.MoveDown,
	'k': game.RotateCW,
	'x': game.RotateCW,
	'z': game.RotateCCW,
	' ': game.HardDrop,
	'q': game.ClearBoard,
}

// intentFor maps a key press to a game intent.
func intentFor(ev *tcell.EventKey) (game.Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		intent, ok := runeIntents[ev.Rune()]
		return intent, ok
	}
	intent, ok := keyIntents[ev.Key()]
	return intent, ok
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
