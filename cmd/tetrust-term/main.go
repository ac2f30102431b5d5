package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrust/board"
	"github.com/plus3/tetrust/core"
	"github.com/plus3/tetrust/game"
)

// cellWidth is how many terminal columns a board cell spans.
const cellWidth = 2

type Term struct {
	screen tcell.Screen
	game   *game.Game
	chime  *chime
}

func NewTerm(cfg game.Config, sound bool) (*Term, error) {
	var c *chime
	if sound {
		var err error
		c, err = newChime()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return newTerm(cfg, c, tcell.NewScreen)
}

// newTerm takes ownership of c; it is closed if the terminal cannot start.
func newTerm(cfg game.Config, c *chime, newScreen func() (tcell.Screen, error)) (*Term, error) {
	t := &Term{chime: c}

	g, err := game.New(cfg, game.WithHooks(board.Hooks{
		ClearStarted: func(int) { t.chime.play() },
	}))
	if err != nil {
		c.close()
		return nil, err
	}
	t.game = g

	screen, err := newScreen()
	if err != nil {
		c.close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		c.close()
		return nil, err
	}
	t.screen = screen
	return t, nil
}

func (t *Term) draw() {
	t.screen.Clear()
	cfg := t.game.Config()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y <= cfg.Height; y++ {
		t.screen.SetContent(0, y, '│', nil, border)
		t.screen.SetContent(1+cfg.Width*cellWidth, y, '│', nil, border)
	}
	for x := 0; x < cfg.Width*cellWidth; x++ {
		t.screen.SetContent(1+x, cfg.Height, '─', nil, border)
	}

	for _, cell := range t.game.Cells() {
		style := tcell.StyleDefault.Foreground(termColor(cell.Color))
		for i := range cellWidth {
			t.screen.SetContent(1+cell.Coord.X*cellWidth+i, cell.Coord.Y, '█', nil, style)
		}
	}

	stats := t.game.Stats()
	info := fmt.Sprintf("pieces %d  rows %d", stats.Pieces, stats.RowsCleared)
	for i, r := range info {
		t.screen.SetContent(3+cfg.Width*cellWidth+i, 0, r, nil, tcell.StyleDefault)
	}

	t.screen.Show()
}

func termColor(c core.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func (t *Term) run() {
	ticker := time.NewTicker(t.game.Config().Tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if isQuit(key) {
				return
			}
			if intent, ok := intentFor(key); ok {
				t.game.Apply(intent)
				t.draw()
			}

		case <-ticker.C:
			t.game.Update(t.game.Config().Tick)
			t.draw()
		}
	}
}

func (t *Term) cleanup() {
	t.chime.close()
	t.screen.Fini()
}

func main() {
	defaults := game.DefaultConfig()
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece spawner.")
	tick := flag.Duration("tick", defaults.Tick, "Simulated time per update.")
	sound := flag.Bool("sound", false, "Play a chime when a row starts clearing.")
	flag.Parse()

	cfg := defaults
	cfg.Seed = *seed
	cfg.Tick = *tick

	term, err := NewTerm(cfg, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.cleanup()

	term.run()
}
