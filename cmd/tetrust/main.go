package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrust/debugui"
	debugui_ebiten "github.com/plus3/tetrust/debugui/ebiten"
	"github.com/plus3/tetrust/game"
)

const title = "tetrust"

func main() {
	defaults := game.DefaultConfig()
	cellSize := flag.Int("cell", 32, "Size of a board cell in pixels.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece spawner.")
	tick := flag.Duration("tick", defaults.Tick, "Simulated time per update.")
	fallEvery := flag.Int("fall-every", defaults.FallEvery, "Ticks between gravity steps.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	cfg := defaults
	cfg.Seed = *seed
	cfg.Tick = *tick
	cfg.FallEvery = *fallEvery

	session, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	app := &App{
		game:     session,
		cellSize: *cellSize,
	}

	width, height := cfg.Width*app.cellSize, cfg.Height*app.cellSize
	if *debug {
		app.overlay = debugui_ebiten.NewOverlay(title, width*3, height)
		stats := debugui.NewPerformanceStats(session, 120)
		session.RegisterSystem(stats)
		app.ui = debugui.NewSystem(debugui.NewBoardInspector(session), stats)
		session.RegisterSystem(app.ui)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(int(time.Second / cfg.Tick))

	log.Printf("Starting %s with seed %d...\n", title, cfg.Seed)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}

	stats := session.Stats()
	log.Printf("Played %d ticks, %d pieces, %d rows cleared.\n", stats.Ticks, stats.Pieces, stats.RowsCleared)
}
