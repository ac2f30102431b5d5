package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetrust/debugui"
	debugui_ebiten "github.com/plus3/tetrust/debugui/ebiten"
	"github.com/plus3/tetrust/game"
)

// keyIntents is ordered so keys pressed on the same frame apply in a fixed
// order.
var keyIntents = []struct {
	key    ebiten.Key
	intent game.Intent
}{
	{ebiten.KeyArrowLeft, game.MoveLeft},
	{ebiten.KeyArrowRight, game.MoveRight},
	{ebiten.KeyArrowDown, game.MoveDown},
	{ebiten.KeyArrowUp, game.RotateCW},
	{ebiten.KeyX, game.RotateCW},
	{ebiten.KeyZ, game.RotateCCW},
	{ebiten.KeySpace, game.HardDrop},
	{ebiten.KeyQ, game.ClearBoard},
}

var background = color.RGBA{R: 16, G: 16, B: 24, A: 255}

// App implements ebiten.Game. Each ebiten update is one game tick.
type App struct {
	game     *game.Game
	cellSize int
	// originX shifts the board right of the debug windows.
	originX float32

	ui      *debugui.System
	overlay *debugui_ebiten.Overlay
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.overlay != nil {
		a.overlay.BeginFrame()
		defer a.overlay.EndFrame()
	}

	if a.ui == nil || !a.ui.Input.WantCaptureKeyboard {
		for _, k := range keyIntents {
			if inpututil.IsKeyJustPressed(k.key) {
				a.game.Apply(k.intent)
			}
		}
	}

	a.game.Update(a.game.Config().Tick)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	cfg := a.game.Config()
	size := float32(a.cellSize)

	vector.DrawFilledRect(screen, a.originX, 0, float32(cfg.Width)*size, float32(cfg.Height)*size, background, false)
	for _, cell := range a.game.Cells() {
		x := a.originX + float32(cell.Coord.X)*size
		y := float32(cell.Coord.Y) * size
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, cell.Color.RGBA(), false)
	}

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.Config()
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
		a.originX = float32(max(outsideWidth-cfg.Width*a.cellSize, 0))
		return outsideWidth, outsideHeight
	}
	return cfg.Width * a.cellSize, cfg.Height * a.cellSize
}
