// Package ebiten draws the debug windows on top of an Ebiten game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame before
// the game tick that renders the windows, EndFrame after it, and Draw last in
// the game's Draw.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend and its window. It replaces
// ebiten.SetWindowSize and ebiten.SetWindowTitle.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}
