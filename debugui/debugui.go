// Package debugui renders Dear ImGui inspector windows for a running game.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrust/loop"
)

// Window renders one ImGui window. Render is called between the backend's
// BeginFrame and EndFrame.
type Window interface {
	Render()
}

// WindowFunc adapts a function to a Window.
type WindowFunc func()

func (f WindowFunc) Render() { f() }

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front ends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System is a loop.System that defers every window's render function to the
// end of the tick and refreshes the input capture state.
type System struct {
	Windows []Window
	Input   InputState
}

func NewSystem(windows ...Window) *System {
	return &System{Windows: windows}
}

// Execute updates input state and queues all window renders.
func (s *System) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range s.Windows {
		frame.Commands.Defer(w.Render)
	}
}
