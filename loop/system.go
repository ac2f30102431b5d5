// Package loop drives ordered systems on a fixed tick.
package loop

// System is one step of a tick. Systems run in registration order and may keep
// their own state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
