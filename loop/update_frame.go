package loop

import "time"

type UpdateFrame struct {
	// Elapsed is the simulated time covered by this tick.
	Elapsed  time.Duration
	Tick     uint64
	Commands *Commands
}

func newUpdateFrame(elapsed time.Duration, tick uint64) *UpdateFrame {
	return &UpdateFrame{
		Elapsed:  elapsed,
		Tick:     tick,
		Commands: newCommands(),
	}
}
