package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays a short tone when a row starts clearing.
type chime struct {
	enabled  bool
	shutdown func()
}

func newChime() (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &chime{}, err
	}
	return &chime{enabled: true, shutdown: speaker.Close}, nil
}

func (c *chime) play() {
	if c == nil || !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

// close releases the speaker. It is safe to call more than once.
func (c *chime) close() {
	if c == nil || !c.enabled {
		return
	}
	c.enabled = false
	c.shutdown()
}
