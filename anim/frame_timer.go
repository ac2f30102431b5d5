// Package anim provides a tick-driven frame timer used to pace animations.
//
// A FrameTimer does not read the clock. Callers feed it the elapsed time of
// each logical tick, which keeps animations deterministic and replayable.
package anim

import "time"

// FrameState is the outcome of polling a FrameTimer.
type FrameState uint8

const (
	// Waiting means the pending frame has not elapsed yet.
	Waiting FrameState = iota
	// Ready means a frame boundary was reached.
	Ready
	// Done means every frame has played. It is terminal.
	Done
)

func (s FrameState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Done:
		return "done"
	default:
		return "waiting"
	}
}

// Animatable values change their drawable state on each frame transition.
type Animatable interface {
	Animate(state FrameState)
}

// FrameTimer steps through a sequence of frames. Frame 0 starts once the
// initial delay has passed; every later frame lasts its configured duration.
type FrameTimer struct {
	frames  []time.Duration
	delay   time.Duration
	elapsed time.Duration
	next    int
}

// FromFrames builds a timer with explicit per-frame durations, used for
// irregular effects.
func FromFrames(frames []time.Duration, delay time.Duration) *FrameTimer {
	return &FrameTimer{
		frames: append([]time.Duration(nil), frames...),
		delay:  delay,
	}
}

// EqualSized builds a timer of n frames that all last frame.
func EqualSized(n int, frame, delay time.Duration) *FrameTimer {
	frames := make([]time.Duration, max(n, 0))
	for i := range frames {
		frames[i] = frame
	}
	return &FrameTimer{frames: frames, delay: delay}
}

// Advance adds elapsed to the timer and moves to the next frame when the
// pending one is due. Call it at most once per tick per consumer.
func (t *FrameTimer) Advance(elapsed time.Duration) FrameState {
	if t.IsDone() {
		return Done
	}

	t.elapsed += elapsed
	if t.due() {
		t.next++
		t.elapsed = 0
		return Ready
	}
	return Waiting
}

// Peek classifies the timer like Advance without consuming anything.
func (t *FrameTimer) Peek() FrameState {
	if t.IsDone() {
		return Done
	}
	if t.due() {
		return Ready
	}
	return Waiting
}

func (t *FrameTimer) due() bool {
	if t.next == 0 {
		return t.elapsed > t.delay
	}
	return t.elapsed >= t.frames[t.next]
}

// IsDone reports whether every frame has played.
func (t *FrameTimer) IsDone() bool {
	return t.next == len(t.frames)
}

// Next is the index of the pending frame; it equals Len once done.
func (t *FrameTimer) Next() int {
	return t.next
}

// Len is the number of frames.
func (t *FrameTimer) Len() int {
	return len(t.frames)
}

// Total is the sum of all frame durations plus the initial delay.
func (t *FrameTimer) Total() time.Duration {
	total := t.delay
	for _, f := range t.frames {
		total += f
	}
	return total
}
