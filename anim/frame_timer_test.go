package anim_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrust/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualSizedProgression(t *testing.T) {
	const frame = 50 * time.Millisecond
	timer := anim.EqualSized(20, frame, 0)
	require.Equal(t, 20, timer.Len())

	ready := 0
	for tick := 0; tick < 20; tick++ {
		state := timer.Advance(frame)
		assert.Equal(t, anim.Ready, state, "tick %d", tick)
		ready++
	}

	assert.Equal(t, 20, ready)
	assert.True(t, timer.IsDone())
	assert.Equal(t, anim.Done, timer.Peek())
	assert.Equal(t, anim.Done, timer.Advance(frame))
	assert.Equal(t, 20, timer.Next())
}

func TestAdvanceWaitsForFrameDuration(t *testing.T) {
	timer := anim.EqualSized(3, 100*time.Millisecond, 0)

	assert.Equal(t, anim.Ready, timer.Advance(10*time.Millisecond), "frame 0 starts once the delay passed")
	assert.Equal(t, anim.Waiting, timer.Advance(40*time.Millisecond))
	assert.Equal(t, anim.Waiting, timer.Advance(40*time.Millisecond))
	assert.Equal(t, anim.Ready, timer.Advance(20*time.Millisecond), "100ms reached exactly")
	assert.Equal(t, 2, timer.Next())
	assert.Equal(t, anim.Ready, timer.Advance(150*time.Millisecond))
	assert.Equal(t, anim.Done, timer.Peek())
}

func TestInitialDelay(t *testing.T) {
	timer := anim.EqualSized(2, 10*time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, anim.Waiting, timer.Advance(50*time.Millisecond))
	assert.Equal(t, anim.Waiting, timer.Advance(50*time.Millisecond), "delay must be exceeded, not reached")
	assert.Equal(t, anim.Ready, timer.Advance(1*time.Millisecond))
	assert.Equal(t, 1, timer.Next())
}

func TestPeekDoesNotConsume(t *testing.T) {
	timer := anim.EqualSized(2, 10*time.Millisecond, 0)

	assert.Equal(t, anim.Waiting, timer.Peek())
	timer.Advance(5 * time.Millisecond)
	assert.Equal(t, 1, timer.Next())

	timer.Advance(10 * time.Millisecond)
	assert.Equal(t, anim.Done, timer.Peek())
	assert.Equal(t, anim.Done, timer.Peek())
	assert.Equal(t, 2, timer.Next())
}

func TestPeekTracksAccumulatedTime(t *testing.T) {
	timer := anim.EqualSized(3, 10*time.Millisecond, 0)
	timer.Advance(time.Millisecond)
	timer.Advance(5 * time.Millisecond)

	assert.Equal(t, anim.Waiting, timer.Peek())
	timer.Advance(5 * time.Millisecond)
	assert.Equal(t, 2, timer.Next())
}

func TestFromFramesIrregular(t *testing.T) {
	frames := []time.Duration{0, 10 * time.Millisecond, 30 * time.Millisecond}
	timer := anim.FromFrames(frames, 0)
	frames[1] = time.Hour

	assert.Equal(t, 40*time.Millisecond, timer.Total())
	assert.Equal(t, anim.Ready, timer.Advance(10*time.Millisecond))
	assert.Equal(t, anim.Ready, timer.Advance(10*time.Millisecond))
	assert.Equal(t, anim.Waiting, timer.Advance(20*time.Millisecond))
	assert.Equal(t, anim.Ready, timer.Advance(10*time.Millisecond))
	assert.True(t, timer.IsDone())
}

func TestZeroFramesIsDone(t *testing.T) {
	timer := anim.EqualSized(0, time.Second, 0)
	assert.True(t, timer.IsDone())
	assert.Equal(t, anim.Done, timer.Advance(time.Second))

	assert.True(t, anim.EqualSized(-3, time.Second, 0).IsDone())
}
