package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/tetrust/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	executions int
	elapsed    time.Duration
	ticks      []uint64
}

func (s *countingSystem) Execute(frame *loop.UpdateFrame) {
	s.executions++
	s.elapsed += frame.Elapsed
	s.ticks = append(s.ticks, frame.Tick)
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.RegisterNamed("first", loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "first") }))
		scheduler.RegisterNamed("second", loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(time.Millisecond)
		scheduler.Once(time.Millisecond)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, uint64(2), scheduler.Ticks())
	})

	t.Run("state persists between ticks", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(10 * time.Millisecond)
		scheduler.Once(15 * time.Millisecond)

		assert.Equal(t, 2, counter.executions)
		assert.Equal(t, 25*time.Millisecond, counter.elapsed)
		assert.Equal(t, []uint64{0, 1}, counter.ticks)
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var log []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			log = append(log, "a")
			frame.Commands.Defer(func() { log = append(log, "deferred") })
		}))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { log = append(log, "b") }))

		scheduler.Once(time.Millisecond)

		assert.Equal(t, []string{"a", "b", "deferred"}, log)
	})

	t.Run("run feeds the fixed interval", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		require.NotZero(t, counter.executions)
		assert.Equal(t, time.Duration(counter.executions)*time.Millisecond, counter.elapsed)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.RegisterNamed("sleeper", loop.SystemFunc(func(*loop.UpdateFrame) {
		time.Sleep(time.Millisecond)
	}))

	stats := scheduler.Stats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "sleeper", stats.Systems[1].Name)
	assert.Zero(t, stats.Systems[1].MinDuration)

	for range 3 {
		scheduler.Once(time.Millisecond)
	}

	stats = scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	sleeper := stats.Systems[1]
	assert.Equal(t, int64(3), sleeper.ExecutionCount)
	assert.GreaterOrEqual(t, sleeper.MinDuration, time.Millisecond)
	assert.LessOrEqual(t, sleeper.MinDuration, sleeper.AvgDuration)
	assert.LessOrEqual(t, sleeper.AvgDuration, sleeper.MaxDuration)
	assert.Equal(t, sleeper.TotalDuration/3, sleeper.AvgDuration)
}

func TestCommandsFlush(t *testing.T) {
	scheduler := loop.NewScheduler()

	var ran []int
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			ran = append(ran, 1)
			frame.Commands.Defer(func() { ran = append(ran, 2) })
		})
		assert.Equal(t, 1, frame.Commands.Len())
	}))

	scheduler.Once(time.Millisecond)
	assert.Equal(t, []int{1, 2}, ran)

	scheduler.Once(time.Millisecond)
	assert.Equal(t, []int{1, 2, 1, 2}, ran)
}
