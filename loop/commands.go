package loop

// Commands buffers work that must wait until every system in a tick has run.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the tick is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued commands in order, resetting the buffer state.
// Commands deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
