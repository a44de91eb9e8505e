// Package mainloop holds helpers for work scheduled on the UI thread.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one scheduled run.
// Only the latest callback posted for a key runs. Bursty host events
// (resize, move) go through it so they cost one write per burst.
type Coalescer struct {
	mu        sync.Mutex
	latest    map[string]func()
	scheduled map[string]bool
	post      func(func())
	stopped   bool
}

// NewCoalescer creates a coalescer that schedules through post,
// typically port.Scheduler.Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		latest:    make(map[string]func()),
		scheduled: make(map[string]bool),
		post:      post,
	}
}

// Post records fn as the latest task for key and schedules a run unless one
// is already pending.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.latest[key] = fn
	if c.scheduled[key] {
		c.mu.Unlock()
		return
	}
	c.scheduled[key] = true
	c.mu.Unlock()

	c.post(func() { c.run(key) })
}

// Flush runs the pending task for key immediately. The already scheduled
// run then finds nothing to do.
func (c *Coalescer) Flush(key string) {
	c.run(key)
}

// Pending reports whether a task is waiting for key.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.latest, key)
	delete(c.scheduled, key)
	stopped := c.stopped
	c.mu.Unlock()

	if fn != nil && !stopped {
		fn()
	}
}

// Destroy drops pending work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.stopped = true
	c.latest = map[string]func(){}
	c.scheduled = map[string]bool{}
	c.mu.Unlock()
}
