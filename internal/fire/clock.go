package fire

import "time"

// Scheduler is the timer contract a host provides. Both methods return a
// cancel function; a cancelled callback must never run.
type Scheduler interface {
	// Every runs fn once per period until cancelled.
	Every(period time.Duration, fn func()) (cancel func())
	// RequestFrame runs fn once on the next display refresh.
	RequestFrame(fn func()) (cancel func())
}

// Clock runs the simulation on a fixed-rate tick and renders on the display
// cadence, but only when a tick has changed the grid since the last render.
type Clock struct {
	sched  Scheduler
	period time.Duration
	tick   func()
	render func()

	dirty   bool
	started bool
	stopped bool

	cancelTick  func()
	cancelFrame func()
}

// NewClock wires tick and render callbacks to sched. Nothing is scheduled
// until Start.
func NewClock(sched Scheduler, period time.Duration, tick, render func()) *Clock {
	return &Clock{sched: sched, period: period, tick: tick, render: render}
}

// Start arms the tick timer and requests the first frame.
func (c *Clock) Start() {
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.cancelTick = c.sched.Every(c.period, c.Tick)
	c.Kick()
}

// Tick runs one simulation step and requests a render.
func (c *Clock) Tick() {
	if c.stopped {
		return
	}
	c.tick()
	c.dirty = true
	c.requestFrame()
}

// Kick marks the picture stale without stepping, e.g. after a reset.
func (c *Clock) Kick() {
	if c.stopped {
		return
	}
	c.dirty = true
	c.requestFrame()
}

func (c *Clock) requestFrame() {
	if c.cancelFrame != nil {
		return
	}
	c.cancelFrame = c.sched.RequestFrame(c.frame)
}

func (c *Clock) frame() {
	c.cancelFrame = nil
	if c.stopped || !c.dirty {
		return
	}
	c.render()
	c.dirty = false
}

// Dirty reports whether the grid changed since the last render.
func (c *Clock) Dirty() bool { return c.dirty }

// FramePending reports whether a render request is outstanding.
func (c *Clock) FramePending() bool { return c.cancelFrame != nil }

// Stop cancels the tick timer and any pending frame. It is idempotent; no
// callback runs after Stop returns.
func (c *Clock) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
}
