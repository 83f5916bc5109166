// Package host provides the single-threaded scheduler that window, terminal
// and headless hosts use to drive a fire.Engine.
package host

import (
	"time"

	"doom-fire/internal/core"
)

type timer struct {
	step      *core.FixedStep
	fn        func()
	cancelled bool
}

type frame struct {
	fn        func()
	cancelled bool
}

// Loop is a cooperative scheduler. Hosts call Advance from their update
// cadence and Present from their display refresh; all callbacks run on the
// caller's goroutine.
type Loop struct {
	timers []*timer
	frames []*frame
}

// NewLoop returns an empty loop.
func NewLoop() *Loop { return &Loop{} }

// Every registers fn to run once per period of advanced time.
func (l *Loop) Every(period time.Duration, fn func()) func() {
	t := &timer{step: core.NewFixedPeriod(period), fn: fn}
	l.timers = append(l.timers, t)
	return func() { t.cancelled = true }
}

// RequestFrame queues fn for the next Present.
func (l *Loop) RequestFrame(fn func()) func() {
	f := &frame{fn: fn}
	l.frames = append(l.frames, f)
	return func() { f.cancelled = true }
}

// Advance moves the loop clock forward by d and runs every timer that came
// due, in registration order.
func (l *Loop) Advance(d time.Duration) {
	l.compact()
	timers := append([]*timer(nil), l.timers...)
	for _, t := range timers {
		for n := t.step.Advance(d); n > 0 && !t.cancelled; n-- {
			t.fn()
		}
	}
}

// Present runs the frame callbacks queued before the call. Frames requested
// from inside a callback wait for the next Present.
func (l *Loop) Present() {
	frames := l.frames
	l.frames = nil
	for _, f := range frames {
		if !f.cancelled {
			f.fn()
		}
	}
}

// Timers returns the number of live timers.
func (l *Loop) Timers() int {
	l.compact()
	return len(l.timers)
}

// PendingFrames returns the number of live frame requests.
func (l *Loop) PendingFrames() int {
	n := 0
	for _, f := range l.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}

func (l *Loop) compact() {
	live := l.timers[:0]
	for _, t := range l.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = live
}
