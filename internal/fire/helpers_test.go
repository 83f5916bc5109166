package fire

import (
	"testing"
	"time"
)

// scriptedSource replays a fixed sequence of offsets.
type scriptedSource struct {
	t   *testing.T
	seq []int
	i   int
}

func (s *scriptedSource) IntN(n int) int {
	if s.i >= len(s.seq) {
		s.t.Fatalf("scripted source exhausted after %d draws", s.i)
	}
	v := s.seq[s.i] % n
	s.i++
	return v
}

// forbiddenSource fails the test when drawn from.
type forbiddenSource struct{ t *testing.T }

func (s forbiddenSource) IntN(int) int {
	s.t.Fatal("unexpected random draw")
	return 0
}

type fakeEntry struct {
	period    time.Duration
	fn        func()
	cancelled bool
}

// fakeScheduler records scheduled callbacks and counts cancellations.
type fakeScheduler struct {
	timers       []*fakeEntry
	frames       []*fakeEntry
	tickCancels  int
	frameCancels int
}

func (s *fakeScheduler) Every(period time.Duration, fn func()) func() {
	e := &fakeEntry{period: period, fn: fn}
	s.timers = append(s.timers, e)
	return func() {
		s.tickCancels++
		e.cancelled = true
	}
}

func (s *fakeScheduler) RequestFrame(fn func()) func() {
	e := &fakeEntry{fn: fn}
	s.frames = append(s.frames, e)
	return func() {
		s.frameCancels++
		e.cancelled = true
	}
}

// fire runs every live timer once.
func (s *fakeScheduler) fire() {
	for _, e := range s.timers {
		if !e.cancelled {
			e.fn()
		}
	}
}

// fireAll runs every timer once, including cancelled ones, to simulate a
// host that ignores cancellation.
func (s *fakeScheduler) fireAll() {
	for _, e := range s.timers {
		e.fn()
	}
}

// present runs the frame callbacks queued so far.
func (s *fakeScheduler) present() {
	frames := s.frames
	s.frames = nil
	for _, e := range frames {
		if !e.cancelled {
			e.fn()
		}
	}
}

func (s *fakeScheduler) pendingFrames() int {
	n := 0
	for _, e := range s.frames {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// recordingSurface keeps a copy of every presented frame.
type recordingSurface struct {
	frames [][]byte
	w, h   int
}

func (r *recordingSurface) Present(pix []byte, width, height int) {
	r.frames = append(r.frames, append([]byte(nil), pix...))
	r.w, r.h = width, height
}

func (r *recordingSurface) last() []byte {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}
