package fire

import (
	"testing"
	"time"
)

type clockCounts struct {
	ticks, renders int
}

func newTestClock(s *fakeScheduler) (*Clock, *clockCounts) {
	n := &clockCounts{}
	c := NewClock(s, 33*time.Millisecond, func() { n.ticks++ }, func() { n.renders++ })
	return c, n
}

func TestClockStartRendersOnce(t *testing.T) {
	s := &fakeScheduler{}
	c, n := newTestClock(s)
	c.Start()
	c.Start()

	if len(s.timers) != 1 {
		t.Fatalf("expected one timer, got %d", len(s.timers))
	}
	if s.timers[0].period != 33*time.Millisecond {
		t.Fatalf("timer period %v", s.timers[0].period)
	}
	if s.pendingFrames() != 1 {
		t.Fatalf("start must request the first frame, pending=%d", s.pendingFrames())
	}
	s.present()
	if n.renders != 1 {
		t.Fatalf("renders = %d, want 1", n.renders)
	}
	if s.pendingFrames() != 0 || c.FramePending() {
		t.Fatal("render must not re-arm itself")
	}
}

func TestClockRendersOnlyAfterChange(t *testing.T) {
	s := &fakeScheduler{}
	c, n := newTestClock(s)
	c.Start()
	s.present()

	s.fire()
	s.fire()
	s.fire()
	if n.ticks != 3 {
		t.Fatalf("ticks = %d, want 3", n.ticks)
	}
	if got := s.pendingFrames(); got != 1 {
		t.Fatalf("several ticks must share one frame request, got %d", got)
	}
	if !c.Dirty() {
		t.Fatal("tick must mark the clock dirty")
	}

	s.present()
	if n.renders != 2 {
		t.Fatalf("renders = %d, want 2", n.renders)
	}
	if c.Dirty() {
		t.Fatal("render must clear dirty")
	}

	s.present()
	if n.renders != 2 {
		t.Fatal("no render expected without a tick")
	}
}

func TestClockStopCancelsOnce(t *testing.T) {
	s := &fakeScheduler{}
	c, n := newTestClock(s)
	c.Start()
	s.present()
	s.fire()

	c.Stop()
	c.Stop()

	if s.tickCancels != 1 {
		t.Fatalf("tick cancel invoked %d times, want 1", s.tickCancels)
	}
	if s.frameCancels != 1 {
		t.Fatalf("frame cancel invoked %d times, want 1", s.frameCancels)
	}

	ticks, renders := n.ticks, n.renders
	s.fireAll()
	s.present()
	c.Tick()
	c.Kick()
	if n.ticks != ticks || n.renders != renders {
		t.Fatalf("callbacks ran after stop: ticks %d->%d renders %d->%d", ticks, n.ticks, renders, n.renders)
	}
}

func TestClockStopWithoutPendingFrame(t *testing.T) {
	s := &fakeScheduler{}
	c, _ := newTestClock(s)
	c.Start()
	s.present()

	c.Stop()
	if s.tickCancels != 1 || s.frameCancels != 0 {
		t.Fatalf("cancels tick=%d frame=%d, want 1 and 0", s.tickCancels, s.frameCancels)
	}
}

func TestClockStaleFrameAfterStop(t *testing.T) {
	s := &fakeScheduler{}
	c, n := newTestClock(s)
	c.Start()
	frame := s.frames[0].fn

	c.Stop()
	frame()
	if n.renders != 0 {
		t.Fatal("a frame delivered after stop must not render")
	}
}
