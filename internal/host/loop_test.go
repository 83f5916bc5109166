package host

import (
	"testing"
	"time"

	"doom-fire/internal/fire"
)

var _ fire.Scheduler = (*Loop)(nil)

func TestLoopTimers(t *testing.T) {
	l := NewLoop()
	var a, b int
	cancelA := l.Every(10*time.Millisecond, func() { a++ })
	l.Every(25*time.Millisecond, func() { b++ })

	l.Advance(5 * time.Millisecond)
	if a != 0 || b != 0 {
		t.Fatalf("fired early: a=%d b=%d", a, b)
	}
	l.Advance(20 * time.Millisecond)
	if a != 2 || b != 1 {
		t.Fatalf("after 25ms a=%d b=%d, want 2 and 1", a, b)
	}

	cancelA()
	l.Advance(50 * time.Millisecond)
	if a != 2 {
		t.Fatalf("cancelled timer fired: a=%d", a)
	}
	if b != 3 {
		t.Fatalf("b=%d, want 3", b)
	}
	if l.Timers() != 1 {
		t.Fatalf("live timers = %d", l.Timers())
	}
}

func TestLoopCancelFromCallback(t *testing.T) {
	l := NewLoop()
	n := 0
	var cancel func()
	cancel = l.Every(time.Millisecond, func() {
		n++
		cancel()
	})
	l.Advance(5 * time.Millisecond)
	if n != 1 {
		t.Fatalf("timer ran %d times after cancelling itself", n)
	}
}

func TestLoopFrames(t *testing.T) {
	l := NewLoop()
	var order []string
	l.RequestFrame(func() {
		order = append(order, "a")
		l.RequestFrame(func() { order = append(order, "c") })
	})
	cancel := l.RequestFrame(func() { order = append(order, "x") })
	l.RequestFrame(func() { order = append(order, "b") })
	cancel()

	if l.PendingFrames() != 2 {
		t.Fatalf("pending = %d", l.PendingFrames())
	}
	l.Present()
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("first present ran %v", order)
	}
	l.Present()
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("nested request ran %v", order)
	}
	l.Present()
	if len(order) != 3 {
		t.Fatal("frames must be one-shot")
	}
}

type countingSurface struct{ frames int }

func (c *countingSurface) Present([]byte, int, int) { c.frames++ }

func TestLoopDrivesEngine(t *testing.T) {
	cfg := fire.DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	l := NewLoop()
	surf := &countingSurface{}
	e, err := fire.New(cfg, l, surf, nil)
	if err != nil {
		t.Fatal(err)
	}

	l.Present()
	if surf.frames != 1 {
		t.Fatalf("initial frames = %d", surf.frames)
	}
	l.Advance(cfg.TickPeriod() * 3)
	if e.Ticks() != 3 {
		t.Fatalf("ticks = %d, want 3", e.Ticks())
	}
	l.Present()
	l.Present()
	if surf.frames != 2 {
		t.Fatalf("frames = %d, want 2", surf.frames)
	}

	e.Destroy()
	l.Advance(time.Second)
	l.Present()
	if e.Ticks() != 3 || surf.frames != 2 {
		t.Fatal("engine kept running after destroy")
	}
	if l.Timers() != 0 || l.PendingFrames() != 0 {
		t.Fatalf("leaked timers=%d frames=%d", l.Timers(), l.PendingFrames())
	}
}
