package host

import (
	"math"

	"doom-fire/internal/fire"
	"doom-fire/internal/geom"
)

// Script returns the pointer position for a tick and whether the button is
// held. Headless runs use it in place of a user.
type Script func(tick int) (p geom.Vector2, down bool)

// FigureEight traces a lemniscate across the middle of a w x h surface, one
// loop per period ticks. The button is released for the last quarter of
// each loop so the trail can burn out.
func FigureEight(w, h, period int) Script {
	if period <= 0 {
		period = 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := float64(w)/3, float64(h)/4
	return func(tick int) (geom.Vector2, bool) {
		phase := tick % period
		t := 2 * math.Pi * float64(phase) / float64(period)
		p := geom.Vec(float32(cx+rx*math.Sin(t)), float32(cy+ry*math.Sin(2*t)))
		return p, phase < period*3/4
	}
}

// Drive runs ticks simulation steps on l, feeding the engine from script
// (which may be nil) before each step and presenting after it. after, if
// non-nil, is called with the tick index once the frame is presented.
func Drive(e *fire.Engine, l *Loop, ticks int, script Script, after func(tick int)) {
	period := e.Config().TickPeriod()
	for i := 0; i < ticks; i++ {
		if script != nil {
			p, down := script(i)
			switch {
			case down && !e.Drawing():
				e.PointerDown(p.X, p.Y)
			case down:
				e.PointerMove(p.X, p.Y)
			case e.Drawing():
				e.PointerUp()
			}
		}
		l.Advance(period)
		l.Present()
		if after != nil {
			after(i)
		}
	}
}
