package core

import "time"

// maxCatchUp bounds how many steps a single Advance may report so a stalled
// host does not replay seconds of ticks in one frame.
const maxCatchUp = 8

// FixedStep helps run simulation updates at a steady rate.
// Time is fed in explicitly so hosts and tests control the clock.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedPeriod constructs a FixedStep that fires once per period.
func NewFixedPeriod(period time.Duration) *FixedStep {
	if period <= 0 {
		period = time.Second / 60
	}
	return &FixedStep{step: period}
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance adds delta to the accumulator and returns how many whole steps are
// now due. Backlog beyond maxCatchUp steps is dropped.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
		if n == maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return n
}
