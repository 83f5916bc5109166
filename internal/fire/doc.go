// Package fire implements the classic doom-style fire effect: a grid of heat
// levels that drift upward and decay at random, fed by a constant-heat
// bottom row and by pointer strokes.
//
// An Engine is one mounted instance. It owns its HeatGrid, Pointer and Clock
// and is driven entirely by callbacks from a host Scheduler, so every method
// must be called from the host's loop goroutine.
package fire
