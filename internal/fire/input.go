package fire

import "doom-fire/internal/geom"

// PointerState is the drawing state of a Pointer.
type PointerState uint8

const (
	// PointerIdle means no button is held.
	PointerIdle PointerState = iota
	// PointerDrawing means a stroke is in progress.
	PointerDrawing
)

func (s PointerState) String() string {
	switch s {
	case PointerDrawing:
		return "drawing"
	default:
		return "idle"
	}
}

// Pointer tracks the drawing state and the stroke accumulated since the last
// paint. Positions are clamped to [0, width] x [0, height].
type Pointer struct {
	state      PointerState
	pos, last  geom.Vector2
	maxX, maxY float32
}

// NewPointer returns an idle pointer for a surface of the given size.
func NewPointer(width, height int) *Pointer {
	return &Pointer{maxX: float32(width), maxY: float32(height)}
}

// Down starts a stroke at (x, y). The previous endpoint is reset so the new
// stroke does not connect to the old one.
func (p *Pointer) Down(x, y float32) {
	p.pos = geom.Vec(x, y).Clamp(p.maxX, p.maxY)
	p.last = p.pos
	p.state = PointerDrawing
}

// Move updates the current position while drawing. Moves while idle are
// ignored.
func (p *Pointer) Move(x, y float32) {
	if p.state != PointerDrawing {
		return
	}
	p.pos = geom.Vec(x, y).Clamp(p.maxX, p.maxY)
}

// Up ends the stroke.
func (p *Pointer) Up() { p.state = PointerIdle }

// State returns the current state.
func (p *Pointer) State() PointerState { return p.state }

// Drawing reports whether a stroke is in progress.
func (p *Pointer) Drawing() bool { return p.state == PointerDrawing }

// Position returns the latest pointer position.
func (p *Pointer) Position() geom.Vector2 { return p.pos }

// Segment returns the stroke accumulated since the last Advance.
func (p *Pointer) Segment() (from, to geom.Vector2) { return p.last, p.pos }

// Advance marks the current position as painted.
func (p *Pointer) Advance() { p.last = p.pos }
