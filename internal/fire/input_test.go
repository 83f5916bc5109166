package fire

import (
	"testing"

	"doom-fire/internal/geom"
)

func TestPointerTransitions(t *testing.T) {
	p := NewPointer(100, 50)
	if p.State() != PointerIdle {
		t.Fatalf("new pointer state %v", p.State())
	}

	p.Move(10, 10)
	if p.Position() != geom.Zero {
		t.Fatal("move while idle must be ignored")
	}

	p.Down(20, 30)
	if !p.Drawing() {
		t.Fatal("down must start drawing")
	}
	from, to := p.Segment()
	if from != geom.Vec(20, 30) || to != geom.Vec(20, 30) {
		t.Fatalf("segment after down = %v -> %v", from, to)
	}

	p.Move(25, 30)
	p.Move(40, 35)
	from, to = p.Segment()
	if from != geom.Vec(20, 30) || to != geom.Vec(40, 35) {
		t.Fatalf("moves between paints must aggregate, got %v -> %v", from, to)
	}

	p.Advance()
	from, to = p.Segment()
	if from != to {
		t.Fatalf("advance must move last to position, got %v -> %v", from, to)
	}

	p.Up()
	if p.State() != PointerIdle {
		t.Fatal("up must stop drawing")
	}
	p.Move(90, 10)
	if p.Position() != geom.Vec(40, 35) {
		t.Fatal("move after up must be ignored")
	}
}

func TestPointerDownResetsLast(t *testing.T) {
	p := NewPointer(100, 100)
	p.Down(10, 10)
	p.Move(50, 50)
	p.Up()
	p.Down(80, 20)
	from, to := p.Segment()
	if from != geom.Vec(80, 20) || to != geom.Vec(80, 20) {
		t.Fatalf("new stroke connected to old one: %v -> %v", from, to)
	}
}

func TestPointerClamps(t *testing.T) {
	p := NewPointer(64, 32)
	p.Down(-5, 40)
	if got := p.Position(); got != geom.Vec(0, 32) {
		t.Fatalf("down clamp = %v", got)
	}
	p.Move(70, -1)
	if got := p.Position(); got != geom.Vec(64, 0) {
		t.Fatalf("move clamp = %v", got)
	}
	if PointerDrawing.String() != "drawing" || PointerIdle.String() != "idle" {
		t.Fatal("unexpected state names")
	}
}
