package core

import "testing"

func TestByteGridRows(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.FillRow(2, 9)
	for x := 0; x < 4; x++ {
		if g.Cells()[g.Index(x, 2)] != 9 {
			t.Fatalf("cell (%d,2) not filled", x)
		}
		if g.Cells()[g.Index(x, 1)] != 0 {
			t.Fatalf("cell (%d,1) unexpectedly filled", x)
		}
	}
	row := g.Row(2)
	row[1] = 3
	if g.Cells()[9] != 3 {
		t.Fatal("Row must alias the backing buffer")
	}
	g.Clear()
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.Size() != (Size{W: 1, H: 1}) {
		t.Fatalf("coerced size = %+v", g.Size())
	}
	g = NewByteGrid(5, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {4, 1, true}, {5, 0, false}, {-1, 0, false}, {0, 2, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.want {
			t.Fatalf("InBounds(%d,%d) = %v", tc.x, tc.y, got)
		}
	}
	if g.Size().Area() != 10 {
		t.Fatalf("area = %d", g.Size().Area())
	}
}
