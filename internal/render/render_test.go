package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"doom-fire/internal/fire"
)

func TestPremultiply(t *testing.T) {
	src := []byte{255, 128, 0, 128, 10, 20, 30, 0, 200, 100, 50, 255}
	dst := make([]byte, len(src))
	Premultiply(dst, src)
	want := []byte{128, 64, 0, 128, 0, 0, 0, 0, 200, 100, 50, 255}
	if !bytes.Equal(dst, want) {
		t.Fatalf("Premultiply = %v, want %v", dst, want)
	}
}

func TestOver(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got := Over(color.NRGBA{R: 200, A: 0}, bg); got != bg {
		t.Fatalf("transparent over bg = %v", got)
	}
	if got := Over(color.NRGBA{R: 200, G: 1, B: 2, A: 255}, bg); got != (color.RGBA{R: 200, G: 1, B: 2, A: 255}) {
		t.Fatalf("opaque over bg = %v", got)
	}
}

func TestCompositePanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Composite(image.NewRGBA(image.Rect(0, 0, 2, 2)), make([]byte, 12), Background)
}

func TestRecorderEncodesScaledFrames(t *testing.T) {
	g, err := fire.NewHeatGrid(4, 3, constSource(1))
	if err != nil {
		t.Fatal(err)
	}
	pix := make([]byte, 4*3*4)
	fire.MapRGBA(pix, g)

	r := NewRecorder(2, 30)
	r.Present(pix, 4, 3)
	g.Propagate()
	fire.MapRGBA(pix, g)
	r.Present(pix, 4, 3)

	if r.Frames() != 2 {
		t.Fatalf("frames = %d", r.Frames())
	}
	f := r.Frame(0)
	if f.Bounds().Dx() != 8 || f.Bounds().Dy() != 6 {
		t.Fatalf("frame bounds %v", f.Bounds())
	}
	// Bottom row is the hottest level, white; top row is cold, background.
	if got := f.ColorIndexAt(3, 5); f.Palette[got] != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("hot pixel color %v", f.Palette[got])
	}
	if got := f.ColorIndexAt(0, 0); f.Palette[got] != Background {
		t.Fatalf("cold pixel color %v", f.Palette[got])
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Image) != 2 || decoded.Delay[0] != 3 {
		t.Fatalf("decoded %d frames with delay %v", len(decoded.Image), decoded.Delay)
	}
}

func TestRecorderEmpty(t *testing.T) {
	if err := NewRecorder(1, 30).Encode(&bytes.Buffer{}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("error = %v, want ErrNoFrames", err)
	}
}

type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }
