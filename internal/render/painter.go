//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter is a fire.Surface backed by a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Present uploads a straight-alpha frame into the painter image. Frames of
// the wrong size are dropped.
func (gp *GridPainter) Present(pix []byte, width, height int) {
	if width != gp.w || height != gp.h || len(pix) != len(gp.buf) {
		return
	}
	Premultiply(gp.buf, pix)
	gp.img.WritePixels(gp.buf)
}

// Draw blits the painter image onto dst at the given scale.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
