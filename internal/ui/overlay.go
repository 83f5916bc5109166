//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the stroke reach around the pointer.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the outline.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders a dotted circle of radius (grid pixels) centred on (cx, cy)
// in screen pixels.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy int, radius float64, scale int, active bool) {
	if !o.visible || radius <= 0 {
		return
	}
	r := radius * float64(max(scale, 1))
	alpha := float32(0.35)
	if active {
		alpha = 0.8
	}
	segments := max(int(2*math.Pi*r/6), 12)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(float64(cx)+r*math.Cos(theta)-1, float64(cy)+r*math.Sin(theta)-1)
		op.ColorScale.Scale(alpha, alpha, alpha, alpha)
		screen.DrawImage(o.pixel, op)
	}
}
