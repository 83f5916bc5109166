// Package render turns engine frames into things a host can show: ebiten
// images, composited RGBA images and animated GIFs.
package render

import (
	"fmt"
	"image"
	"image/color"
)

// Premultiply copies straight-alpha RGBA bytes from src into dst with each
// color channel scaled by alpha.
func Premultiply(dst, src []byte) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("render: premultiply into %d bytes from %d", len(dst), len(src)))
	}
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
}

// Over composites a straight-alpha color over an opaque background.
func Over(c color.NRGBA, bg color.RGBA) color.RGBA {
	a := uint32(c.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(bg.R)*inv + 127) / 255),
		G: uint8((uint32(c.G)*a + uint32(bg.G)*inv + 127) / 255),
		B: uint8((uint32(c.B)*a + uint32(bg.B)*inv + 127) / 255),
		A: 255,
	}
}

// Composite writes the straight-alpha frame pix (w*h*4 bytes) over bg into
// dst, which must have the same bounds size.
func Composite(dst *image.RGBA, pix []byte, bg color.RGBA) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	if len(pix) != w*h*4 {
		panic(fmt.Sprintf("render: composite %d bytes into %dx%d", len(pix), w, h))
	}
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			s := (y*w + x) * 4
			c := Over(color.NRGBA{R: pix[s], G: pix[s+1], B: pix[s+2], A: pix[s+3]}, bg)
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
}
