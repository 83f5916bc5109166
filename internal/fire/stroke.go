package fire

import (
	"math"

	"doom-fire/internal/geom"
)

const (
	// DefaultStrokeRadius is the reach of a stroke in pixels.
	DefaultStrokeRadius = 15
	// MaxStrokeRadius bounds interactive radius changes.
	MaxStrokeRadius = 64
	// DefaultFalloff is the exponent shaping heat across the stroke width.
	DefaultFalloff = 1.0 / 8.0
)

// Brush converts a pointer drag segment into heat using a line distance
// field.
type Brush struct {
	Radius  float32
	Falloff float64
}

// DefaultBrush returns the standard stroke shape.
func DefaultBrush() Brush {
	return Brush{Radius: DefaultStrokeRadius, Falloff: DefaultFalloff}
}

// Intensity maps a distance from the stroke to a level in [1, MaxLevel].
func (b Brush) Intensity(d float32) int {
	base := max(float64(MaxLevel-d), 0)
	norm := math.Pow(MaxLevel, b.Falloff)
	return int(math.Pow(base, b.Falloff)/norm*(MaxLevel-1)) + 1
}

// SegmentDistance returns the distance from p to the segment [a, b]. A
// degenerate segment is treated as the point a.
func SegmentDistance(p, a, b geom.Vector2) float32 {
	ba := b.Sub(a)
	return segmentDistance(p.Sub(a), ba, ba.Dot(ba))
}

func segmentDistance(pa, ba geom.Vector2, baba float32) float32 {
	var h float32
	if baba > 0 {
		h = max(min(pa.Dot(ba)/baba, 1), 0)
	}
	return pa.Sub(ba.Scale(h)).Norm()
}

// Paint raises every cell within Radius of the segment from-to.
func (b Brush) Paint(g *HeatGrid, from, to geom.Vector2) {
	if b.Radius <= 0 {
		return
	}
	ba := to.Sub(from)
	baba := ba.Dot(ba)

	// Cells outside the segment's bounding box grown by Radius cannot be
	// closer than Radius.
	x0 := max(int(math.Floor(float64(min(from.X, to.X)-b.Radius))), 0)
	x1 := min(int(math.Ceil(float64(max(from.X, to.X)+b.Radius))), g.Width()-1)
	y0 := max(int(math.Floor(float64(min(from.Y, to.Y)-b.Radius))), 0)
	y1 := min(int(math.Ceil(float64(max(from.Y, to.Y)+b.Radius))), g.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pa := geom.Vec(float32(x), float32(y)).Sub(from)
			d := segmentDistance(pa, ba, baba)
			if d < b.Radius {
				g.raise(x, y, b.Intensity(d))
			}
		}
	}
}
