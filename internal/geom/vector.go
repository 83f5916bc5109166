// Package geom holds the small amount of 2-D vector math used for pointer
// strokes.
package geom

import "math"

// Vector2 is a point or displacement in surface pixel space.
type Vector2 struct {
	X, Y float32
}

// Zero is the origin.
var Zero = Vector2{}

// Vec constructs a Vector2.
func Vec(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{X: v.X - o.X, Y: v.Y - o.Y} }

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v * s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{X: v.X * s, Y: v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// NormSquared returns the squared Euclidean length.
func (v Vector2) NormSquared() float32 { return v.Dot(v) }

// Norm returns the Euclidean length.
func (v Vector2) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSquared())))
}

// Clamp limits each component to [0, maxX] and [0, maxY].
func (v Vector2) Clamp(maxX, maxY float32) Vector2 {
	return Vector2{X: min(max(v.X, 0), maxX), Y: min(max(v.Y, 0), maxY)}
}
