// Package geom holds the 2D value types used for model coordinates.
// Model coordinates have y pointing down.
package geom

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Polar returns the vector of length r at angle radians.
func Polar(r, angle float64) Vec2 {
	return Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) String() string { return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y) }

// Bounds2 is an axis-aligned rectangle. A zero-height or zero-width bounds
// is valid and constrains one axis to a line.
type Bounds2 struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds2) Width() float64 { return b.MaxX - b.MinX }

func (b Bounds2) Height() float64 { return b.MaxY - b.MinY }

func (b Bounds2) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// Contains reports whether p lies inside b, edges included.
func (b Bounds2) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Clamp returns the point of b closest to p.
func (b Bounds2) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(b.MinX, math.Min(b.MaxX, p.X)),
		Y: math.Max(b.MinY, math.Min(b.MaxY, p.Y)),
	}
}
