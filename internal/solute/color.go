package solute

import (
	"fmt"
	"math"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

// Interpolate blends a and b linearly in RGBA space. t is clamped to [0, 1].
func Interpolate(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c Color) String() string { return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A) }

// ColorScheme maps concentration to color through three stops.
type ColorScheme struct {
	MinConcentration float64
	MinColor         Color
	MidConcentration float64
	MidColor         Color
	MaxConcentration float64
	MaxColor         Color
}

func (s ColorScheme) ConcentrationToColor(c float64) Color {
	switch {
	case c >= s.MaxConcentration:
		return s.MaxColor
	case c <= s.MinConcentration:
		return s.MinColor
	case c <= s.MidConcentration:
		return Interpolate(s.MinColor, s.MidColor, (c-s.MinConcentration)/(s.MidConcentration-s.MinConcentration))
	default:
		return Interpolate(s.MidColor, s.MaxColor, (c-s.MidConcentration)/(s.MaxConcentration-s.MidConcentration))
	}
}
