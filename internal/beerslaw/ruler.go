package beerslaw

import "github.com/san-kum/beerslab/internal/geom"

// Ruler is a draggable measuring stick.
type Ruler struct {
	geom.Movable
	Length float64
	Insets float64 // space between the ends and the first tick
	Height float64
}

func NewRuler(length, insets, height float64, location geom.Vec2, bounds geom.Bounds2) *Ruler {
	return &Ruler{
		Movable: geom.NewMovable(location, bounds),
		Length:  length,
		Insets:  insets,
		Height:  height,
	}
}
