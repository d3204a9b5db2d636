package beerslaw

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
)

var CuvetteWidthRange = reactive.Range{Min: 0.5, Max: 2.0, Default: 1.0} // cm

// Cuvette is the vessel holding the solution. Its width, the path length of
// the light through it, is adjustable.
type Cuvette struct {
	Location geom.Vec2 // top left
	Height   float64

	Width *reactive.Value[float64]
}

func NewCuvette(location geom.Vec2, width reactive.Range, height float64) *Cuvette {
	return &Cuvette{
		Location: location,
		Height:   height,
		Width:    reactive.NewRanged(width),
	}
}

func (c *Cuvette) Reset() { c.Width.Reset() }
