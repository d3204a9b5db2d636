package concentration

import "github.com/san-kum/beerslab/internal/geom"

// Beaker is the container the solution lives in.
type Beaker struct {
	Location geom.Vec2 // bottom center
	Width    float64
	Height   float64
	Volume   float64 // L
}

func NewBeaker(location geom.Vec2, width, height, volume float64) Beaker {
	return Beaker{Location: location, Width: width, Height: height, Volume: volume}
}

func (b Beaker) Left() float64   { return b.Location.X - b.Width/2 }
func (b Beaker) Right() float64  { return b.Location.X + b.Width/2 }
func (b Beaker) Bottom() float64 { return b.Location.Y }
func (b Beaker) Top() float64    { return b.Location.Y - b.Height }

// SurfaceY returns the height of the liquid surface for volume.
func (b Beaker) SurfaceY(volume float64) float64 {
	if b.Volume <= 0 {
		return b.Bottom()
	}
	return b.Bottom() - b.Height*volume/b.Volume
}

// SolutionBounds is the region occupied by volume liters of solution.
func (b Beaker) SolutionBounds(volume float64) geom.Bounds2 {
	return geom.Bounds2{MinX: b.Left(), MinY: b.SurfaceY(volume), MaxX: b.Right(), MaxY: b.Bottom()}
}
