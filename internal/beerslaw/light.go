package beerslaw

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Light is a monochromatic light source whose beam is as tall as its lens.
type Light struct {
	Location     geom.Vec2 // center of the lens
	LensDiameter float64

	On         *reactive.Value[bool]
	Wavelength *reactive.Value[float64] // nm
}

// NewLight creates a light tuned to the peak of the selected solution. The
// light retunes itself whenever the selection changes.
func NewLight(location geom.Vec2, on bool, lensDiameter float64, selected *reactive.Value[*Solution]) *Light {
	l := &Light{
		Location:     location,
		LensDiameter: lensDiameter,
		On:           reactive.NewValue(on),
		Wavelength: reactive.NewNumber(float64(selected.Get().PeakWavelength()),
			solute.MinWavelength, solute.MaxWavelength),
	}
	selected.LazyLink(func(s *Solution) { l.Wavelength.Set(float64(s.PeakWavelength())) })
	return l
}

func (l *Light) MinY() float64 { return l.Location.Y - l.LensDiameter/2 }

func (l *Light) MaxY() float64 { return l.Location.Y + l.LensDiameter/2 }

// Reset turns the light back to its initial state. The wavelength follows
// the solution selection, so it is not reset here.
func (l *Light) Reset() { l.On.Reset() }
