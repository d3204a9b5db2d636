package concentration

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
)

// Units selects what the concentration meter displays.
type Units int

const (
	Molar   Units = iota // mol/L
	Percent              // % by mass
)

func (u Units) String() string {
	if u == Percent {
		return "%"
	}
	return "mol/L"
}

// ConcentrationMeter reads the solution under its probe. The reading is nil
// when the probe is not in the solution.
type ConcentrationMeter struct {
	Body  geom.Movable
	Probe geom.Movable
	Units *reactive.Value[Units]

	Value *reactive.Derived[*float64]
}

func NewConcentrationMeter(bodyLocation geom.Vec2, bodyBounds geom.Bounds2, probeLocation geom.Vec2, probeBounds geom.Bounds2, solution *Solution, beaker Beaker) *ConcentrationMeter {
	m := &ConcentrationMeter{
		Body:  geom.NewMovable(bodyLocation, bodyBounds),
		Probe: geom.NewMovable(probeLocation, probeBounds),
		Units: reactive.NewValue(Molar),
	}
	m.Value = reactive.NewDerived(func() *float64 {
		volume := solution.Volume.Get()
		if volume <= 0 || !beaker.SolutionBounds(volume).Contains(m.Probe.Location.Get()) {
			return nil
		}
		v := solution.Concentration.Get()
		if m.Units.Get() == Percent {
			v = solution.PercentConcentration.Get()
		}
		return &v
	}, m.Probe.Location, m.Units, solution.Volume, solution.Concentration, solution.PercentConcentration).
		WithEquals(reactive.EqualPtr[float64])
	return m
}

func (m *ConcentrationMeter) Reset() {
	m.Body.Reset()
	m.Probe.Reset()
	m.Units.Reset()
}
