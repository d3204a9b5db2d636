package beerslaw

import (
	"fmt"
	"strings"

	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Model is the Beer's Law screen.
type Model struct {
	Solutions []*Solution
	Solution  *reactive.Value[*Solution]

	Light      *Light
	Cuvette    *Cuvette
	Absorbance *Absorbance
	Detector   *ATDetector
	Ruler      *Ruler
}

func NewModel() *Model {
	solutions := Solutions()
	m := &Model{
		Solutions: solutions,
		Solution:  reactive.NewValue(solutions[0]),
	}
	m.Cuvette = NewCuvette(geom.V(3.3, 0.5), CuvetteWidthRange, 2.75)
	m.Light = NewLight(geom.V(1.5, 2.2), false, 0.45, m.Solution)
	m.Absorbance = NewAbsorbance(m.Light, m.Solution, m.Cuvette)
	m.Ruler = NewRuler(2.1, 0.1, 0.35, geom.V(3, 4.9), geom.Bounds2{MaxX: 6, MaxY: 5})
	m.Detector = NewATDetector(
		geom.V(6.3, 3.7), geom.Bounds2{MaxX: 7.9, MaxY: 5.25},
		geom.V(4.3, 2.2), geom.Bounds2{MaxX: 7.9, MaxY: 5.25},
		m.Light, m.Cuvette, m.Absorbance)
	return m
}

// SelectSolution selects the solution of the named solute.
func (m *Model) SelectSolution(name string) error {
	s, err := solute.ByName(name)
	if err != nil {
		return err
	}
	for _, sol := range m.Solutions {
		if sol.Solute == s {
			m.Solution.Set(sol)
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no absorption spectrum", solute.ErrUnknownSolute, strings.TrimSpace(name))
}

func (m *Model) Reset() {
	for _, s := range m.Solutions {
		s.Reset()
	}
	m.Solution.Reset()
	m.Light.Reset()
	m.Light.Wavelength.Set(float64(m.Solution.Get().PeakWavelength()))
	m.Cuvette.Reset()
	m.Detector.Reset()
	m.Ruler.Reset()
}

// Register exposes the model's values under dotted names.
func (m *Model) Register(r *reactive.Registry) {
	r.Register("solution", m.Solution)
	r.Register("light.on", m.Light.On)
	r.Register("light.wavelength", m.Light.Wavelength)
	r.Register("cuvette.width", m.Cuvette.Width)
	r.Register("absorbance.molarAbsorptivity", m.Absorbance.MolarAbsorptivity)
	r.Register("absorbance.value", m.Absorbance.Value)
	r.Register("detector.mode", m.Detector.Mode)
	r.Register("detector.probe.location", m.Detector.Probe.Location)
	r.Register("detector.value", m.Detector.Value)
	r.Register("ruler.location", m.Ruler.Location)
}
