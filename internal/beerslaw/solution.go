package beerslaw

import (
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Unit is the unit a solution's concentration is displayed in.
type Unit struct {
	Symbol string
	Scale  float64 // display value per mol/L
}

var (
	Molar      = Unit{Symbol: "M", Scale: 1}
	Millimolar = Unit{Symbol: "mM", Scale: 1e3}
	Micromolar = Unit{Symbol: "µM", Scale: 1e6}
)

// Display converts a concentration in mol/L to this unit.
func (u Unit) Display(c float64) float64 { return c * u.Scale }

// Solution is a solution of one solute with a user-chosen concentration.
type Solution struct {
	Solute             *solute.Solute
	Solvent            solute.Solvent
	ConcentrationRange reactive.Range // mol/L
	Unit               Unit
	MinColor           solute.Color
	MaxColor           solute.Color

	Concentration *reactive.Value[float64] // mol/L
	Color         *reactive.Derived[solute.Color]
}

func NewSolution(s *solute.Solute, r reactive.Range, unit Unit, minColor, maxColor solute.Color) *Solution {
	if s.Absorptivity == nil {
		panic("beerslaw: solute " + s.Key + " has no absorption spectrum")
	}
	sol := &Solution{
		Solute:             s,
		Solvent:            solute.Water,
		ConcentrationRange: r,
		Unit:               unit,
		MinColor:           minColor,
		MaxColor:           maxColor,
		Concentration:      reactive.NewRanged(r),
	}
	sol.Color = reactive.NewDerived(func() solute.Color {
		c := sol.Concentration.Get()
		if c <= 0 {
			return sol.Solvent.Color
		}
		return solute.Interpolate(sol.MinColor, sol.MaxColor, sol.ConcentrationRange.Normalize(c))
	}, sol.Concentration)
	return sol
}

func (s *Solution) Name() string { return s.Solute.Name }

// PeakWavelength is the wavelength the solution absorbs most, in nm.
func (s *Solution) PeakWavelength() int { return s.Solute.PeakWavelength() }

// MolarAbsorptivity returns ε at wavelength nm.
func (s *Solution) MolarAbsorptivity(wavelength float64) (float64, error) {
	return s.Solute.Absorptivity.At(wavelength)
}

func (s *Solution) Reset() { s.Concentration.Reset() }

func mol(min, max, def float64) reactive.Range {
	return reactive.Range{Min: min, Max: max, Default: def}
}

// Solutions returns a fresh set of the solutions offered on the screen, in
// rainbow order.
func Solutions() []*Solution {
	rgb := solute.RGB
	return []*Solution{
		NewSolution(solute.DrinkMix, mol(0, 0.400, 0.100), Millimolar, rgb(255, 225, 225), rgb(255, 0, 0)),
		NewSolution(solute.CobaltIINitrate, mol(0, 0.400, 0.100), Millimolar, rgb(255, 225, 225), rgb(255, 0, 0)),
		NewSolution(solute.CobaltChloride, mol(0, 0.250, 0.100), Millimolar, rgb(255, 242, 242), rgb(255, 106, 106)),
		NewSolution(solute.PotassiumDichromate, mol(0, 0.000500, 0.000100), Micromolar, rgb(255, 232, 210), rgb(255, 127, 0)),
		NewSolution(solute.PotassiumChromate, mol(0, 0.000400, 0.000100), Micromolar, rgb(255, 255, 199), rgb(255, 255, 0)),
		NewSolution(solute.NickelIIChloride, mol(0, 0.350, 0.100), Millimolar, rgb(234, 244, 234), rgb(0, 128, 0)),
		NewSolution(solute.CopperSulfate, mol(0, 0.200, 0.100), Millimolar, rgb(222, 238, 255), rgb(30, 144, 255)),
		NewSolution(solute.PotassiumPermanganate, mol(0, 0.000800, 0.000100), Micromolar, rgb(255, 235, 255), rgb(255, 0, 255)),
	}
}
