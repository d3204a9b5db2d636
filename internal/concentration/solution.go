package concentration

import (
	"math"

	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Range is a closed interval with a default value.
type Range = reactive.Range

// Solution is solute dissolved in water. Amount and volume are owned here;
// the selected solute is owned by the model.
type Solution struct {
	Solvent solute.Solvent
	Solute  *reactive.Value[*solute.Solute]

	SoluteAmount *reactive.Value[float64] // mol
	Volume       *reactive.Value[float64] // L

	PrecipitateAmount    *reactive.Derived[float64] // mol
	Concentration        *reactive.Derived[float64] // mol/L
	Saturated            *reactive.Derived[bool]
	PercentConcentration *reactive.Derived[float64] // % by mass
	Color                *reactive.Derived[solute.Color]
}

func NewSolution(s *reactive.Value[*solute.Solute], amount, volume Range) *Solution {
	sol := &Solution{
		Solvent:      solute.Water,
		Solute:       s,
		SoluteAmount: reactive.NewRanged(amount),
		Volume:       reactive.NewRanged(volume),
	}

	sol.PrecipitateAmount = reactive.NewDerived(func() float64 {
		return precipitateAmount(sol.SoluteAmount.Get(), sol.Volume.Get(), sol.Solute.Get().SaturatedConcentration)
	}, sol.Solute, sol.SoluteAmount, sol.Volume)

	sol.Concentration = reactive.NewDerived(func() float64 {
		return concentration(sol.SoluteAmount.Get(), sol.Volume.Get(), sol.Solute.Get().SaturatedConcentration)
	}, sol.Solute, sol.SoluteAmount, sol.Volume)

	sol.Saturated = reactive.NewDerived(func() bool {
		return sol.Volume.Get() > 0 && sol.PrecipitateAmount.Get() > 0
	}, sol.Volume, sol.PrecipitateAmount)

	sol.PercentConcentration = reactive.NewDerived(func() float64 {
		return percentConcentration(sol.Concentration.Get(), sol.Volume.Get(), sol.Solute.Get(), sol.Solvent)
	}, sol.Solute, sol.Concentration, sol.Volume)

	sol.Color = reactive.NewDerived(func() solute.Color {
		return solutionColor(sol.Solvent, sol.Solute.Get(), sol.Concentration.Get())
	}, sol.Solute, sol.Concentration)

	return sol
}

func precipitateAmount(amount, volume, saturated float64) float64 {
	return math.Max(0, amount-volume*saturated)
}

func concentration(amount, volume, saturated float64) float64 {
	if volume <= 0 {
		return 0
	}
	return math.Min(saturated, amount/volume)
}

// percentConcentration is the mass percent of dissolved solute.
func percentConcentration(c, volume float64, s *solute.Solute, solvent solute.Solvent) float64 {
	if volume <= 0 {
		return 0
	}
	soluteGrams := c * volume * s.MolarMass
	solventGrams := volume * solvent.Density
	return 100 * soluteGrams / (soluteGrams + solventGrams)
}

func solutionColor(solvent solute.Solvent, s *solute.Solute, c float64) solute.Color {
	if c <= 0 {
		return solvent.Color
	}
	return s.Colors.ConcentrationToColor(c)
}

// Reset restores the default amount and volume.
func (s *Solution) Reset() {
	s.SoluteAmount.Reset()
	s.Volume.Reset()
}

func (s *Solution) SaturatedConcentration() float64 {
	return s.Solute.Get().SaturatedConcentration
}

func (s *Solution) IsSaturated() bool { return s.Saturated.Get() }

// NumberOfPrecipitateParticles converts the precipitate amount to a particle
// count. Any nonzero precipitate is shown by at least one particle.
func (s *Solution) NumberOfPrecipitateParticles() int {
	amount := s.PrecipitateAmount.Get()
	n := int(math.Round(s.Solute.Get().ParticlesPerMole * amount))
	if n == 0 && amount > 0 {
		n = 1
	}
	return n
}
