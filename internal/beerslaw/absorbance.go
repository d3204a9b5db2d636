package beerslaw

import "github.com/san-kum/beerslab/internal/reactive"

// Absorbance tracks the absorbance of the selected solution at the light's
// wavelength.
type Absorbance struct {
	// Concentration mirrors the concentration of the selected solution.
	Concentration     *reactive.Value[float64]
	MolarAbsorptivity *reactive.Derived[float64]
	// Value is the absorbance across the full cuvette width.
	Value *reactive.Derived[float64]

	unbind reactive.Unlink
}

func NewAbsorbance(light *Light, selected *reactive.Value[*Solution], cuvette *Cuvette) *Absorbance {
	a := &Absorbance{
		Concentration: reactive.NewValue(selected.Get().Concentration.Get()),
	}
	a.bind(selected.Get())
	selected.LazyLink(a.bind)

	a.MolarAbsorptivity = reactive.NewDerived(func() float64 {
		return selected.Get().Solute.Absorptivity.MustAt(light.Wavelength.Get())
	}, selected, light.Wavelength)

	a.Value = reactive.NewDerived(func() float64 {
		return AbsorbanceAt(cuvette.Width.Get(), a.Concentration.Get(), a.MolarAbsorptivity.Get())
	}, a.MolarAbsorptivity, cuvette.Width, a.Concentration)
	return a
}

func (a *Absorbance) bind(s *Solution) {
	if a.unbind != nil {
		a.unbind()
	}
	a.unbind = s.Concentration.Link(a.Concentration.Set)
}

// At returns the absorbance over pathLength cm.
func (a *Absorbance) At(pathLength float64) float64 {
	return AbsorbanceAt(pathLength, a.Concentration.Get(), a.MolarAbsorptivity.Get())
}

// TransmittanceAt returns the transmittance over pathLength cm.
func (a *Absorbance) TransmittanceAt(pathLength float64) float64 {
	return Transmittance(a.At(pathLength))
}
