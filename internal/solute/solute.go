// Package solute holds the immutable catalog of substances the simulations
// dissolve, with their color schemes and measured absorption spectra.
package solute

import (
	"fmt"
	"strings"
)

const (
	DefaultParticleSize     = 5
	DefaultParticlesPerMole = 200
)

// Solute is a catalog entry. Values are shared and must not be modified.
type Solute struct {
	Key                        string
	Name                       string
	Formula                    string
	StockSolutionConcentration float64 // mol/L
	SaturatedConcentration     float64 // mol/L
	MolarMass                  float64 // g/mol
	Colors                     ColorScheme
	ParticleColor              Color
	ParticleSize               float64
	ParticlesPerMole           float64
	Absorptivity               *AbsorptivityTable // nil when no spectrum was measured
}

func (s *Solute) String() string { return s.Name }

// PeakWavelength returns the wavelength of maximum absorption, or 0 for a
// solute without a spectrum.
func (s *Solute) PeakWavelength() int {
	if s.Absorptivity == nil {
		return 0
	}
	return s.Absorptivity.Peak()
}

type spec struct {
	key, name, formula string
	stock, saturated   float64
	molarMass          float64
	colors             ColorScheme
	particleColor      *Color
	spectrum           []float64
}

func newSolute(p spec) *Solute {
	s := &Solute{
		Key:                        p.key,
		Name:                       p.name,
		Formula:                    p.formula,
		StockSolutionConcentration: p.stock,
		SaturatedConcentration:     p.saturated,
		MolarMass:                  p.molarMass,
		Colors:                     p.colors,
		ParticleColor:              p.colors.MaxColor,
		ParticleSize:               DefaultParticleSize,
		ParticlesPerMole:           DefaultParticlesPerMole,
	}
	if p.particleColor != nil {
		s.ParticleColor = *p.particleColor
	}
	if p.spectrum != nil {
		s.Absorptivity = mustTable(p.spectrum)
	}
	return s
}

func scheme(minColor Color, mid float64, midColor Color, max float64, maxColor Color) ColorScheme {
	return ColorScheme{
		MinConcentration: 0, MinColor: minColor,
		MidConcentration: mid, MidColor: midColor,
		MaxConcentration: max, MaxColor: maxColor,
	}
}

var (
	DrinkMix = newSolute(spec{
		key: "drink_mix", name: "drink mix", formula: "drink mix",
		stock: 5.5, saturated: 5.5, molarMass: 342.3,
		colors:   scheme(RGB(224, 255, 255), 0.05, RGB(255, 225, 225), 5.96, RGB(255, 0, 0)),
		spectrum: drinkMixAbsorptivity,
	})
	CobaltIINitrate = newSolute(spec{
		key: "cobalt_ii_nitrate", name: "cobalt (II) nitrate", formula: "Co(NO3)2",
		stock: 5.0, saturated: 5.64, molarMass: 182.94,
		colors:   scheme(Water.Color, 0.05, RGB(255, 225, 225), 5.64, RGB(255, 0, 0)),
		spectrum: cobaltIINitrateAbsorptivity,
	})
	CobaltChloride = newSolute(spec{
		key: "cobalt_chloride", name: "cobalt chloride", formula: "CoCl2",
		stock: 4.0, saturated: 4.33, molarMass: 129.84,
		colors:   scheme(Water.Color, 0.05, RGB(255, 242, 242), 4.33, RGB(255, 106, 106)),
		spectrum: cobaltChlorideAbsorptivity,
	})
	PotassiumDichromate = newSolute(spec{
		key: "potassium_dichromate", name: "potassium dichromate", formula: "K2Cr2O7",
		stock: 0.5, saturated: 0.51, molarMass: 294.18,
		colors:   scheme(Water.Color, 0.01, RGB(255, 204, 153), 0.51, RGB(255, 127, 0)),
		spectrum: potassiumDichromateAbsorptivity,
	})
	PotassiumChromate = newSolute(spec{
		key: "potassium_chromate", name: "potassium chromate", formula: "K2CrO4",
		stock: 3.0, saturated: 3.35, molarMass: 194.19,
		colors:   scheme(Water.Color, 0.05, RGB(255, 255, 153), 3.35, RGB(255, 255, 0)),
		spectrum: potassiumChromateAbsorptivity,
	})
	NickelIIChloride = newSolute(spec{
		key: "nickel_ii_chloride", name: "nickel (II) chloride", formula: "NiCl2",
		stock: 5.0, saturated: 5.21, molarMass: 129.6,
		colors:   scheme(Water.Color, 0.2, RGB(170, 255, 170), 5.21, RGB(0, 128, 0)),
		spectrum: nickelIIChlorideAbsorptivity,
	})
	CopperSulfate = newSolute(spec{
		key: "copper_sulfate", name: "copper sulfate", formula: "CuSO4",
		stock: 1.0, saturated: 1.38, molarMass: 159.61,
		colors:   scheme(Water.Color, 0.2, RGB(200, 225, 255), 1.38, RGB(30, 144, 255)),
		spectrum: copperSulfateAbsorptivity,
	})
	PotassiumPermanganate = newSolute(spec{
		key: "potassium_permanganate", name: "potassium permanganate", formula: "KMnO4",
		stock: 0.4, saturated: 0.48, molarMass: 158.03,
		colors:        scheme(Water.Color, 0.01, RGB(255, 0, 255), 0.48, RGB(80, 0, 120)),
		particleColor: &Black,
		spectrum:      potassiumPermanganateAbsorptivity,
	})
	SodiumChloride = newSolute(spec{
		key: "sodium_chloride", name: "sodium chloride", formula: "NaCl",
		stock: 5.0, saturated: 6.14, molarMass: 58.44,
		colors:        scheme(Water.Color, 0.05, Water.Color, 6.14, Water.Color),
		particleColor: &White,
	})
)

var catalog = []*Solute{
	DrinkMix,
	CobaltIINitrate,
	CobaltChloride,
	PotassiumDichromate,
	PotassiumChromate,
	NickelIIChloride,
	CopperSulfate,
	PotassiumPermanganate,
	SodiumChloride,
}

// Catalog returns every solute in rainbow order, sodium chloride last.
func Catalog() []*Solute {
	out := make([]*Solute, len(catalog))
	copy(out, catalog)
	return out
}

// WithSpectrum returns the solutes that have an absorptivity table.
func WithSpectrum() []*Solute {
	var out []*Solute
	for _, s := range catalog {
		if s.Absorptivity != nil {
			out = append(out, s)
		}
	}
	return out
}

// ByName looks a solute up by key, display name or formula, ignoring case.
func ByName(name string) (*Solute, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range catalog {
		if needle == s.Key || needle == strings.ToLower(s.Name) || needle == strings.ToLower(s.Formula) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolute, name)
}
