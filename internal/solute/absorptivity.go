package solute

import (
	"fmt"
	"math"
)

// Visible range covered by absorptivity tables, in nm.
const (
	MinWavelength = 380
	MaxWavelength = 780

	tableSize = MaxWavelength - MinWavelength + 1
)

// AbsorptivityTable maps wavelength to molar absorptivity at 1 nm
// resolution.
type AbsorptivityTable struct {
	values []float64
	peak   int
}

// NewAbsorptivityTable copies values, which must hold one entry per nm of
// the visible range.
func NewAbsorptivityTable(values []float64) (*AbsorptivityTable, error) {
	if len(values) != tableSize {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrTableSize, len(values), tableSize)
	}
	t := &AbsorptivityTable{values: make([]float64, tableSize)}
	copy(t.values, values)

	best := 0
	for i, v := range t.values {
		if v > t.values[best] {
			best = i
		}
	}
	t.peak = best + MinWavelength
	return t, nil
}

func mustTable(values []float64) *AbsorptivityTable {
	t, err := NewAbsorptivityTable(values)
	if err != nil {
		panic(err)
	}
	return t
}

// At returns the molar absorptivity at wavelength nm. Fractional
// wavelengths use the entry of the whole nm below them.
func (t *AbsorptivityTable) At(wavelength float64) (float64, error) {
	if !(wavelength >= MinWavelength && wavelength <= MaxWavelength) {
		return 0, fmt.Errorf("%w: %g nm", ErrWavelengthOutOfRange, wavelength)
	}
	return t.values[int(math.Floor(wavelength))-MinWavelength], nil
}

// MustAt is At for callers that already clamp the wavelength.
func (t *AbsorptivityTable) MustAt(wavelength float64) float64 {
	v, err := t.At(wavelength)
	if err != nil {
		panic(err)
	}
	return v
}

// Peak returns the lowest wavelength with the maximum absorptivity.
func (t *AbsorptivityTable) Peak() int { return t.peak }

func (t *AbsorptivityTable) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}
