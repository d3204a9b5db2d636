package scenario

import (
	"context"
	"fmt"

	"github.com/san-kum/beerslab/internal/beerslaw"
)

// Variable is the quantity a Sweep varies.
type Variable string

const (
	Wavelength    Variable = "wavelength"    // nm
	Concentration Variable = "concentration" // mol/L
	PathLength    Variable = "path"          // cm
)

// Sweep varies one input of the Beer's law model and records the
// absorbance and transmittance at each value. Zero fixed inputs mean the
// model defaults: the solution's peak wavelength, its default
// concentration and the default cuvette width.
type Sweep struct {
	Solution string
	Variable Variable
	Min, Max float64
	Steps    int

	Wavelength    float64
	Concentration float64
	PathLength    float64
}

type SweepPoint struct {
	X             float64 `json:"x"`
	Absorbance    float64 `json:"absorbance"`
	Transmittance float64 `json:"transmittance"`
}

// RunSweep evaluates sw on a fresh Beer's law model. Inputs outside the
// model's ranges are clamped, and X reports the value actually used.
func RunSweep(ctx context.Context, sw Sweep) ([]SweepPoint, error) {
	if sw.Steps < 2 {
		return nil, fmt.Errorf("%w: a sweep needs at least 2 steps, got %d", ErrInvalid, sw.Steps)
	}
	if !(sw.Max > sw.Min) {
		return nil, fmt.Errorf("%w: empty sweep range [%g, %g]", ErrInvalid, sw.Min, sw.Max)
	}
	if sw.Variable == PathLength && sw.Min < 0 {
		return nil, fmt.Errorf("%w: negative path length %g", ErrInvalid, sw.Min)
	}

	m := beerslaw.NewModel()
	if sw.Solution != "" {
		if err := m.SelectSolution(sw.Solution); err != nil {
			return nil, err
		}
	}
	solution := m.Solution.Get()
	if sw.Wavelength > 0 {
		m.Light.Wavelength.Set(sw.Wavelength)
	}
	if sw.Concentration > 0 {
		solution.Concentration.Set(sw.Concentration)
	}
	if sw.PathLength > 0 {
		m.Cuvette.Width.Set(sw.PathLength)
	}

	var set func(x float64) float64
	switch sw.Variable {
	case Wavelength:
		set = func(x float64) float64 {
			m.Light.Wavelength.Set(x)
			return m.Light.Wavelength.Get()
		}
	case Concentration:
		set = func(x float64) float64 {
			solution.Concentration.Set(x)
			return solution.Concentration.Get()
		}
	case PathLength:
		set = func(x float64) float64 { return x }
	default:
		return nil, fmt.Errorf("%w: unknown sweep variable %q", ErrInvalid, sw.Variable)
	}

	points := make([]SweepPoint, 0, sw.Steps)
	step := (sw.Max - sw.Min) / float64(sw.Steps-1)
	for i := 0; i < sw.Steps; i++ {
		select {
		case <-ctx.Done():
			return points, ctx.Err()
		default:
		}

		x := set(sw.Min + float64(i)*step)
		path := m.Cuvette.Width.Get()
		if sw.Variable == PathLength {
			path = x
		}
		points = append(points, SweepPoint{
			X:             x,
			Absorbance:    m.Absorbance.At(path),
			Transmittance: m.Absorbance.TransmittanceAt(path),
		})
	}
	return points, nil
}
