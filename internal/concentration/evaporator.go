package concentration

import "github.com/san-kum/beerslab/internal/reactive"

// Evaporator removes solvent only, which concentrates the solution.
type Evaporator struct {
	MaxEvaporationRate float64 // L/s

	Enabled         *reactive.Value[bool]
	EvaporationRate *reactive.Value[float64] // L/s
}

func NewEvaporator(maxRate float64) *Evaporator {
	e := &Evaporator{
		MaxEvaporationRate: maxRate,
		Enabled:            reactive.NewValue(true),
	}
	e.EvaporationRate = reactive.NewValue(0.0).WithClamp(func(r float64) float64 {
		if !e.Enabled.Get() {
			return 0
		}
		return reactive.Clamp(r, 0, e.MaxEvaporationRate)
	})
	e.Enabled.LazyLink(func(enabled bool) {
		if !enabled {
			e.EvaporationRate.Set(0)
		}
	})
	return e
}

func (e *Evaporator) Reset() {
	e.EvaporationRate.Reset()
	e.Enabled.Reset()
}
