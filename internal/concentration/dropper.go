package concentration

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Dropper dispenses stock solution of the selected solute at a fixed rate
// while the user holds its button.
type Dropper struct {
	geom.Movable

	Solute      *reactive.Value[*solute.Solute]
	MaxFlowRate float64 // L/s

	Visible    *reactive.Value[bool]
	Enabled    *reactive.Value[bool]
	Empty      *reactive.Value[bool]
	Dispensing *reactive.Value[bool]
	FlowRate   *reactive.Value[float64] // L/s
}

func NewDropper(location geom.Vec2, bounds geom.Bounds2, s *reactive.Value[*solute.Solute], maxFlowRate float64, visible bool) *Dropper {
	d := &Dropper{
		Movable:     geom.NewMovable(location, bounds),
		Solute:      s,
		MaxFlowRate: maxFlowRate,
		Visible:     reactive.NewValue(visible),
		Enabled:     reactive.NewValue(true),
		Empty:       reactive.NewValue(false),
		FlowRate:    reactive.NewValue(0.0),
	}
	d.Dispensing = reactive.NewValue(false).WithClamp(func(on bool) bool {
		return on && d.Enabled.Get()
	})

	d.Enabled.LazyLink(func(enabled bool) {
		if !enabled {
			d.Dispensing.Set(false)
		}
	})
	d.Dispensing.LazyLink(func(on bool) {
		if on {
			d.FlowRate.Set(d.MaxFlowRate)
		} else {
			d.FlowRate.Set(0)
		}
	})
	d.Empty.LazyLink(func(empty bool) {
		if empty {
			d.Enabled.Set(false)
		}
	})
	return d
}

// StockConcentration is the concentration of what the dropper dispenses.
func (d *Dropper) StockConcentration() float64 {
	return d.Solute.Get().StockSolutionConcentration
}

func (d *Dropper) Reset() {
	d.Movable.Reset()
	d.Visible.Reset()
	d.Dispensing.Reset()
	d.Enabled.Reset()
	d.Empty.Reset()
	d.FlowRate.Reset()
}
