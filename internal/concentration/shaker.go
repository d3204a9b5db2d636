package concentration

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Shaker dispenses solid solute while it is being shaken. Moving the shaker
// is what shakes it.
type Shaker struct {
	geom.Movable

	Solute            *reactive.Value[*solute.Solute]
	Orientation       float64 // radians
	MaxDispensingRate float64 // mol/s

	Visible        *reactive.Value[bool]
	Empty          *reactive.Value[bool]
	DispensingRate *reactive.Value[float64] // mol/s

	moved bool
}

func NewShaker(location geom.Vec2, bounds geom.Bounds2, orientation float64, s *reactive.Value[*solute.Solute], maxRate float64, visible bool) *Shaker {
	sh := &Shaker{
		Movable:           geom.NewMovable(location, bounds),
		Solute:            s,
		Orientation:       orientation,
		MaxDispensingRate: maxRate,
		Visible:           reactive.NewValue(visible),
		Empty:             reactive.NewValue(false),
	}
	sh.DispensingRate = reactive.NewValue(0.0).WithClamp(func(r float64) float64 {
		if !sh.canDispense() {
			return 0
		}
		return reactive.Clamp(r, 0, sh.MaxDispensingRate)
	})

	sh.Location.LazyLink(func(geom.Vec2) {
		if sh.canDispense() {
			sh.moved = true
			sh.DispensingRate.Set(sh.MaxDispensingRate)
		}
	})
	stop := func(bool) {
		if !sh.canDispense() {
			sh.DispensingRate.Set(0)
		}
	}
	sh.Visible.LazyLink(stop)
	sh.Empty.LazyLink(stop)
	s.LazyLink(func(*solute.Solute) { sh.DispensingRate.Set(0) })
	return sh
}

func (sh *Shaker) canDispense() bool { return sh.Visible.Get() && !sh.Empty.Get() }

// Shake moves the shaker to p. A move that changes its location starts
// dispensing.
func (sh *Shaker) Shake(p geom.Vec2) { sh.MoveTo(p) }

// Step stops dispensing if the shaker has not moved since the last step.
func (sh *Shaker) Step() {
	if !sh.moved {
		sh.DispensingRate.Set(0)
	}
	sh.moved = false
}

func (sh *Shaker) Reset() {
	sh.Movable.Reset()
	sh.Visible.Reset()
	sh.Empty.Reset()
	sh.DispensingRate.Reset()
	sh.moved = false
}
