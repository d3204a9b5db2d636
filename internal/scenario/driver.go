package scenario

import (
	"fmt"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/solute"
)

const (
	timeEpsilon    = 1e-9
	shakeAmplitude = 15.0
)

// Driver feeds scenario events into a concentration model. It implements
// sim.Driver: Apply is called with the time at the start of each step.
type Driver struct {
	model  *concentration.Model
	events []Event
	next   int
	active []*activeEvent
}

type activeEvent struct {
	Event
	origin geom.Vec2
	phase  int
}

func NewDriver(m *concentration.Model, s *Scenario) *Driver {
	return &Driver{model: m, events: s.Events}
}

// Prepare puts the model in the scenario's starting state.
func Prepare(m *concentration.Model, s *Scenario) error {
	if s.Solute != "" {
		sol, err := solute.ByName(s.Solute)
		if err != nil {
			return err
		}
		if err := m.SelectSolute(sol); err != nil {
			return err
		}
	}
	if s.Form != "" {
		form, err := parseForm(s.Form)
		if err != nil {
			return err
		}
		m.SoluteForm.Set(form)
	}
	if s.Volume > 0 {
		m.Solution.Volume.Set(s.Volume)
	}
	return nil
}

func (d *Driver) Apply(t float64) error {
	d.expire(t)
	for d.next < len(d.events) && d.events[d.next].At <= t+timeEpsilon {
		e := d.events[d.next]
		d.next++
		if err := d.start(e); err != nil {
			return fmt.Errorf("event at t=%g (%s): %w", e.At, e.Action, err)
		}
	}
	for _, a := range d.active {
		d.hold(a)
	}
	return nil
}

// Done reports whether every event has started and finished.
func (d *Driver) Done() bool { return d.next == len(d.events) && len(d.active) == 0 }

func (d *Driver) expire(t float64) {
	kept := d.active[:0]
	for _, a := range d.active {
		if a.Until != 0 && a.Until <= t+timeEpsilon {
			d.release(a)
			continue
		}
		kept = append(kept, a)
	}
	d.active = kept
}

func (d *Driver) start(e Event) error {
	m := d.model
	if e.Action.continuous() {
		d.active = append(d.active, &activeEvent{Event: e, origin: m.Shaker.Location.Get()})
		return nil
	}
	switch e.Action {
	case AddSolute:
		m.AddSolute(e.Value)
	case AddSolvent:
		m.AddSolvent(e.Value)
	case RemoveSolvent:
		m.RemoveSolvent(e.Value)
	case SelectSolute:
		s, err := solute.ByName(e.Name)
		if err != nil {
			return err
		}
		return m.SelectSolute(s)
	case Form:
		form, err := parseForm(e.Name)
		if err != nil {
			return err
		}
		m.SoluteForm.Set(form)
	case Reset:
		for _, a := range d.active {
			d.release(a)
		}
		d.active = d.active[:0]
		m.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, e.Action)
	}
	return nil
}

// hold re-applies a continuous input, the way a user keeps a slider or
// button pressed while devices enable and disable around it.
func (d *Driver) hold(a *activeEvent) {
	m := d.model
	switch a.Action {
	case SolventFaucet:
		m.SolventFaucet.Open(a.Value)
	case DrainFaucet:
		m.DrainFaucet.Open(a.Value)
	case Evaporate:
		m.Evaporator.EvaporationRate.Set(a.Value * m.Evaporator.MaxEvaporationRate)
	case Dropper:
		m.Dropper.Dispensing.Set(true)
	case Shake:
		offset := shakeAmplitude
		if a.phase%2 == 1 {
			offset = -offset
		}
		a.phase++
		m.Shaker.Shake(a.origin.Add(geom.V(offset, 0)))
	}
}

func (d *Driver) release(a *activeEvent) {
	m := d.model
	switch a.Action {
	case SolventFaucet:
		m.SolventFaucet.Close()
	case DrainFaucet:
		m.DrainFaucet.Close()
	case Evaporate:
		m.Evaporator.EvaporationRate.Set(0)
	case Dropper:
		m.Dropper.Dispensing.Set(false)
	}
}
