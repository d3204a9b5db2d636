package concentration

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// Rand is the source of randomness for particle placement. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Particle is a grain of solid solute.
type Particle struct {
	Solute      *solute.Solute
	Location    geom.Vec2
	Orientation float64 // radians
	Size        float64
}

// ShakerParticle is a grain falling from the shaker.
type ShakerParticle struct {
	Particle
	Velocity     geom.Vec2
	Acceleration geom.Vec2
}

// Change describes one reconciliation of a population. Removed holds the
// particles that left, Added the ones appended at the tail.
type Change[P any] struct {
	Added   []P
	Removed []P
}

func (c Change[P]) empty() bool { return len(c.Added) == 0 && len(c.Removed) == 0 }

// Population is an ordered collection of particles. Survivors keep their
// relative order, so a view can track particles by identity.
type Population[P comparable] struct {
	items   []P
	changed reactive.Emitter[Change[P]]
}

// Particles returns a snapshot of the population.
func (p *Population[P]) Particles() []P {
	out := make([]P, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Population[P]) Len() int { return len(p.items) }

// OnChange subscribes to reconciliations that changed the population.
func (p *Population[P]) OnChange(fn func(Change[P])) reactive.Unlink {
	return p.changed.On(fn)
}

func (p *Population[P]) push(ps ...P) { p.items = append(p.items, ps...) }

// truncate keeps the first n particles and returns the rest.
func (p *Population[P]) truncate(n int) []P {
	if n >= len(p.items) {
		return nil
	}
	removed := make([]P, len(p.items)-n)
	copy(removed, p.items[n:])
	clear(p.items[n:])
	p.items = p.items[:n]
	return removed
}

// removeIf drops matching particles, keeping the order of the rest.
func (p *Population[P]) removeIf(match func(P) bool) []P {
	var removed []P
	kept := p.items[:0]
	for _, it := range p.items {
		if match(it) {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	clear(p.items[len(kept):])
	p.items = kept
	return removed
}

func (p *Population[P]) commit(c Change[P]) {
	if c.empty() {
		return
	}
	p.changed.Emit(c)
}
