package concentration

import (
	"math"

	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/solute"
)

const (
	Gravity              = 150.0 // units/s²
	ShakerParticleSpeed  = 100.0 // initial speed, units/s
	DefaultMaxParticles  = 200
	shakerParticleSpread = 10.0
)

// ShakerParticles are grains that left the shaker but have not reached the
// solution yet. A grain dissolves when it hits the liquid surface, or the
// beaker floor when the beaker is empty.
type ShakerParticles struct {
	Population[*ShakerParticle]

	MaxParticles int

	solution *Solution
	beaker   Beaker
	rand     Rand
}

func NewShakerParticles(solution *Solution, beaker Beaker, rnd Rand, maxParticles int) *ShakerParticles {
	sp := &ShakerParticles{
		MaxParticles: maxParticles,
		solution:     solution,
		beaker:       beaker,
		rand:         rnd,
	}
	solution.Solute.LazyLink(func(*solute.Solute) { sp.RemoveAll() })
	return sp
}

// Step moves every particle and dissolves the ones that reached the
// solution. It returns the dissolved amount in mol.
func (sp *ShakerParticles) Step(dt float64) float64 {
	if sp.Len() == 0 {
		return 0
	}
	minX, maxX := sp.beaker.Left(), sp.beaker.Right()
	for _, p := range sp.items {
		p.Velocity = p.Velocity.Add(p.Acceleration.Scale(dt))
		p.Location = p.Location.Add(p.Velocity.Scale(dt))

		lo, hi := minX+p.Size/2, maxX-p.Size/2
		if p.Location.X < lo {
			p.Location.X = lo
			p.Velocity.X = math.Abs(p.Velocity.X)
		} else if p.Location.X > hi {
			p.Location.X = hi
			p.Velocity.X = -math.Abs(p.Velocity.X)
		}
	}

	surface := sp.beaker.SurfaceY(sp.solution.Volume.Get())
	removed := sp.removeIf(func(p *ShakerParticle) bool { return p.Location.Y >= surface })

	var moles float64
	for _, p := range removed {
		moles += 1 / p.Solute.ParticlesPerMole
	}
	sp.commit(Change[*ShakerParticle]{Removed: removed})
	return moles
}

// Emit creates particles at the shaker while it is dispensing. The count is
// proportional to the dispensing rate, at least one, and capped by
// MaxParticles.
func (sp *ShakerParticles) Emit(dt float64, shaker *Shaker) int {
	rate := shaker.DispensingRate.Get()
	if rate <= 0 || !shaker.canDispense() {
		return 0
	}
	s := sp.solution.Solute.Get()
	n := int(math.Round(math.Max(1, rate*s.ParticlesPerMole*dt)))
	if room := sp.MaxParticles - sp.Len(); n > room {
		n = room
	}
	if n <= 0 {
		return 0
	}

	origin := shaker.Location.Get()
	added := make([]*ShakerParticle, n)
	for i := range added {
		offset := geom.V(
			(sp.rand.Float64()-0.5)*shakerParticleSpread,
			(sp.rand.Float64()-0.5)*shakerParticleSpread,
		)
		added[i] = &ShakerParticle{
			Particle: Particle{
				Solute:      s,
				Location:    origin.Add(offset),
				Orientation: sp.rand.Float64() * 2 * math.Pi,
				Size:        s.ParticleSize,
			},
			Velocity:     geom.Polar(ShakerParticleSpeed, shaker.Orientation),
			Acceleration: geom.V(0, Gravity),
		}
	}
	sp.push(added...)
	sp.commit(Change[*ShakerParticle]{Added: added})
	return n
}

// RemoveAll drops every particle without dissolving it.
func (sp *ShakerParticles) RemoveAll() {
	sp.commit(Change[*ShakerParticle]{Removed: sp.truncate(0)})
}

func (sp *ShakerParticles) Reset() { sp.RemoveAll() }
