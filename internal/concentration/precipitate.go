package concentration

import (
	"math"

	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/solute"
)

// Precipitate shows undissolved solute as particles resting on the bottom
// of the beaker. Its size always matches
// Solution.NumberOfPrecipitateParticles.
type Precipitate struct {
	Population[*Particle]

	solution *Solution
	beaker   Beaker
	rand     Rand
}

func NewPrecipitate(solution *Solution, beaker Beaker, rnd Rand) *Precipitate {
	p := &Precipitate{solution: solution, beaker: beaker, rand: rnd}
	solution.PrecipitateAmount.LazyLink(func(float64) { p.Update() })
	solution.Solute.LazyLink(func(*solute.Solute) { p.Update() })
	p.Update()
	return p
}

// Update grows or shrinks the population at its tail to the target count.
// Particles of a previously selected solute are replaced all at once.
func (p *Precipitate) Update() {
	if p.Len() > 0 && p.items[0].Solute != p.solution.Solute.Get() {
		p.Rebuild()
		return
	}
	target := p.solution.NumberOfPrecipitateParticles()
	var c Change[*Particle]
	switch n := p.Len(); {
	case target == n:
		return
	case target < n:
		c.Removed = p.truncate(target)
	default:
		c.Added = p.spawn(target - n)
		p.push(c.Added...)
	}
	p.commit(c)
}

// Rebuild replaces every particle, for when the solute changes.
func (p *Precipitate) Rebuild() {
	var c Change[*Particle]
	c.Removed = p.truncate(0)
	c.Added = p.spawn(p.solution.NumberOfPrecipitateParticles())
	p.push(c.Added...)
	p.commit(c)
}

func (p *Precipitate) spawn(n int) []*Particle {
	s := p.solution.Solute.Get()
	out := make([]*Particle, n)
	for i := range out {
		out[i] = &Particle{
			Solute:      s,
			Location:    p.randomLocation(s.ParticleSize),
			Orientation: p.rand.Float64() * 2 * math.Pi,
			Size:        s.ParticleSize,
		}
	}
	return out
}

// randomLocation picks a spot on the beaker floor, inset by the particle
// diagonal so it never crosses a wall.
func (p *Precipitate) randomLocation(size float64) geom.Vec2 {
	margin := math.Hypot(size, size)
	x := p.beaker.Left() + margin + p.rand.Float64()*(p.beaker.Width-2*margin)
	return geom.V(x, p.beaker.Bottom()-margin)
}
