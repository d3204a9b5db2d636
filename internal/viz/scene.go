package viz

import (
	"math"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/geom"
)

// World is the part of the concentration screen a Scene shows, in model
// coordinates (y grows downward).
var World = geom.Bounds2{MinX: 0, MinY: 100, MaxX: 1000, MaxY: 700}

// Scene draws a concentration model onto a canvas.
type Scene struct {
	canvas *Canvas
	world  geom.Bounds2
}

func NewScene(c *Canvas) *Scene { return &Scene{canvas: c, world: World} }

// project maps a model point to canvas dots.
func (s *Scene) project(p geom.Vec2) (int, int) {
	x := (p.X - s.world.MinX) / s.world.Width() * float64(s.canvas.DotsWide()-1)
	y := (p.Y - s.world.MinY) / s.world.Height() * float64(s.canvas.DotsHigh()-1)
	return int(math.Round(x)), int(math.Round(y))
}

func (s *Scene) line(a, b geom.Vec2) {
	x0, y0 := s.project(a)
	x1, y1 := s.project(b)
	s.canvas.DrawLine(x0, y0, x1, y1)
}

func (s *Scene) dot(p geom.Vec2) {
	x, y := s.project(p)
	s.canvas.Set(x, y)
}

// Draw clears the canvas and renders the beaker, solution, particles and
// whichever devices are active.
func (s *Scene) Draw(m *concentration.Model) {
	s.canvas.Clear()
	b := m.Beaker
	volume := m.Solution.Volume.Get()

	if volume > 0 {
		x0, y0 := s.project(geom.V(b.Left(), b.SurfaceY(volume)))
		x1, y1 := s.project(geom.V(b.Right(), b.Bottom()))
		s.canvas.Shade(x0+1, y0, x1-1, y1-1, shadeStep(m))
	}

	s.line(geom.V(b.Left(), b.Top()), geom.V(b.Left(), b.Bottom()))
	s.line(geom.V(b.Left(), b.Bottom()), geom.V(b.Right(), b.Bottom()))
	s.line(geom.V(b.Right(), b.Bottom()), geom.V(b.Right(), b.Top()))

	for _, p := range m.Precipitate.Particles() {
		s.dot(p.Location)
		s.dot(p.Location.Add(geom.V(p.Size, 0)))
	}
	for _, p := range m.ShakerParticles.Particles() {
		s.dot(p.Location)
	}

	if m.Shaker.Visible.Get() {
		loc := m.Shaker.Location.Get()
		s.rect(loc.Add(geom.V(-20, -30)), loc.Add(geom.V(20, 10)))
	}
	if m.Dropper.Visible.Get() {
		loc := m.Dropper.Location.Get()
		s.line(loc.Add(geom.V(0, -60)), loc)
		if m.Dropper.Dispensing.Get() {
			s.line(loc, geom.V(loc.X, b.SurfaceY(volume)))
		}
	}

	if f := m.SolventFaucet; f.FlowRate.Get() > 0 {
		s.stream(f, b.SurfaceY(volume))
	}
	if f := m.DrainFaucet; f.FlowRate.Get() > 0 {
		s.stream(f, f.Location.Y+60)
	}

	probe := m.Meter.Probe.Location.Get()
	s.line(probe.Add(geom.V(-8, 0)), probe.Add(geom.V(8, 0)))
	s.line(probe.Add(geom.V(0, -8)), probe.Add(geom.V(0, 8)))
}

func (s *Scene) rect(min, max geom.Vec2) {
	s.line(min, geom.V(max.X, min.Y))
	s.line(geom.V(max.X, min.Y), max)
	s.line(max, geom.V(min.X, max.Y))
	s.line(geom.V(min.X, max.Y), min)
}

// stream draws falling liquid whose width follows the flow rate.
func (s *Scene) stream(f *concentration.Faucet, toY float64) {
	half := f.SpoutWidth / 2 * f.FlowRate.Get() / f.MaxFlowRate
	for _, dx := range []float64{-half, 0, half} {
		s.line(geom.V(f.Location.X+dx, f.Location.Y), geom.V(f.Location.X+dx, toY))
	}
}

// shadeStep picks a denser fill the closer the solution is to saturation.
func shadeStep(m *concentration.Model) int {
	sat := m.Solution.SaturatedConcentration()
	if sat <= 0 {
		return 4
	}
	frac := math.Min(1, m.Solution.Concentration.Get()/sat)
	return 4 - int(math.Round(2*frac))
}
