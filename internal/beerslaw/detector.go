package beerslaw

import (
	"math"

	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
)

// Mode selects what the detector displays.
type Mode string

const (
	TransmittanceMode Mode = "transmittance"
	AbsorbanceMode    Mode = "absorbance"
)

// Probe is the detector's sensor.
type Probe struct {
	geom.Movable
	SensorDiameter float64
}

func (p Probe) MinY() float64 { return p.Location.Get().Y - p.SensorDiameter/2 }

func (p Probe) MaxY() float64 { return p.Location.Get().Y + p.SensorDiameter/2 }

// ATDetector reads absorbance or percent transmittance where its probe
// intercepts the beam.
type ATDetector struct {
	Body  geom.Movable
	Probe Probe
	Mode  *reactive.Value[Mode]

	// Value is nil when the probe is not in the beam.
	Value *reactive.Derived[*float64]

	light *Light
}

func NewATDetector(bodyLocation geom.Vec2, bodyBounds geom.Bounds2, probeLocation geom.Vec2, probeBounds geom.Bounds2,
	light *Light, cuvette *Cuvette, absorbance *Absorbance) *ATDetector {
	d := &ATDetector{
		Body: geom.NewMovable(bodyLocation, bodyBounds),
		Probe: Probe{
			Movable:        geom.NewMovable(probeLocation, probeBounds),
			SensorDiameter: 0.57,
		},
		Mode:  reactive.NewValue(TransmittanceMode),
		light: light,
	}
	d.Value = reactive.NewDerived(func() *float64 {
		if !d.ProbeInBeam() {
			return nil
		}
		x := d.Probe.Location.Get().X
		pathLength := math.Min(math.Max(0, x-cuvette.Location.X), cuvette.Width.Get())
		v := 100 * absorbance.TransmittanceAt(pathLength)
		if d.Mode.Get() == AbsorbanceMode {
			v = absorbance.At(pathLength)
		}
		return &v
	}, d.Probe.Location, light.On, d.Mode, cuvette.Width, absorbance.Concentration, absorbance.MolarAbsorptivity).
		WithEquals(reactive.EqualPtr[float64])
	return d
}

// ProbeInBeam reports whether the light is on and the whole beam falls on
// the sensor downstream of the light.
func (d *ATDetector) ProbeInBeam() bool {
	return d.light.On.Get() &&
		d.Probe.MinY() < d.light.MinY() &&
		d.Probe.MaxY() > d.light.MaxY() &&
		d.Probe.Location.Get().X > d.light.Location.X
}

func (d *ATDetector) Reset() {
	d.Body.Reset()
	d.Probe.Reset()
	d.Mode.Reset()
}
