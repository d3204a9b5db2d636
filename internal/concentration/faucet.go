package concentration

import (
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
)

// Faucet moves liquid at a flow rate chosen by the user. A disabled faucet
// does not flow.
type Faucet struct {
	Location    geom.Vec2
	PipeMinX    float64
	SpoutWidth  float64
	MaxFlowRate float64 // L/s

	Enabled  *reactive.Value[bool]
	FlowRate *reactive.Value[float64] // L/s
}

func NewFaucet(location geom.Vec2, pipeMinX, spoutWidth, maxFlowRate float64) *Faucet {
	f := &Faucet{
		Location:    location,
		PipeMinX:    pipeMinX,
		SpoutWidth:  spoutWidth,
		MaxFlowRate: maxFlowRate,
		Enabled:     reactive.NewValue(true),
	}
	f.FlowRate = reactive.NewValue(0.0).WithClamp(func(r float64) float64 {
		if !f.Enabled.Get() {
			return 0
		}
		return reactive.Clamp(r, 0, f.MaxFlowRate)
	})
	f.Enabled.LazyLink(func(enabled bool) {
		if !enabled {
			f.FlowRate.Set(0)
		}
	})
	return f
}

// Open sets the flow rate to a fraction of the maximum.
func (f *Faucet) Open(fraction float64) { f.FlowRate.Set(fraction * f.MaxFlowRate) }

func (f *Faucet) Close() { f.FlowRate.Set(0) }

func (f *Faucet) Reset() {
	f.FlowRate.Reset()
	f.Enabled.Reset()
}
