package metrics

import (
	"math"

	"github.com/san-kum/beerslab/internal/sim"
)

// Peak is the largest value a channel reached.
type Peak struct {
	channel
	max  float64
	seen bool
}

func NewPeak(label string) *Peak { return &Peak{channel: channel{label: label}} }

func (p *Peak) Name() string { return "peak_" + p.label }

func (p *Peak) Reset(labels []string) error {
	p.max, p.seen = 0, false
	return p.bind(labels)
}

func (p *Peak) Observe(x sim.Sample, t float64) {
	if v, ok := p.read(x); ok {
		if !p.seen || v > p.max {
			p.max = v
		}
		p.seen = true
	}
}

func (p *Peak) Value() float64 { return p.max }

// Mean is the average of a channel over all samples.
type Mean struct {
	channel
	sum     float64
	samples int
}

func NewMean(label string) *Mean { return &Mean{channel: channel{label: label}} }

func (m *Mean) Name() string { return "mean_" + m.label }

func (m *Mean) Reset(labels []string) error {
	m.sum, m.samples = 0, 0
	return m.bind(labels)
}

func (m *Mean) Observe(x sim.Sample, t float64) {
	if v, ok := m.read(x); ok {
		m.sum += v
		m.samples++
	}
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Final is the last value of a channel.
type Final struct {
	channel
	last float64
}

func NewFinal(label string) *Final { return &Final{channel: channel{label: label}} }

func (f *Final) Name() string { return "final_" + f.label }

func (f *Final) Reset(labels []string) error {
	f.last = 0
	return f.bind(labels)
}

func (f *Final) Observe(x sim.Sample, t float64) {
	if v, ok := f.read(x); ok {
		f.last = v
	}
}

func (f *Final) Value() float64 { return f.last }

// Drift is the largest relative change of a channel from its first value.
type Drift struct {
	channel
	initial  float64
	maxDrift float64
	samples  int
}

func NewDrift(label string) *Drift { return &Drift{channel: channel{label: label}} }

func (d *Drift) Name() string { return "drift_" + d.label }

func (d *Drift) Reset(labels []string) error {
	d.initial, d.maxDrift, d.samples = 0, 0, 0
	return d.bind(labels)
}

func (d *Drift) Observe(x sim.Sample, t float64) {
	v, ok := d.read(x)
	if !ok {
		return
	}
	if d.samples == 0 {
		d.initial = v
	}
	d.samples++
	if d.initial != 0 {
		d.maxDrift = math.Max(d.maxDrift, math.Abs(v-d.initial)/math.Abs(d.initial))
	}
}

func (d *Drift) Value() float64 { return d.maxDrift }
