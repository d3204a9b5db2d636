package metrics

import "github.com/san-kum/beerslab/internal/sim"

// TimeAbove is the simulated time a channel spent strictly above a
// threshold. Each sample counts for the interval since the previous one.
type TimeAbove struct {
	channel
	threshold float64
	total     float64
	lastT     float64
	started   bool
}

func NewTimeAbove(label string, threshold float64) *TimeAbove {
	return &TimeAbove{channel: channel{label: label}, threshold: threshold}
}

func (a *TimeAbove) Name() string { return "time_above_" + a.label }

func (a *TimeAbove) Reset(labels []string) error {
	a.total, a.lastT, a.started = 0, 0, false
	return a.bind(labels)
}

func (a *TimeAbove) Observe(x sim.Sample, t float64) {
	v, ok := a.read(x)
	if !ok {
		return
	}
	if a.started && v > a.threshold {
		a.total += t - a.lastT
	}
	a.lastT = t
	a.started = true
}

func (a *TimeAbove) Value() float64 { return a.total }
