package sim

import "math"

// Sample is one row of recorded model state.
type Sample []float64

func (s Sample) Clone() Sample {
	c := make(Sample, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every value is finite.
func (s Sample) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Stepper is a model advanced by a fixed clock.
type Stepper interface {
	Step(dt float64) error
	Sample() []float64
	Labels() []string
}

// Driver changes model inputs before each step, the way a user would.
type Driver interface {
	Apply(t float64) error
}

type Metric interface {
	Name() string
	// Reset prepares the metric for a run recording the given channels.
	Reset(labels []string) error
	Observe(x Sample, t float64)
	Value() float64
}

type Observer interface {
	OnStep(x Sample, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	ValidateState bool
}

type Result struct {
	Labels  []string
	Samples []Sample
	Times   []float64
	Metrics map[string]float64
	Steps   int
}

// Channel returns the recorded series for label.
func (r *Result) Channel(label string) ([]float64, bool) {
	idx := -1
	for i, l := range r.Labels {
		if l == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s[idx]
	}
	return out, true
}

// Final returns the last recorded sample.
func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return nil
	}
	return r.Samples[len(r.Samples)-1]
}
