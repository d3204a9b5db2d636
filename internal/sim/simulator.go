package sim

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	model     Stepper
	driver    Driver
	metrics   []Metric
	observers []Observer
}

// New creates a simulator for model. driver may be nil.
func New(model Stepper, driver Driver) *Simulator {
	return &Simulator{
		model:     model,
		driver:    driver,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run steps the model for cfg.Duration seconds, recording a sample before
// the first step and after every step. On failure the partial result is
// returned with the error.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := StepCount(cfg)
	labels := s.model.Labels()
	result := &Result{
		Labels:  labels,
		Samples: make([]Sample, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		if err := m.Reset(labels); err != nil {
			return nil, fmt.Errorf("metric %s: %w", m.Name(), err)
		}
	}

	t := 0.0
	x := Sample(s.model.Sample())
	s.record(result, x, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if s.driver != nil {
			if err := s.driver.Apply(t); err != nil {
				return result, SimError{Time: t, Step: i, Message: "apply inputs", Err: err}
			}
		}
		if err := s.model.Step(cfg.Dt); err != nil {
			return result, SimError{Time: t, Step: i, Err: err}
		}

		t = float64(i+1) * cfg.Dt
		x = Sample(s.model.Sample())
		if cfg.ValidateState && !x.IsValid() {
			return result, SimError{Time: t, Step: i, Err: ErrInvalidState}
		}
		s.record(result, x, t)
		result.Steps++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (s *Simulator) record(result *Result, x Sample, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, t)
	}
	result.Samples = append(result.Samples, x.Clone())
	result.Times = append(result.Times, t)
}

// StepCount is the number of whole steps that fit in the duration.
func StepCount(cfg Config) int {
	return int(math.Floor(cfg.Duration/cfg.Dt + 1e-9))
}

func validateConfig(cfg Config) error {
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if !(cfg.Duration > 0) || math.IsInf(cfg.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}
