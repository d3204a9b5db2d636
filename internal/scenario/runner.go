package scenario

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/config"
	"github.com/san-kum/beerslab/internal/logging"
	"github.com/san-kum/beerslab/internal/metrics"
	"github.com/san-kum/beerslab/internal/sim"
)

// Runner builds concentration models from config and runs scenarios on them.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	onModel []func(*concentration.Model)
}

func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// OnModel registers fn to be called with every model the runner prepares,
// before the run starts.
func (r *Runner) OnModel(fn func(*concentration.Model)) { r.onModel = append(r.onModel, fn) }

// DefaultMetrics returns a fresh set of summary metrics for one run.
func DefaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewPeak("concentration"),
		metrics.NewMean("concentration"),
		metrics.NewFinal("concentration"),
		metrics.NewFinal("volume"),
		metrics.NewFinal("solute_amount"),
		metrics.NewPeak("precipitate_amount"),
		metrics.NewDrift("volume"),
		metrics.NewTimeAbove("saturated", 0.5),
	}
}

// NewModel builds a model whose particle placement is driven by seed.
func (r *Runner) NewModel(seed int64) (*concentration.Model, error) {
	opts := r.cfg.Model.Options()
	opts.Rand = rand.New(rand.NewSource(seed))
	return concentration.NewModel(opts)
}

// Simulator prepares a model for s and wraps it with the scenario driver,
// the default metrics and a trace-level step logger.
func (r *Runner) Simulator(s *Scenario, seed int64) (*sim.Simulator, *concentration.Model, error) {
	m, err := r.NewModel(seed)
	if err != nil {
		return nil, nil, err
	}
	if err := Prepare(m, s); err != nil {
		return nil, nil, err
	}
	for _, fn := range r.onModel {
		fn(m)
	}
	simulator := sim.New(m, NewDriver(m, s))
	for _, metric := range DefaultMetrics() {
		simulator.AddMetric(metric)
	}
	simulator.AddObserver(&stepLogger{logger: r.logger.With("scenario", s.Name, "seed", seed), labels: m.Labels()})
	return simulator, m, nil
}

func (r *Runner) simConfig(s *Scenario) sim.Config {
	dt := s.Dt
	if dt == 0 {
		dt = r.cfg.Dt
	}
	return sim.Config{Dt: dt, Duration: s.Duration, Seed: r.cfg.Seed, ValidateState: true}
}

func (r *Runner) Run(ctx context.Context, s *Scenario) (*sim.Result, error) {
	simulator, _, err := r.Simulator(s, r.cfg.Seed)
	if err != nil {
		return nil, err
	}
	cfg := r.simConfig(s)
	r.logger.Info("running scenario", "name", s.Name, "dt", cfg.Dt, "duration", cfg.Duration, "seed", cfg.Seed)

	result, err := simulator.Run(ctx, cfg)
	if err != nil {
		r.logger.Error("scenario failed", "name", s.Name, "err", err)
		return result, err
	}
	r.logger.Info("scenario finished", "name", s.Name, "steps", result.Steps)
	return result, nil
}

// RunEnsemble runs s n times with consecutive seeds starting at the
// configured seed. Only particle placement depends on the seed.
func (r *Runner) RunEnsemble(ctx context.Context, s *Scenario, n int) ([]*sim.Result, error) {
	ensemble := sim.NewEnsemble(func(seed int64) (*sim.Simulator, error) {
		simulator, _, err := r.Simulator(s, seed)
		return simulator, err
	}, n, r.cfg.Seed)

	r.logger.Info("running ensemble", "name", s.Name, "runs", n)
	return ensemble.Run(ctx, r.simConfig(s))
}

type stepLogger struct {
	logger *slog.Logger
	labels []string
}

func (o *stepLogger) OnStep(x sim.Sample, t float64) {
	ctx := context.Background()
	if !o.logger.Enabled(ctx, logging.LevelTrace) {
		return
	}
	attrs := make([]any, 0, 2*len(x)+2)
	attrs = append(attrs, "t", t)
	for i, v := range x {
		attrs = append(attrs, o.labels[i], v)
	}
	o.logger.Log(ctx, logging.LevelTrace, "step", attrs...)
}
