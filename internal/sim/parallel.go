package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Factory builds an independent simulator for one run. Models are not safe
// for concurrent use, so every run gets its own.
type Factory func(seed int64) (*Simulator, error)

// Ensemble runs the same setup several times with consecutive seeds, at most
// GOMAXPROCS runs at a time.
type Ensemble struct {
	factory   Factory
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory Factory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per seed in seed order. The first failing run
// cancels the others.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range e.numRuns {
		runCfg := cfg
		runCfg.Seed = e.seedStart + int64(i)
		g.Go(func() error {
			s, err := e.factory(runCfg.Seed)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, runCfg.Seed, err)
			}
			results[i], err = s.Run(ctx, runCfg)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
