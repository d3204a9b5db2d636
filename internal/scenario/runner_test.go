package scenario

import (
	"bytes"
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/config"
	"github.com/san-kum/beerslab/internal/logging"
	"github.com/san-kum/beerslab/internal/sim"
)

func runPreset(t *testing.T, name string) *sim.Result {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Dt = 0.1
	p, err := Preset(name)
	if err != nil {
		t.Fatal(err)
	}
	result, err := NewRunner(cfg, nil).Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func final(t *testing.T, r *sim.Result, label string) float64 {
	t.Helper()
	series, ok := r.Channel(label)
	if !ok {
		t.Fatalf("no channel %s", label)
	}
	return series[len(series)-1]
}

func near(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %g, want %g", label, got, want)
	}
}

func TestDilutionPreset(t *testing.T) {
	r := runPreset(t, "dilution")

	near(t, "volume", final(t, r, "volume"), 1.0)
	near(t, "concentration", final(t, r, "concentration"), 2.0)
	near(t, "peak", r.Metrics["peak_concentration"], 4.0)
	if r.Steps != 40 {
		t.Errorf("expected 40 steps, got %d", r.Steps)
	}
}

func TestDrainPreset(t *testing.T) {
	r := runPreset(t, "drain")

	near(t, "volume", final(t, r, "volume"), 0.25)
	near(t, "concentration", final(t, r, "concentration"), 0.8)
	near(t, "solute", final(t, r, "solute_amount"), 0.2)
}

func TestSaturatePreset(t *testing.T) {
	r := runPreset(t, "saturate")

	near(t, "peak", r.Metrics["peak_concentration"], 5.5)
	near(t, "peak precipitate", r.Metrics["peak_precipitate_amount"], 1.25)
	near(t, "concentration", final(t, r, "concentration"), 4.0)
	if final(t, r, "saturated") != 0 {
		t.Error("solution should be unsaturated after dilution")
	}
	if r.Metrics["time_above_saturated"] <= 0 {
		t.Error("expected time spent saturated")
	}
}

func TestEvaporatePreset(t *testing.T) {
	r := runPreset(t, "evaporate")

	near(t, "volume", final(t, r, "volume"), 0.025)
	near(t, "concentration", final(t, r, "concentration"), 5.64)
	if final(t, r, "saturated") != 1 {
		t.Error("evaporated solution should be saturated")
	}
}

func TestDropperPreset(t *testing.T) {
	r := runPreset(t, "dropper")

	near(t, "volume", final(t, r, "volume"), 0.625)
	near(t, "solute", final(t, r, "solute_amount"), 0.625)
	near(t, "concentration", final(t, r, "concentration"), 1.0)
}

func TestShakerPreset(t *testing.T) {
	r := runPreset(t, "shaker")

	amount := final(t, r, "solute_amount")
	if amount <= 0 {
		t.Errorf("shaken particles should dissolve, solute amount %g", amount)
	}
	peak, _ := r.Channel("shaker_particles")
	maxParticles := 0.0
	for _, n := range peak {
		maxParticles = math.Max(maxParticles, n)
	}
	if maxParticles == 0 || maxParticles > 200 {
		t.Errorf("unexpected shaker particle peak %g", maxParticles)
	}
}

func TestRunDeterministic(t *testing.T) {
	a := runPreset(t, "shaker")
	b := runPreset(t, "shaker")
	if !reflect.DeepEqual(a.Samples, b.Samples) {
		t.Error("same seed should reproduce the run")
	}
}

func TestRunEnsemble(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dt = 0.1
	p, _ := Preset("drain")

	results, err := NewRunner(cfg, nil).RunEnsemble(context.Background(), p, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		near(t, "volume", final(t, r, "volume"), 0.25)
		if r.Steps != 30 {
			t.Errorf("run %d: expected 30 steps, got %d", i, r.Steps)
		}
	}
}

func TestRunnerLogs(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Dt = 0.5
	p, _ := Preset("drain")

	if _, err := NewRunner(cfg, logging.NewLogger("trace", &buf)).Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"running scenario", "scenario finished", "level=TRACE", "concentration="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestScenarioDtOverridesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	p, _ := Preset("drain")
	p.Dt = 0.5

	r, err := NewRunner(cfg, nil).Run(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if r.Steps != 6 {
		t.Errorf("expected 6 steps at dt 0.5, got %d", r.Steps)
	}
}

func TestOnModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dt = 0.5
	p, _ := Preset("dropper")

	var volumes []float64
	runner := NewRunner(cfg, nil)
	runner.OnModel(func(m *concentration.Model) {
		if m.SoluteForm.Get() != concentration.StockSolution {
			t.Error("hook should see the prepared model")
		}
		m.Solution.Volume.LazyLink(func(v float64) { volumes = append(volumes, v) })
	})

	if _, err := runner.Run(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if len(volumes) == 0 {
		t.Error("hook subscription saw no volume changes")
	}
}
