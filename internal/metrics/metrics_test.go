package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/beerslab/internal/sim"
)

var labels = []string{"volume", "concentration"}

func feed(t *testing.T, m sim.Metric, rows [][2]float64) float64 {
	t.Helper()
	if err := m.Reset(labels); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for i, r := range rows {
		m.Observe(sim.Sample{r[0], r[1]}, float64(i)*0.5)
	}
	return m.Value()
}

func TestMetrics(t *testing.T) {
	rows := [][2]float64{{0.5, 0}, {0.6, 2}, {0.7, 5.5}, {0.4, 5.5}, {0.4, 3}}

	tests := []struct {
		name   string
		metric sim.Metric
		want   float64
	}{
		{"peak", NewPeak("concentration"), 5.5},
		{"mean", NewMean("concentration"), 16.0 / 5},
		{"final", NewFinal("volume"), 0.4},
		{"drift", NewDrift("volume"), 0.4},
		{"time above", NewTimeAbove("concentration", 5), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feed(t, tt.metric, rows); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s = %v, want %v", tt.metric.Name(), got, tt.want)
			}
		})
	}
}

func TestPeakOfNegativeChannel(t *testing.T) {
	got := feed(t, NewPeak("volume"), [][2]float64{{-3, 0}, {-1, 0}, {-2, 0}})
	if got != -1 {
		t.Errorf("expected -1, got %v", got)
	}
}

func TestMetricReset(t *testing.T) {
	m := NewMean("volume")
	feed(t, m, [][2]float64{{1, 0}, {3, 0}})
	if got := feed(t, m, [][2]float64{{5, 0}}); got != 5 {
		t.Errorf("expected 5 after reset, got %v", got)
	}
}

func TestUnknownChannel(t *testing.T) {
	m := NewFinal("pressure")
	if err := m.Reset(labels); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("expected ErrUnknownChannel, got %v", err)
	}
	m.Observe(sim.Sample{1, 2}, 0)
	if m.Value() != 0 {
		t.Error("unbound metric should not observe")
	}
}

func TestNames(t *testing.T) {
	if NewTimeAbove("concentration", 1).Name() != "time_above_concentration" {
		t.Error("unexpected name")
	}
	if NewPeak("volume").Name() != "peak_volume" {
		t.Error("unexpected name")
	}
}
