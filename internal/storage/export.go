package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/beerslab/internal/sim"
)

// ExportData is the JSON form of a recorded run.
type ExportData struct {
	Scenario string               `json:"scenario"`
	Solute   string               `json:"solute,omitempty"`
	Dt       float64              `json:"dt"`
	Duration float64              `json:"duration"`
	Seed     int64                `json:"seed"`
	Steps    int                  `json:"steps"`
	Times    []float64            `json:"times"`
	Series   map[string][]float64 `json:"series"`
	Metrics  map[string]float64   `json:"metrics"`
}

// ExportJSON writes the run as one series per label.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		Scenario: meta.Scenario,
		Solute:   meta.Solute,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Seed:     meta.Seed,
		Steps:    result.Steps,
		Times:    result.Times,
		Series:   make(map[string][]float64, len(result.Labels)),
		Metrics:  result.Metrics,
	}
	for _, label := range result.Labels {
		data.Series[label], _ = result.Channel(label)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
