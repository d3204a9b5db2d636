// Package scenario runs scripted experiments against the concentration and
// Beer's law models: timed input events loaded from yaml, built-in presets,
// seed ensembles and optical sweeps.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/beerslab/internal/concentration"
)

var (
	ErrUnknownAction = errors.New("scenario: unknown action")
	ErrUnknownPreset = errors.New("scenario: unknown preset")
	ErrInvalid       = errors.New("scenario: invalid scenario")
)

// Action is the input an Event applies to the model.
type Action string

const (
	SolventFaucet Action = "solvent"        // open the solvent faucet to Value (0..1)
	DrainFaucet   Action = "drain"          // open the drain faucet to Value (0..1)
	Evaporate     Action = "evaporate"      // run the evaporator at Value (0..1)
	Dropper       Action = "dropper"        // dispense stock solution
	Shake         Action = "shake"          // shake the shaker every step
	AddSolute     Action = "add_solute"     // add Value mol at once
	AddSolvent    Action = "add_solvent"    // add Value L at once
	RemoveSolvent Action = "remove_solvent" // remove Value L at once
	SelectSolute  Action = "solute"         // select the solute named Name
	Form          Action = "form"           // switch to the form named Name
	Reset         Action = "reset"
)

var actions = map[Action]bool{
	SolventFaucet: true, DrainFaucet: true, Evaporate: true, Dropper: true, Shake: true,
	AddSolute: true, AddSolvent: true, RemoveSolvent: true, SelectSolute: true, Form: true, Reset: true,
}

// continuous reports whether the action stays on until Event.Until.
func (a Action) continuous() bool {
	switch a {
	case SolventFaucet, DrainFaucet, Evaporate, Dropper, Shake:
		return true
	}
	return false
}

// Event is one timed input. Continuous actions run from At until Until; a
// zero Until leaves them on for the rest of the run.
type Event struct {
	At     float64 `yaml:"at" json:"at"`
	Until  float64 `yaml:"until,omitempty" json:"until,omitempty"`
	Action Action  `yaml:"action" json:"action"`
	Value  float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
}

type Scenario struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Solute      string  `yaml:"solute" json:"solute"`
	Form        string  `yaml:"form" json:"form"`
	Volume      float64 `yaml:"volume,omitempty" json:"volume,omitempty"`
	Duration    float64 `yaml:"duration" json:"duration"`
	Dt          float64 `yaml:"dt,omitempty" json:"dt,omitempty"`
	Events      []Event `yaml:"events" json:"events"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a yaml scenario. Events are sorted by start
// time, keeping file order for equal times.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].At < s.Events[j].At })
	return &s, nil
}

func (s *Scenario) Validate() error {
	if !(s.Duration > 0) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, s.Duration)
	}
	if s.Dt < 0 {
		return fmt.Errorf("%w: negative dt %g", ErrInvalid, s.Dt)
	}
	if s.Form != "" {
		if _, err := parseForm(s.Form); err != nil {
			return err
		}
	}
	for i, e := range s.Events {
		if !actions[e.Action] {
			return fmt.Errorf("%w: event %d: %q", ErrUnknownAction, i, e.Action)
		}
		if e.At < 0 {
			return fmt.Errorf("%w: event %d starts at negative time %g", ErrInvalid, i, e.At)
		}
		if e.Until != 0 && e.Until <= e.At {
			return fmt.Errorf("%w: event %d ends at %g before it starts at %g", ErrInvalid, i, e.Until, e.At)
		}
		if e.Action == Form {
			if _, err := parseForm(e.Name); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
	}
	return nil
}

func parseForm(s string) (concentration.SoluteForm, error) {
	switch f := concentration.SoluteForm(s); f {
	case concentration.Solid, concentration.StockSolution:
		return f, nil
	}
	return "", fmt.Errorf("%w: solute form %q (want %q or %q)", ErrInvalid, s, concentration.Solid, concentration.StockSolution)
}
