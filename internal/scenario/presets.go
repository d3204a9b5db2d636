package scenario

import (
	"fmt"
	"sort"
)

var presets = map[string]Scenario{
	"dilution": {
		Name: "dilution", Description: "dissolve drink mix, then dilute it with the solvent faucet",
		Solute: "drink_mix", Form: "solid", Duration: 4,
		Events: []Event{
			{At: 0, Action: AddSolute, Value: 2},
			{At: 1, Until: 3, Action: SolventFaucet, Value: 1},
		},
	},
	"saturate": {
		Name: "saturate", Description: "add more solute than the solvent can hold, then dissolve the precipitate",
		Solute: "drink_mix", Form: "solid", Duration: 5,
		Events: []Event{
			{At: 0, Action: AddSolute, Value: 4},
			{At: 2, Until: 4, Action: SolventFaucet, Value: 1},
		},
	},
	"evaporate": {
		Name: "evaporate", Description: "concentrate a dilute solution until it saturates",
		Solute: "cobalt_ii_nitrate", Form: "solid", Duration: 3,
		Events: []Event{
			{At: 0, Action: AddSolute, Value: 1},
			{At: 0.5, Until: 2.4, Action: Evaporate, Value: 1},
		},
	},
	"drain": {
		Name: "drain", Description: "drain half the solution; concentration stays put",
		Solute: "copper_sulfate", Form: "solid", Duration: 3,
		Events: []Event{
			{At: 0, Action: AddSolute, Value: 0.4},
			{At: 1, Until: 2, Action: DrainFaucet, Value: 1},
		},
	},
	"shaker": {
		Name: "shaker", Description: "shake solid solute into water",
		Solute: "potassium_permanganate", Form: "solid", Duration: 4,
		Events: []Event{
			{At: 0, Until: 2, Action: Shake},
		},
	},
	"dropper": {
		Name: "dropper", Description: "add stock solution with the dropper",
		Solute: "nickel_ii_chloride", Form: "solution", Duration: 4,
		Events: []Event{
			{At: 0.5, Until: 3, Action: Dropper},
		},
	},
}

// Preset returns a copy of the named built-in scenario.
func Preset(name string) (*Scenario, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	p.Events = append([]Event(nil), p.Events...)
	return &p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
