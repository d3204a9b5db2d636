package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const dilutionYAML = `
name: custom
description: two events out of order
solute: copper sulfate
form: solution
duration: 2
events:
  - at: 1
    until: 1.5
    action: drain
    value: 0.5
  - at: 0
    action: add_solute
    value: 0.1
  - at: 1
    action: form
    name: solid
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(dilutionYAML))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "custom" || s.Solute != "copper sulfate" || s.Duration != 2 {
		t.Errorf("unexpected header %+v", s)
	}

	var got []Action
	for _, e := range s.Events {
		got = append(got, e.Action)
	}
	want := []Action{AddSolute, DrainFaucet, Form}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events not sorted stably: got %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(dilutionYAML), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Events) != 3 {
		t.Errorf("expected 3 events, got %d", len(s.Events))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown action", "duration: 1\nevents:\n  - {at: 0, action: stir}\n", ErrUnknownAction},
		{"no duration", "events: []\n", ErrInvalid},
		{"bad form", "duration: 1\nform: gas\n", ErrInvalid},
		{"bad form event", "duration: 1\nevents:\n  - {at: 0, action: form, name: gas}\n", ErrInvalid},
		{"ends before start", "duration: 1\nevents:\n  - {at: 0.5, until: 0.2, action: drain}\n", ErrInvalid},
		{"negative start", "duration: 1\nevents:\n  - {at: -1, action: reset}\n", ErrInvalid},
		{"negative dt", "duration: 1\ndt: -0.1\n", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Parse([]byte("duration: [1")); err == nil {
		t.Error("expected yaml error")
	}
}

func TestPresets(t *testing.T) {
	want := []string{"dilution", "drain", "dropper", "evaporate", "saturate", "shaker"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetNames() = %v, want %v", got, want)
	}

	for _, name := range want {
		p, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}

	if _, err := Preset("boil"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetIsCopy(t *testing.T) {
	p, _ := Preset("dilution")
	p.Events[0].Value = 99
	p.Duration = 1

	again, _ := Preset("dilution")
	if again.Events[0].Value == 99 || again.Duration == 1 {
		t.Error("preset was modified through a returned copy")
	}
}
