package solute

import (
	"errors"
	"testing"
)

func TestAbsorptivityLookup(t *testing.T) {
	table := DrinkMix.Absorptivity

	got, err := table.At(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != drinkMixAbsorptivity[120] {
		t.Errorf("expected entry 120 (%v), got %v", drinkMixAbsorptivity[120], got)
	}

	frac, err := table.At(500.9)
	if err != nil || frac != got {
		t.Errorf("fractional wavelength should floor to 500, got %v (%v)", frac, err)
	}

	for _, bad := range []float64{900, 379.99, 781} {
		if _, err := table.At(bad); !errors.Is(err, ErrWavelengthOutOfRange) {
			t.Errorf("At(%v): expected ErrWavelengthOutOfRange, got %v", bad, err)
		}
	}
}

func TestAbsorptivityBoundaries(t *testing.T) {
	table := CopperSulfate.Absorptivity
	lo, err := table.At(MinWavelength)
	if err != nil || lo != copperSulfateAbsorptivity[0] {
		t.Errorf("At(min) = %v, %v", lo, err)
	}
	hi, err := table.At(MaxWavelength)
	if err != nil || hi != copperSulfateAbsorptivity[tableSize-1] {
		t.Errorf("At(max) = %v, %v", hi, err)
	}
}

func TestPeakWavelength(t *testing.T) {
	for _, s := range WithSpectrum() {
		t.Run(s.Key, func(t *testing.T) {
			peak := s.Absorptivity.MustAt(float64(s.PeakWavelength()))
			for wl := MinWavelength; wl <= MaxWavelength; wl++ {
				v := s.Absorptivity.MustAt(float64(wl))
				if v > peak {
					t.Fatalf("absorptivity at %d (%v) exceeds peak %d (%v)", wl, v, s.PeakWavelength(), peak)
				}
				if v == peak && wl < s.PeakWavelength() {
					t.Fatalf("tie at %d should win over %d", wl, s.PeakWavelength())
				}
			}
		})
	}

	if DrinkMix.PeakWavelength() != 508 {
		t.Errorf("expected drink mix peak 508, got %d", DrinkMix.PeakWavelength())
	}
	if SodiumChloride.PeakWavelength() != 0 {
		t.Error("solute without spectrum should report no peak")
	}
}

func TestPeakTieTakesFirst(t *testing.T) {
	values := make([]float64, tableSize)
	values[10] = 3
	values[20] = 3
	table, err := NewAbsorptivityTable(values)
	if err != nil {
		t.Fatal(err)
	}
	if table.Peak() != MinWavelength+10 {
		t.Errorf("expected %d, got %d", MinWavelength+10, table.Peak())
	}
}

func TestTableSize(t *testing.T) {
	_, err := NewAbsorptivityTable(make([]float64, 185))
	if !errors.Is(err, ErrTableSize) {
		t.Errorf("expected ErrTableSize, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("mustTable should panic on wrong size")
		}
	}()
	mustTable([]float64{1, 2, 3})
}

func TestTableIsCopied(t *testing.T) {
	values := make([]float64, tableSize)
	table, _ := NewAbsorptivityTable(values)
	values[0] = 99
	if table.MustAt(MinWavelength) != 0 {
		t.Error("table should not alias its input")
	}
	out := table.Values()
	out[0] = 42
	if table.MustAt(MinWavelength) != 0 {
		t.Error("Values should return a copy")
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	if len(cat) != 9 {
		t.Fatalf("expected 9 solutes, got %d", len(cat))
	}
	if cat[0] != DrinkMix || cat[len(cat)-1] != SodiumChloride {
		t.Error("unexpected catalog order")
	}
	if DrinkMix.SaturatedConcentration != 5.5 {
		t.Errorf("drink mix saturation: got %v", DrinkMix.SaturatedConcentration)
	}
	for _, s := range cat {
		if s.ParticleSize != DefaultParticleSize || s.ParticlesPerMole != DefaultParticlesPerMole {
			t.Errorf("%s: unexpected particle defaults", s.Key)
		}
	}
	if PotassiumPermanganate.ParticleColor != Black {
		t.Error("permanganate particles should be black")
	}
	if CopperSulfate.ParticleColor != CopperSulfate.Colors.MaxColor {
		t.Error("particle color should default to the max color")
	}
	if len(WithSpectrum()) != 8 {
		t.Errorf("expected 8 solutes with spectra, got %d", len(WithSpectrum()))
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want *Solute
	}{
		{"drink_mix", DrinkMix},
		{"Drink Mix", DrinkMix},
		{"kmno4", PotassiumPermanganate},
		{" CuSO4 ", CopperSulfate},
		{"nickel (II) chloride", NickelIIChloride},
	}
	for _, tt := range tests {
		got, err := ByName(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ByName(%q) = %v, %v", tt.in, got, err)
		}
	}

	if _, err := ByName("lemonade"); !errors.Is(err, ErrUnknownSolute) {
		t.Errorf("expected ErrUnknownSolute, got %v", err)
	}
}

func TestColorScheme(t *testing.T) {
	s := DrinkMix.Colors
	tests := []struct {
		name string
		c    float64
		want Color
	}{
		{"zero", 0, s.MinColor},
		{"mid", 0.05, s.MidColor},
		{"max", 5.96, s.MaxColor},
		{"above max", 10, s.MaxColor},
		{"half to mid", 0.025, Interpolate(s.MinColor, s.MidColor, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ConcentrationToColor(tt.c); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterpolate(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 100, 10)
	if got := Interpolate(a, b, 0.5); got != (Color{R: 128, G: 50, B: 5, A: 255}) {
		t.Errorf("unexpected midpoint %v", got)
	}
	if Interpolate(a, b, -1) != a || Interpolate(a, b, 2) != b {
		t.Error("t should be clamped")
	}
	if RGB(255, 0, 16).Hex() != "#ff0010" {
		t.Errorf("unexpected hex %s", RGB(255, 0, 16).Hex())
	}
}
