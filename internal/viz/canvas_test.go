package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 2)
	if c.DotsWide() != 4 || c.DotsHigh() != 8 {
		t.Fatalf("unexpected dot size %dx%d", c.DotsWide(), c.DotsHigh())
	}

	c.Set(0, 0)
	c.Set(3, 7)
	if !c.Lit(0, 0) || !c.Lit(3, 7) {
		t.Error("expected dots to be lit")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected braille dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[1][1] != 0x2880 {
		t.Errorf("expected braille dot 8, got %U", c.Grid[1][1])
	}

	c.Unset(0, 0)
	if c.Lit(0, 0) || c.Grid[0][0] != brailleBlank {
		t.Error("expected dot cleared")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	if c.Lit(-1, 0) || c.Lit(100, 100) {
		t.Error("off-canvas dots should be ignored")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i <= 7; i++ {
		if !c.Lit(i, i) {
			t.Errorf("diagonal dot (%d,%d) not lit", i, i)
		}
	}

	count := 0
	c.Dots(func(x, y int) { count++ })
	if count != 8 {
		t.Errorf("expected 8 lit dots, got %d", count)
	}

	c.Clear()
	c.Dots(func(x, y int) { t.Errorf("unexpected dot after clear at (%d,%d)", x, y) })
}

func TestCanvasShade(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Shade(0, 0, 7, 15, 1)
	n := 0
	c.Dots(func(x, y int) { n++ })
	if n != 8*16 {
		t.Errorf("step 1 should fill solid, got %d dots", n)
	}

	c.Clear()
	c.Shade(0, 0, 7, 15, 2)
	n = 0
	c.Dots(func(x, y int) { n++ })
	if n != 8*16/2 {
		t.Errorf("step 2 should fill half, got %d dots", n)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 3 {
		t.Errorf("unexpected canvas text %q", c.String())
	}
}
