package geom

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	a := V(3, 4)
	if a.Len() != 5 {
		t.Errorf("expected length 5, got %f", a.Len())
	}
	if got := a.Add(V(1, 1)); got != V(4, 5) {
		t.Errorf("add: got %v", got)
	}
	if got := a.Sub(V(1, 1)); got != V(2, 3) {
		t.Errorf("sub: got %v", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("scale: got %v", got)
	}
	p := Polar(2, math.Pi/2)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-2) > 1e-12 {
		t.Errorf("polar: got %v", p)
	}
}

func TestBounds2(t *testing.T) {
	b := Bounds2{MinX: 10, MinY: 150, MaxX: 835, MaxY: 680}

	tests := []struct {
		name string
		in   Vec2
		want Vec2
		ok   bool
	}{
		{"inside", V(100, 200), V(100, 200), true},
		{"left", V(0, 200), V(10, 200), false},
		{"below", V(100, 900), V(100, 680), false},
		{"corner", V(900, 0), V(835, 150), false},
		{"edge", V(10, 150), V(10, 150), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if b.Contains(tt.in) != tt.ok {
				t.Errorf("Contains(%v) = %v", tt.in, !tt.ok)
			}
			if got := b.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if b.Width() != 825 || b.Height() != 530 {
		t.Errorf("unexpected size %fx%f", b.Width(), b.Height())
	}
}

func TestMovable(t *testing.T) {
	m := NewMovable(V(350, 225), Bounds2{MinX: 260, MinY: 225, MaxX: 580, MaxY: 225})

	m.MoveTo(V(1000, 0))
	if got := m.Location.Get(); got != V(580, 225) {
		t.Errorf("expected clamp to (580,225), got %v", got)
	}

	m.Reset()
	if got := m.Location.Get(); got != V(350, 225) {
		t.Errorf("expected reset to (350,225), got %v", got)
	}
}
