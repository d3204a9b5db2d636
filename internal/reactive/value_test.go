package reactive

import (
	"math"
	"strings"
	"testing"
)

func TestValueSetNotifies(t *testing.T) {
	v := NewValue(1)
	var got []int
	v.LazyLink(func(x int) { got = append(got, x) })

	v.Set(2)
	v.Set(2)
	v.Set(3)

	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("expected [2 3], got %v", got)
	}
}

func TestValueLinkFiresImmediately(t *testing.T) {
	v := NewValue("a")
	var got []string
	v.Link(func(s string) { got = append(got, s) })
	v.Set("b")

	if strings.Join(got, ",") != "a,b" {
		t.Errorf("expected a,b got %v", got)
	}
}

func TestValueUnlink(t *testing.T) {
	v := NewValue(0)
	calls := 0
	unlink := v.LazyLink(func(int) { calls++ })
	v.Set(1)
	unlink()
	unlink()
	v.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if v.Subscribers() != 0 {
		t.Errorf("expected no subscribers, got %d", v.Subscribers())
	}
}

func TestValueSubscriptionOrder(t *testing.T) {
	v := NewValue(0)
	var order []string
	v.LazyLink(func(int) { order = append(order, "first") })
	v.LazyLink(func(int) { order = append(order, "second") })
	v.LazyLink(func(int) { order = append(order, "third") })
	v.Set(1)

	if strings.Join(order, ",") != "first,second,third" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestNumberClamp(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"inside", 0.3, 0.3},
		{"below", -1, 0},
		{"above", 5, 1},
		{"min", 0, 0},
		{"max", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewNumber(0.5, 0, 1)
			v.Set(tt.set)
			if v.Get() != tt.want {
				t.Errorf("Set(%v): got %v, want %v", tt.set, v.Get(), tt.want)
			}
		})
	}
}

func TestNumberClampsInitial(t *testing.T) {
	v := NewNumber(3, 0, 1)
	if v.Get() != 1 || v.Initial() != 1 {
		t.Errorf("expected clamped initial 1, got %v/%v", v.Get(), v.Initial())
	}
}

func TestNumberIgnoresNaN(t *testing.T) {
	v := NewNumber(0.5, 0, 1)
	calls := 0
	v.LazyLink(func(float64) { calls++ })
	v.Set(math.NaN())
	v.Set(math.NaN())

	if v.Get() != 0.5 {
		t.Errorf("expected NaN to keep 0.5, got %v", v.Get())
	}
	if calls != 0 {
		t.Errorf("expected no notification for NaN, got %d", calls)
	}

	if w := NewNumber(math.NaN(), 2, 3); w.Get() != 2 || w.Initial() != 2 {
		t.Errorf("expected NaN initial to become min 2, got %v/%v", w.Get(), w.Initial())
	}
}

func TestNumberInvalidRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewNumber(0, 1, 0)
}

func TestClampedSetIsNoOpAtBoundary(t *testing.T) {
	v := NewNumber(1, 0, 1)
	calls := 0
	v.LazyLink(func(float64) { calls++ })
	v.Set(2)

	if calls != 0 {
		t.Errorf("expected no notification when clamped value is unchanged, got %d", calls)
	}
}

func TestValueReset(t *testing.T) {
	v := NewValue(10)
	v.Set(3)
	v.Reset()
	if v.Get() != 10 {
		t.Errorf("expected 10 after reset, got %d", v.Get())
	}
}

func TestValueUpdate(t *testing.T) {
	v := NewValue(2)
	v.Update(func(x int) int { return x * 3 })
	if v.Get() != 6 {
		t.Errorf("expected 6, got %d", v.Get())
	}
}

func TestValueCyclePanics(t *testing.T) {
	v := NewValue(0)
	v.LazyLink(func(x int) { v.Set(x + 1) })

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "cycle") {
			t.Errorf("unexpected panic message %v", r)
		}
	}()
	v.Set(1)
}

func TestValueSetEqualInsideSubscriberIsAllowed(t *testing.T) {
	v := NewValue(0)
	v.LazyLink(func(x int) { v.Set(x) })
	v.Set(5)
	if v.Get() != 5 {
		t.Errorf("expected 5, got %d", v.Get())
	}
}

func TestValueWithEquals(t *testing.T) {
	v := NewValue(1.0).WithEquals(func(a, b float64) bool {
		d := a - b
		return d < 0.1 && d > -0.1
	})
	calls := 0
	v.LazyLink(func(float64) { calls++ })
	v.Set(1.05)
	v.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if v.Get() != 2 {
		t.Errorf("expected 2, got %v", v.Get())
	}
}

func TestDefaultEquals(t *testing.T) {
	type pair struct{ A, B int }
	a, b := &pair{1, 2}, &pair{1, 2}

	if !defaultEquals(pair{1, 2}, pair{1, 2}) {
		t.Error("equal structs should be equal")
	}
	if defaultEquals(a, b) {
		t.Error("distinct pointers should not be equal")
	}
	if !defaultEquals([]int{1, 2}, []int{1, 2}) {
		t.Error("slices should compare deeply")
	}
	var x, y any = []int{1}, []int{1}
	if !defaultEquals(x, y) {
		t.Error("interfaces holding slices should compare deeply")
	}
}

func TestValueIDsUnique(t *testing.T) {
	a, b := NewValue(0), NewValue(0)
	if a.ID() == b.ID() {
		t.Error("ids should differ")
	}
}
