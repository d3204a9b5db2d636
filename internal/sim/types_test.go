package sim

import (
	"math"
	"testing"
)

func TestSample_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		valid  bool
	}{
		{"empty", Sample{}, true},
		{"normal", Sample{1.0, 2.0, 3.0}, true},
		{"zeros", Sample{0.0, 0.0}, true},
		{"with NaN", Sample{1.0, math.NaN()}, false},
		{"with +Inf", Sample{1.0, math.Inf(1)}, false},
		{"with -Inf", Sample{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sample.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestSample_Clone(t *testing.T) {
	s := Sample{1, 2}
	c := s.Clone()
	c[0] = 9
	if s[0] != 1 {
		t.Error("clone should not alias the original")
	}
}

func TestSimError(t *testing.T) {
	e := SimError{Time: 1.5, Step: 15, Message: "invalid state"}
	if e.Error() != "step 15 (t=1.5000): invalid state" {
		t.Errorf("unexpected message %q", e.Error())
	}
	wrapped := SimError{Step: 1, Message: "apply inputs", Err: ErrInvalidState}
	if wrapped.Unwrap() != ErrInvalidState {
		t.Error("expected wrapped error")
	}
}
