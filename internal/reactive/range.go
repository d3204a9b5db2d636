package reactive

// Range is a closed interval with a default value.
type Range struct {
	Min, Max, Default float64
}

func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// Valid reports whether the interval is ordered and holds its default.
func (r Range) Valid() bool { return r.Min <= r.Max && r.Contains(r.Default) }

// Normalize maps x in the range to [0, 1].
func (r Range) Normalize(x float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (x - r.Min) / (r.Max - r.Min)
}

// NewRanged creates a number clamped to r, holding r.Default.
func NewRanged(r Range) *Value[float64] { return NewNumber(r.Default, r.Min, r.Max) }
