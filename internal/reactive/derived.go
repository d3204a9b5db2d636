package reactive

import "fmt"

// Derived is a read-only value produced by a pure function of its sources.
// It computes once on construction and again, synchronously, every time any
// source changes. Subscribers are notified only when the result differs from
// the previous one.
type Derived[T any] struct {
	id        uint64
	compute   func() T
	value     T
	equal     func(a, b T) bool
	sources   []Source
	unlinks   []Unlink
	hub       hub[T]
	suspended bool
	stale     bool
	notifying bool
}

// NewDerived creates a derived value. compute must read only the listed
// sources (plus immutable data) so that the dependency graph is exactly what
// Sources reports.
func NewDerived[T any](compute func() T, sources ...Source) *Derived[T] {
	d := &Derived[T]{
		id:      nextID(),
		compute: compute,
		sources: sources,
	}
	d.value = compute()
	d.unlinks = make([]Unlink, 0, len(sources))
	for _, s := range sources {
		d.unlinks = append(d.unlinks, s.observe(d.invalidate))
	}
	return d
}

// WithEquals replaces the equality used to suppress redundant notifications.
func (d *Derived[T]) WithEquals(fn func(a, b T) bool) *Derived[T] {
	d.equal = fn
	return d
}

// ID returns the unique identifier of this value.
func (d *Derived[T]) ID() uint64 { return d.id }

// Get returns the current value.
func (d *Derived[T]) Get() T { return d.value }

// Any returns the current value boxed.
func (d *Derived[T]) Any() any { return d.value }

// Sources returns the values this one depends on, in declaration order.
func (d *Derived[T]) Sources() []Source {
	out := make([]Source, len(d.sources))
	copy(out, d.sources)
	return out
}

// Link calls fn with the current value now and on every change afterwards.
func (d *Derived[T]) Link(fn func(T)) Unlink {
	u := d.hub.add(fn)
	fn(d.value)
	return u
}

// LazyLink calls fn on future changes only.
func (d *Derived[T]) LazyLink(fn func(T)) Unlink { return d.hub.add(fn) }

// Subscribers reports how many listeners are attached.
func (d *Derived[T]) Subscribers() int { return d.hub.len() }

// Suspend defers recomputation. Source changes that arrive while suspended
// are remembered; Resume applies them with a single recompute.
func (d *Derived[T]) Suspend() { d.suspended = true }

// Resume re-enables recomputation and forces one recompute.
func (d *Derived[T]) Resume() {
	d.suspended = false
	d.stale = false
	d.Recompute()
}

// Recompute evaluates the function now and notifies if the result changed.
func (d *Derived[T]) Recompute() {
	next := d.compute()
	if d.equals(d.value, next) {
		return
	}
	if d.notifying {
		panic(fmt.Sprintf("reactive: derived %d recomputed from its own subscriber (cycle)", d.id))
	}
	d.value = next
	d.notifying = true
	defer func() { d.notifying = false }()
	d.hub.notify(next)
}

// Dispose detaches the value from its sources. It keeps its last value.
func (d *Derived[T]) Dispose() {
	for _, u := range d.unlinks {
		u()
	}
	d.unlinks = nil
}

func (d *Derived[T]) invalidate() {
	if d.suspended {
		d.stale = true
		return
	}
	d.Recompute()
}

func (d *Derived[T]) observe(fn func()) Unlink {
	return d.hub.add(func(T) { fn() })
}

func (d *Derived[T]) equals(a, b T) bool {
	if d.equal != nil {
		return d.equal(a, b)
	}
	return defaultEquals(a, b)
}
