package reactive

import (
	"fmt"
	"math"
	"reflect"
	"sync/atomic"
)

var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

// Unlink removes a subscription. Calling it more than once is a no-op.
type Unlink func()

// Source is anything a Derived value can depend on.
type Source interface {
	ID() uint64
	observe(fn func()) Unlink
}

// Observable is a Source whose current value can be read without knowing its
// type. Both Value and Derived implement it.
type Observable interface {
	Source
	Any() any
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// hub holds subscribers in registration order.
type hub[T any] struct {
	subs []subscriber[T]
}

func (h *hub[T]) add(fn func(T)) Unlink {
	id := nextID()
	h.subs = append(h.subs, subscriber[T]{id: id, fn: fn})
	return func() { h.remove(id) }
}

// remove never writes into the backing array of a slice header that a
// running notify may still be ranging over.
func (h *hub[T]) remove(id uint64) {
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

func (h *hub[T]) notify(v T) {
	for _, s := range h.subs {
		s.fn(v)
	}
}

func (h *hub[T]) len() int { return len(h.subs) }

// Value is an observable value. Set is a no-op when the new value equals the
// current one; otherwise subscribers are notified synchronously, in the order
// they subscribed.
type Value[T any] struct {
	id        uint64
	value     T
	initial   T
	equal     func(a, b T) bool
	clamp     func(T) T
	hub       hub[T]
	notifying bool
}

// NewValue creates a value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		id:      nextID(),
		value:   initial,
		initial: initial,
	}
}

// NewNumber creates a float value clamped to [min, max]. Setting NaN keeps
// the current value; a NaN initial value becomes min.
func NewNumber(initial, min, max float64) *Value[float64] {
	if min > max {
		panic(fmt.Sprintf("reactive: invalid range [%g, %g]", min, max))
	}
	v := NewValue(initial)
	return v.WithClamp(func(x float64) float64 {
		if math.IsNaN(x) {
			if math.IsNaN(v.value) {
				return min
			}
			return v.value
		}
		return Clamp(x, min, max)
	})
}

// WithEquals replaces the equality used to decide whether Set changes the
// value.
func (v *Value[T]) WithEquals(fn func(a, b T) bool) *Value[T] {
	v.equal = fn
	return v
}

// WithClamp installs a function applied to every value before it is stored,
// including the initial value.
func (v *Value[T]) WithClamp(fn func(T) T) *Value[T] {
	v.clamp = fn
	v.value = fn(v.value)
	v.initial = fn(v.initial)
	return v
}

// ID returns the unique identifier of this value.
func (v *Value[T]) ID() uint64 { return v.id }

// Get returns the current value.
func (v *Value[T]) Get() T { return v.value }

// Any returns the current value boxed.
func (v *Value[T]) Any() any { return v.value }

// Initial returns the (clamped) value the Value was created with.
func (v *Value[T]) Initial() T { return v.initial }

// Set stores x and notifies subscribers if it differs from the current
// value. Setting a different value from inside one of this value's own
// subscribers is a dependency cycle and panics.
func (v *Value[T]) Set(x T) {
	if v.clamp != nil {
		x = v.clamp(x)
	}
	if v.equals(v.value, x) {
		return
	}
	if v.notifying {
		panic(fmt.Sprintf("reactive: value %d set from its own subscriber (cycle)", v.id))
	}
	v.value = x
	v.notifying = true
	defer func() { v.notifying = false }()
	v.hub.notify(x)
}

// Update sets the value to fn applied to the current value.
func (v *Value[T]) Update(fn func(T) T) { v.Set(fn(v.value)) }

// Reset restores the initial value.
func (v *Value[T]) Reset() { v.Set(v.initial) }

// Link calls fn with the current value now and with every accepted change
// afterwards.
func (v *Value[T]) Link(fn func(T)) Unlink {
	u := v.hub.add(fn)
	fn(v.value)
	return u
}

// LazyLink calls fn on future changes only.
func (v *Value[T]) LazyLink(fn func(T)) Unlink { return v.hub.add(fn) }

// Subscribers reports how many listeners are attached.
func (v *Value[T]) Subscribers() int { return v.hub.len() }

func (v *Value[T]) observe(fn func()) Unlink {
	return v.hub.add(func(T) { fn() })
}

func (v *Value[T]) equals(a, b T) bool {
	if v.equal != nil {
		return v.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for comparable types (pointer identity for pointers)
// and reflect.DeepEqual for everything else.
func defaultEquals[T any](a, b T) bool {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface && t.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// Clamp limits x to [min, max].
func Clamp(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}

// EqualPtr compares optional values by what they point to. Two nils are
// equal.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
