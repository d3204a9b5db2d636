package reactive

// Emitter broadcasts events that are not values, such as "the particle
// population changed".
type Emitter[E any] struct {
	hub hub[E]
}

// On subscribes fn to future events.
func (e *Emitter[E]) On(fn func(E)) Unlink { return e.hub.add(fn) }

// Emit delivers ev to every subscriber in subscription order.
func (e *Emitter[E]) Emit(ev E) { e.hub.notify(ev) }

// Len reports the number of subscribers.
func (e *Emitter[E]) Len() int { return e.hub.len() }
