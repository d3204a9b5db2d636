// Package reactive provides the observable values the simulation models are
// built from.
//
//   - [Value]: a settable value with change notification
//   - [Derived]: a read-only value computed from explicit sources
//   - [Emitter]: a plain event stream for non-value notifications
//   - [Registry]: named access to values for tooling layered on a model
//
// Notification is synchronous and depth-first. Within one Set, subscribers
// run in registration order, and a derived value chained from a subscriber
// finishes its own cascade before the next sibling runs.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A model and all of its
// values belong to one goroutine.
package reactive
