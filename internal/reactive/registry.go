package reactive

import (
	"fmt"
	"sort"
)

// Registry gives tooling named access to the values of a model. A model
// never requires one; it is attached after construction.
type Registry struct {
	order    []string
	entries  map[string]Observable
	watchers Emitter[Change]
	unlinks  []Unlink
}

// Change is delivered to Watch subscribers.
type Change struct {
	Name  string
	Value any
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Observable)}
}

// Register adds o under name. Names must be unique.
func (r *Registry) Register(name string, o Observable) {
	if _, ok := r.entries[name]; ok {
		panic(fmt.Sprintf("reactive: %q already registered", name))
	}
	r.order = append(r.order, name)
	r.entries[name] = o
	r.unlinks = append(r.unlinks, o.observe(func() {
		r.watchers.Emit(Change{Name: name, Value: o.Any()})
	}))
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Get returns the current value registered under name.
func (r *Registry) Get(name string) (any, bool) {
	o, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return o.Any(), true
}

// Snapshot returns the current value of every registered entry.
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, len(r.entries))
	for name, o := range r.entries {
		out[name] = o.Any()
	}
	return out
}

// Watch calls fn for every change of any registered value.
func (r *Registry) Watch(fn func(name string, v any)) Unlink {
	return r.watchers.On(func(c Change) { fn(c.Name, c.Value) })
}

// Close detaches the registry from every registered value.
func (r *Registry) Close() {
	for _, u := range r.unlinks {
		u()
	}
	r.unlinks = nil
}
