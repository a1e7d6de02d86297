// Package reactive implements the small synchronous signal runtime the
// styling system runs on. Signals notify their dependents in the same call
// that changed them; there is no scheduler and no batching at this layer.
//
// The runtime is single-goroutine by contract: reads and writes are expected
// to happen on the goroutine that owns the UI, matching the event-loop model
// of the host environment.
package reactive

// current is the effect whose dependencies are being tracked, if any.
var current *Effect

// Signal holds a mutable value and the set of effects that read it.
type Signal[T any] struct {
	value T
	subs  map[*Effect]struct{}
}

// NewSignal creates a signal with an initial value.
func NewSignal[T any](value T) *Signal[T] {
	return &Signal[T]{
		value: value,
		subs:  make(map[*Effect]struct{}),
	}
}

// Get returns the current value and registers the running effect (if any)
// as a dependent.
func (s *Signal[T]) Get() T {
	if e := current; e != nil {
		s.subs[e] = struct{}{}
		e.deps = append(e.deps, func() { delete(s.subs, e) })
	}
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores a new value and synchronously re-runs every dependent effect.
func (s *Signal[T]) Set(value T) {
	s.value = value

	// Copy before iterating: re-running an effect rewrites its subscriptions.
	deps := make([]*Effect, 0, len(s.subs))
	for e := range s.subs {
		deps = append(deps, e)
	}
	for _, e := range deps {
		e.run()
	}
}

// Update applies fn to the current value and sets the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Resolve reports the current value, tracking the read. It makes a signal
// usable directly as a dynamic style value.
func (s *Signal[T]) Resolve() any {
	return s.Get()
}
