package reactive

// Computed derives a value from other signals. It recomputes eagerly when
// any dependency changes and behaves as a signal to its own readers.
type Computed[T any] struct {
	out *Signal[T]
	eff *Effect
}

// NewComputed creates a computed value from fn. fn runs once immediately
// and again on every dependency change.
func NewComputed[T any](fn func() T) *Computed[T] {
	c := &Computed[T]{}
	var zero T
	c.out = NewSignal(zero)
	c.eff = NewEffect(func() {
		v := fn()
		// Propagate outside the tracking scope so the computed's readers
		// depend on the output signal, not on fn's inputs.
		Untrack(func() any {
			c.out.Set(v)
			return nil
		})
	})
	return c
}

// Get returns the current derived value, tracking the read.
func (c *Computed[T]) Get() T {
	return c.out.Get()
}

// Peek returns the current derived value without tracking.
func (c *Computed[T]) Peek() T {
	return c.out.Peek()
}

// Stop detaches the computed from its dependencies. The last derived value
// remains readable.
func (c *Computed[T]) Stop() {
	c.eff.Stop()
}

// Resolve reports the current derived value, tracking the read.
func (c *Computed[T]) Resolve() any {
	return c.Get()
}
