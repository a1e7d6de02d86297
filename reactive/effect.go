package reactive

// Effect is a computation that re-runs whenever a signal it read changes.
type Effect struct {
	fn      func()
	deps    []func()
	stopped bool
}

// NewEffect runs fn once immediately, tracking every signal read, and
// re-runs it synchronously on each subsequent change to those signals.
// Dependencies are re-tracked on every run, so conditional reads behave
// correctly.
func NewEffect(fn func()) *Effect {
	e := &Effect{fn: fn}
	e.run()
	return e
}

func (e *Effect) run() {
	if e.stopped {
		return
	}
	e.clearDeps()

	prev := current
	current = e
	defer func() { current = prev }()

	e.fn()
}

func (e *Effect) clearDeps() {
	for _, unsub := range e.deps {
		unsub()
	}
	e.deps = e.deps[:0]
}

// Stop detaches the effect from all signals. A stopped effect never runs
// again.
func (e *Effect) Stop() {
	e.stopped = true
	e.clearDeps()
}

// Untrack runs fn with dependency tracking suspended and returns its result.
func Untrack[T any](fn func() T) T {
	prev := current
	current = nil
	defer func() { current = prev }()
	return fn()
}
