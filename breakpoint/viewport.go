package breakpoint

import "time"

// Viewport abstracts the host window. The browser driver adapts real
// window events; SimViewport stands in for tests and headless hosts.
// All callbacks, including scheduled ones, are delivered on the host's
// single event goroutine: the reactive runtime has no locks, so a
// viewport must never invoke a callback concurrently with another.
type Viewport interface {
	// Width returns the current viewport width in pixels.
	Width() float64

	// OnResize registers fn for resize events and returns a cancel func.
	OnResize(fn func()) (cancel func())

	// OnOrientationChange registers fn for orientation-change events and
	// returns a cancel func.
	OnOrientationChange(fn func()) (cancel func())

	// Schedule runs fn on the host's event goroutine after at least d
	// and returns a cancel func. In a browser host this is setTimeout.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// SimViewport is an in-memory Viewport. SetWidth fires resize listeners
// synchronously; Rotate fires orientation listeners. Scheduled callbacks
// queue until the test drains them with RunScheduled, so settle behavior
// stays deterministic and on the caller's goroutine.
type SimViewport struct {
	width   float64
	resize  map[int]func()
	orient  map[int]func()
	pending map[int]func()
	nextID  int
}

// NewSimViewport creates a simulated viewport at the given width.
func NewSimViewport(width float64) *SimViewport {
	return &SimViewport{
		width:   width,
		resize:  make(map[int]func()),
		orient:  make(map[int]func()),
		pending: make(map[int]func()),
	}
}

func (v *SimViewport) Width() float64 {
	return v.width
}

// SetWidth changes the simulated width and notifies resize listeners.
func (v *SimViewport) SetWidth(width float64) {
	v.width = width
	for _, fn := range v.resize {
		fn()
	}
}

// Rotate swaps nothing by itself; it only fires orientation listeners.
// Pair it with SetWidth to simulate a device rotation.
func (v *SimViewport) Rotate() {
	for _, fn := range v.orient {
		fn()
	}
}

func (v *SimViewport) OnResize(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.resize[id] = fn
	return func() { delete(v.resize, id) }
}

func (v *SimViewport) OnOrientationChange(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.orient[id] = fn
	return func() { delete(v.orient, id) }
}

// Schedule queues fn for the next RunScheduled call. The delay is
// ignored; simulated time advances only when the queue is drained.
func (v *SimViewport) Schedule(_ time.Duration, fn func()) func() {
	id := v.nextID
	v.nextID++
	v.pending[id] = fn
	return func() { delete(v.pending, id) }
}

// RunScheduled runs all queued callbacks on the caller's goroutine and
// reports how many ran. Callbacks scheduled while draining wait for the
// next call.
func (v *SimViewport) RunScheduled() int {
	due := v.pending
	v.pending = make(map[int]func())
	for _, fn := range due {
		fn()
	}
	return len(due)
}
