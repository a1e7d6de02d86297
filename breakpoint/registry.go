package breakpoint

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tachui/tachui/reactive"
)

// orientationSettle is how long the registry asks the viewport to wait
// after an orientation change before re-reading it, so the host has
// reported the new dimensions.
const orientationSettle = 100 * time.Millisecond

// Registry is the single source of truth for breakpoint thresholds and the
// currently active breakpoint. One registry exists per styling context.
type Registry struct {
	config   Config
	viewport Viewport
	active   *reactive.Signal[Key]

	cancelResize func()
	cancelOrient func()
	cancelSettle func()
}

// NewRegistry creates a registry with default thresholds, derives the
// active breakpoint from the viewport, and subscribes to its events.
// viewport may be nil for headless use; the active breakpoint then stays
// at Base.
func NewRegistry(viewport Viewport) *Registry {
	r := &Registry{
		config:   DefaultConfig(),
		viewport: viewport,
		active:   reactive.NewSignal(Base),
	}
	r.subscribe()
	r.Refresh()
	return r
}

func (r *Registry) subscribe() {
	if r.viewport == nil {
		return
	}
	if r.cancelResize == nil {
		r.cancelResize = r.viewport.OnResize(r.Refresh)
	}
	if r.cancelOrient == nil {
		r.cancelOrient = r.viewport.OnOrientationChange(func() {
			// The settle refresh goes through the viewport's scheduler so
			// it arrives on the owner goroutine; the signal runtime is not
			// safe to touch from a raw timer goroutine.
			if r.cancelSettle != nil {
				r.cancelSettle()
			}
			r.cancelSettle = r.viewport.Schedule(orientationSettle, func() {
				r.cancelSettle = nil
				r.Refresh()
			})
		})
	}
}

// Configure validates overrides and merges them over the current config.
// Validation happens against the fully merged result before anything is
// committed: a failed Configure leaves the previous configuration intact.
// On success the active breakpoint is re-derived immediately.
func (r *Registry) Configure(overrides Config) error {
	for k := range overrides {
		if !k.Valid() {
			return fmt.Errorf("configure breakpoints: invalid key %d", int(k))
		}
	}
	merged := r.config.Merge(overrides)
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("configure breakpoints: %w", err)
	}

	r.config = merged
	r.subscribe()
	r.Refresh()
	return nil
}

// Config returns a copy of the current configuration.
func (r *Registry) Config() Config {
	return r.config.Merge(nil)
}

// Pixels returns the configured threshold of k in approximate pixels.
func (r *Registry) Pixels(k Key) float64 {
	return PixelsOf(r.config[k])
}

// Active returns the current breakpoint, tracking the read so reactive
// computations re-run when it changes.
func (r *Registry) Active() Key {
	return r.active.Get()
}

// ActiveSignal exposes the underlying signal for effect wiring.
func (r *Registry) ActiveSignal() *reactive.Signal[Key] {
	return r.active
}

// Refresh re-derives the active breakpoint from the viewport width.
func (r *Registry) Refresh() {
	if r.viewport == nil {
		return
	}
	next := r.config.ActiveFor(r.viewport.Width())
	if next != r.active.Peek() {
		r.active.Set(next)
	}
}

// MediaQuery returns the min-width media query for k, or "" for Base
// (mobile-first fallthrough: base styles carry no query).
func (r *Registry) MediaQuery(k Key) string {
	if k == Base {
		return ""
	}
	return fmt.Sprintf("(min-width: %s)", r.config[k])
}

// RangeMediaQuery constrains styles to the span from min up to and
// including max. The upper bound is one pixel below the next breakpoint's
// threshold; the largest breakpoint has no upper bound.
func (r *Registry) RangeMediaQuery(min, max Key) string {
	var parts []string
	if min != Base {
		parts = append(parts, fmt.Sprintf("(min-width: %s)", r.config[min]))
	}
	keys := Keys()
	if max.Valid() && int(max) < len(keys)-1 {
		next := keys[int(max)+1]
		upper := r.Pixels(next) - 1
		parts = append(parts, fmt.Sprintf("(max-width: %spx)", formatPixels(upper)))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + " and " + parts[1]
	}
}

// Close cancels viewport subscriptions and any pending settle callback.
func (r *Registry) Close() {
	if r.cancelResize != nil {
		r.cancelResize()
		r.cancelResize = nil
	}
	if r.cancelOrient != nil {
		r.cancelOrient()
		r.cancelOrient = nil
	}
	if r.cancelSettle != nil {
		r.cancelSettle()
		r.cancelSettle = nil
	}
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
