package breakpoint

import (
	"strings"
	"testing"

	"github.com/tachui/tachui/reactive"
)

func TestRegistryActiveTracksViewport(t *testing.T) {
	vp := NewSimViewport(500)
	r := NewRegistry(vp)
	defer r.Close()

	if got := r.Active(); got != Base {
		t.Fatalf("Active() at 500px = %v, want base", got)
	}

	var observed []Key
	reactive.NewEffect(func() {
		observed = append(observed, r.Active())
	})

	vp.SetWidth(800)
	vp.SetWidth(1300)
	vp.SetWidth(1310) // same breakpoint, no change expected

	want := []Key{Base, MD, XL}
	if len(observed) != len(want) {
		t.Fatalf("observed %v, want %v", observed, want)
	}
	for i := range want {
		if observed[i] != want[i] {
			t.Errorf("observed[%d] = %v, want %v", i, observed[i], want[i])
		}
	}
}

func TestRegistryConfigureRejectsAndKeepsOldState(t *testing.T) {
	vp := NewSimViewport(700)
	r := NewRegistry(vp)
	defer r.Close()

	err := r.Configure(Config{SM: "800px", MD: "700px"})
	if err == nil {
		t.Fatal("Configure with descending thresholds should fail")
	}
	if !strings.Contains(err.Error(), "sm") || !strings.Contains(err.Error(), "md") {
		t.Errorf("error %q should name the offending pair", err)
	}

	// Old thresholds still committed: 700px is ≥ sm (640px).
	if got := r.Active(); got != SM {
		t.Errorf("Active() after failed reconfigure = %v, want sm", got)
	}
	if got := r.Pixels(SM); got != 640 {
		t.Errorf("Pixels(sm) after failed reconfigure = %v, want 640", got)
	}
}

func TestRegistryConfigureCommitsAndRederives(t *testing.T) {
	vp := NewSimViewport(700)
	r := NewRegistry(vp)
	defer r.Close()

	if err := r.Configure(Config{SM: "720px"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := r.Active(); got != Base {
		t.Errorf("Active() after raising sm to 720px = %v, want base", got)
	}
}

func TestRegistryMediaQuery(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	tests := []struct {
		key  Key
		want string
	}{
		{key: Base, want: ""},
		{key: SM, want: "(min-width: 640px)"},
		{key: MD, want: "(min-width: 768px)"},
		{key: XXL, want: "(min-width: 1536px)"},
	}
	for _, tt := range tests {
		if got := r.MediaQuery(tt.key); got != tt.want {
			t.Errorf("MediaQuery(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRegistryRangeMediaQuery(t *testing.T) {
	r := NewRegistry(nil)
	defer r.Close()

	tests := []struct {
		name     string
		min, max Key
		want     string
	}{
		{name: "mid range", min: MD, max: LG, want: "(min-width: 768px) and (max-width: 1279px)"},
		{name: "from base", min: Base, max: SM, want: "(max-width: 767px)"},
		{name: "open top", min: XL, max: XXL, want: "(min-width: 1280px)"},
		{name: "full span", min: Base, max: XXL, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RangeMediaQuery(tt.min, tt.max); got != tt.want {
				t.Errorf("RangeMediaQuery(%v, %v) = %q, want %q", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestRegistryOrientationChangeDebounced(t *testing.T) {
	vp := NewSimViewport(500)
	r := NewRegistry(vp)
	defer r.Close()

	// Rotation reports new width only after the viewport settles; the
	// registry must not read it synchronously.
	vp.width = 900
	vp.Rotate()
	if got := r.Active(); got != Base {
		t.Fatalf("Active() immediately after rotate = %v, want base (debounced)", got)
	}

	if n := vp.RunScheduled(); n != 1 {
		t.Fatalf("RunScheduled() ran %d callbacks, want 1", n)
	}
	if got := r.Active(); got != MD {
		t.Fatalf("Active() after settle = %v, want md", got)
	}
}

func TestRegistryRepeatedRotationsSettleOnce(t *testing.T) {
	vp := NewSimViewport(500)
	r := NewRegistry(vp)
	defer r.Close()

	vp.width = 700
	vp.Rotate()
	vp.width = 1300
	vp.Rotate() // supersedes the first settle

	if n := vp.RunScheduled(); n != 1 {
		t.Fatalf("RunScheduled() ran %d callbacks, want 1 after re-rotation", n)
	}
	if got := r.Active(); got != XL {
		t.Fatalf("Active() after settle = %v, want xl", got)
	}
}

func TestRegistryCloseCancelsPendingSettle(t *testing.T) {
	vp := NewSimViewport(500)
	r := NewRegistry(vp)

	vp.width = 900
	vp.Rotate()
	r.Close()

	if n := vp.RunScheduled(); n != 0 {
		t.Fatalf("RunScheduled() ran %d callbacks after Close, want 0", n)
	}
	if got := r.active.Peek(); got != Base {
		t.Fatalf("active after Close = %v, want base", got)
	}
}
