package reactive

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(1)
	if got := s.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}
	s.Set(5)
	if got := s.Get(); got != 5 {
		t.Errorf("Get() after Set = %d, want 5", got)
	}
}

func TestEffectRunsImmediatelyAndOnChange(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	NewEffect(func() {
		s.Get()
		runs++
	})

	if runs != 1 {
		t.Fatalf("effect runs = %d after creation, want 1", runs)
	}

	s.Set(1)
	s.Set(2)
	if runs != 3 {
		t.Errorf("effect runs = %d after two sets, want 3", runs)
	}
}

func TestEffectNotifiedSynchronously(t *testing.T) {
	s := NewSignal("a")
	var seen string
	NewEffect(func() {
		seen = s.Get()
	})

	s.Set("b")
	if seen != "b" {
		t.Errorf("effect observed %q within the Set call, want %q", seen, "b")
	}
}

func TestStoppedEffectDoesNotRun(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	e := NewEffect(func() {
		s.Get()
		runs++
	})

	e.Stop()
	s.Set(1)
	if runs != 1 {
		t.Errorf("effect runs = %d after Stop, want 1", runs)
	}
}

func TestPeekDoesNotTrack(t *testing.T) {
	s := NewSignal(0)
	runs := 0
	NewEffect(func() {
		s.Peek()
		runs++
	})

	s.Set(1)
	if runs != 1 {
		t.Errorf("effect runs = %d, Peek should not subscribe", runs)
	}
}

func TestConditionalDependenciesRetrack(t *testing.T) {
	gate := NewSignal(true)
	a := NewSignal("a")
	b := NewSignal("b")
	runs := 0
	NewEffect(func() {
		if gate.Get() {
			a.Get()
		} else {
			b.Get()
		}
		runs++
	})

	gate.Set(false) // now depends on b, not a
	before := runs
	a.Set("a2")
	if runs != before {
		t.Errorf("effect re-ran on abandoned dependency (runs %d -> %d)", before, runs)
	}
	b.Set("b2")
	if runs != before+1 {
		t.Errorf("effect runs = %d after b change, want %d", runs, before+1)
	}
}

func TestComputedTracksThrough(t *testing.T) {
	base := NewSignal(2)
	double := NewComputed(func() int { return base.Get() * 2 })

	if got := double.Get(); got != 4 {
		t.Fatalf("computed = %d, want 4", got)
	}

	var observed int
	NewEffect(func() {
		observed = double.Get()
	})

	base.Set(10)
	if observed != 20 {
		t.Errorf("effect observed %d after dependency change, want 20", observed)
	}
}

func TestResolveReturnsCurrentValue(t *testing.T) {
	s := NewSignal(42)
	if got := s.Resolve(); got != any(42) {
		t.Errorf("Resolve() = %v, want 42", got)
	}

	c := NewComputed(func() string { return "x" })
	if got := c.Resolve(); got != any("x") {
		t.Errorf("computed Resolve() = %v, want x", got)
	}
}
