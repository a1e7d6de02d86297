package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf, Level: "error"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Warn().Msg("dropped")
	log.Error().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("warn entry should be filtered at error level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("error entry missing: %q", out)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestDefaultTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Warn().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"tachui"`) {
		t.Errorf("component field missing: %q", buf.String())
	}
}
