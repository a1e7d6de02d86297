package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tachui/tachui/theme"
)

func TestGenerateThemeCode(t *testing.T) {
	cfg, err := theme.ParseConfig([]byte(`
[theme.breakpoints]
md = "700px"
lg = "1000px"

[theme.colors.primary]
light = "#007AFF"
dark = "#0A84FF"

[theme.colors.background]
light = "#FFFFFF"
dark = "#1C1C1E"
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	got, err := generateThemeCode("ui", cfg)
	if err != nil {
		t.Fatalf("generateThemeCode: %v", err)
	}

	want := `// Code generated by tachui generate; DO NOT EDIT.

package ui

import (
	tachui "github.com/tachui/tachui"
	"github.com/tachui/tachui/breakpoint"
)

// RegisterTheme applies the generated theme to ctx.
func RegisterTheme(ctx *tachui.Context) error {
	if err := ctx.Breakpoints().Configure(breakpoint.Config{
		breakpoint.MD: "700px",
		breakpoint.LG: "1000px",
	}); err != nil {
		return err
	}
	ctx.Theme().Define("background", "#FFFFFF", "#1C1C1E")
	ctx.Theme().Define("primary", "#007AFF", "#0A84FF")
	return nil
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateThemeCodeEmptyConfig(t *testing.T) {
	got, err := generateThemeCode("ui", &theme.FileConfig{})
	if err != nil {
		t.Fatalf("generateThemeCode: %v", err)
	}

	want := `// Code generated by tachui generate; DO NOT EDIT.

package ui

import (
	tachui "github.com/tachui/tachui"
)

// RegisterTheme applies the generated theme to ctx.
func RegisterTheme(ctx *tachui.Context) error {
	return nil
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}
}
