package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tachui/tachui/breakpoint"
	"github.com/tachui/tachui/theme"
)

type generateFlags struct {
	output  string
	pkgName string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go theme registration code from theme.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadThemeOrDefaults(cmd, root.themeFile)
			if err != nil {
				return err
			}

			code, err := generateThemeCode(flags.pkgName, cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(flags.output, []byte(code), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", flags.output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.output, "output", "theme_gen.go", "Output file for generated code")
	cmd.Flags().StringVar(&flags.pkgName, "package", "main", "Package name for generated code")

	return cmd
}

// loadThemeOrDefaults parses the theme file, falling back to an empty
// configuration when it does not exist.
func loadThemeOrDefaults(cmd *cobra.Command, path string) (*theme.FileConfig, error) {
	cfg, err := theme.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(cmd.ErrOrStderr(), "no %s found, using defaults\n", path)
		return &theme.FileConfig{}, nil
	}
	return nil, err
}

// generateThemeCode emits a RegisterTheme function applying the declared
// breakpoints and color assets to a styling context. Output is
// deterministic: breakpoints in canonical order, colors sorted by name.
func generateThemeCode(pkgName string, cfg *theme.FileConfig) (string, error) {
	bp, err := cfg.BreakpointConfig()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("// Code generated by tachui generate; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("import (\n")
	b.WriteString("\ttachui \"github.com/tachui/tachui\"\n")
	if len(bp) > 0 {
		b.WriteString("\t\"github.com/tachui/tachui/breakpoint\"\n")
	}
	b.WriteString(")\n\n")

	b.WriteString("// RegisterTheme applies the generated theme to ctx.\n")
	b.WriteString("func RegisterTheme(ctx *tachui.Context) error {\n")

	if len(bp) > 0 {
		b.WriteString("\tif err := ctx.Breakpoints().Configure(breakpoint.Config{\n")
		for _, k := range breakpoint.Keys() {
			if v, ok := bp[k]; ok {
				fmt.Fprintf(&b, "\t\tbreakpoint.%s: %q,\n", exportedKeyName(k), v)
			}
		}
		b.WriteString("\t}); err != nil {\n\t\treturn err\n\t}\n")
	}

	names := make([]string, 0, len(cfg.Theme.Colors))
	for name := range cfg.Theme.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := cfg.Theme.Colors[name]
		fmt.Fprintf(&b, "\tctx.Theme().Define(%q, %q, %q)\n", name, def.Light, def.Dark)
	}

	b.WriteString("\treturn nil\n}\n")
	return b.String(), nil
}

func exportedKeyName(k breakpoint.Key) string {
	switch k {
	case breakpoint.Base:
		return "Base"
	case breakpoint.SM:
		return "SM"
	case breakpoint.MD:
		return "MD"
	case breakpoint.LG:
		return "LG"
	case breakpoint.XL:
		return "XL"
	default:
		return "XXL"
	}
}
