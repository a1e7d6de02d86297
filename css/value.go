// Package css turns declarative breakpoint-keyed style configurations into
// CSS rule text. Generation is pure and deterministic: the same selector,
// configuration and options always produce byte-identical output, which the
// rule cache depends on.
package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tachui/tachui/breakpoint"
)

// Dynamic is a style value resolved at generation time. Signals, computed
// values and theme assets implement it. Detection is a type assertion on
// this interface, never structural probing.
type Dynamic interface {
	// Resolve returns the current concrete value. Implementations read
	// their backing signals so the surrounding effect tracks them.
	Resolve() any
}

// Responsive is a partial mapping from breakpoint to value. Any subset of
// breakpoints is legal; missing narrower breakpoints fall through to the
// mobile-first base.
type Responsive map[breakpoint.Key]any

// StyleConfig maps camelCase CSS property names to values. A value is a
// literal, a Responsive map, or a Dynamic.
type StyleConfig map[string]any

// IsResponsive reports whether v is a per-breakpoint value.
func IsResponsive(v any) bool {
	_, ok := v.(Responsive)
	return ok
}

// HasDynamicValues reports whether any value in config, at any breakpoint,
// is dynamic. A signal placed at a single non-base breakpoint counts.
func HasDynamicValues(config StyleConfig) bool {
	for _, v := range config {
		if isDynamic(v) {
			return true
		}
		if r, ok := v.(Responsive); ok {
			for _, bv := range r {
				if isDynamic(bv) {
					return true
				}
			}
		}
	}
	return false
}

func isDynamic(v any) bool {
	_, ok := v.(Dynamic)
	return ok
}

// ResolveDynamics returns a copy of config with every dynamic value
// replaced by its current resolved value, preserving the per-breakpoint
// structure. Static values pass through untouched. Each dynamic is read
// exactly once, which registers it with any tracking effect.
func ResolveDynamics(config StyleConfig) StyleConfig {
	resolved := make(StyleConfig, len(config))
	for prop, v := range config {
		switch val := v.(type) {
		case Responsive:
			out := make(Responsive, len(val))
			for bk, bv := range val {
				out[bk] = resolveOne(bv)
			}
			resolved[prop] = out
		default:
			resolved[prop] = resolveOne(v)
		}
	}
	return resolved
}

func resolveOne(v any) any {
	if d, ok := v.(Dynamic); ok {
		return d.Resolve()
	}
	return v
}

// CacheKey builds the canonical serialization of a generation request.
// Properties and breakpoints are emitted in sorted order so equal
// configurations always produce equal keys. Property names and values are
// quoted and values carry their dynamic type, so distinct configurations
// never share a key: a value cannot smuggle the key's own delimiters, and
// int 8 is kept apart from string "8".
func CacheKey(selector string, config StyleConfig, opts Options) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteByte('|')

	props := make([]string, 0, len(config))
	for p := range config {
		props = append(props, p)
	}
	sort.Strings(props)

	for _, p := range props {
		b.WriteString(strconv.Quote(p))
		b.WriteByte('=')
		switch v := config[p].(type) {
		case Responsive:
			b.WriteByte('{')
			for _, bk := range breakpoint.Keys() {
				if bv, ok := v[bk]; ok {
					fmt.Fprintf(&b, "%s:%s;", bk, keyValue(resolveOne(bv)))
				}
			}
			b.WriteByte('}')
		default:
			b.WriteString(keyValue(resolveOne(v)))
		}
		b.WriteByte(';')
	}

	fmt.Fprintf(&b, "|minify=%t,comments=%t", opts.Minify, opts.IncludeComments)
	return b.String()
}

func keyValue(v any) string {
	return fmt.Sprintf("%T%s", v, strconv.Quote(fmt.Sprint(v)))
}
