package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tachui/tachui/breakpoint"
)

// Options control generated output shape.
type Options struct {
	// Minify collapses whitespace into single-line rules.
	Minify bool
	// IncludeComments prefixes each media block with its breakpoint name.
	IncludeComments bool
}

// QuerySource supplies the media query string for a breakpoint. "" means
// no query (the base, mobile-first). *breakpoint.Registry implements it.
type QuerySource interface {
	MediaQuery(k breakpoint.Key) string
}

// MediaQueryRule is one breakpoint's worth of generated output, produced
// transiently per generation pass and exposed for dev tooling.
type MediaQueryRule struct {
	Breakpoint breakpoint.Key
	Query      string // raw media query, empty for base
	Styles     map[string]string
	Selector   string
}

// Generator assembles CSS rule text from style configurations. It is
// stateless apart from the query source.
type Generator struct {
	Queries QuerySource
}

// NewGenerator creates a generator over the given query source.
func NewGenerator(queries QuerySource) *Generator {
	return &Generator{Queries: queries}
}

// Plan partitions config into the base rule and per-media-query rules.
// Entries targeting the same query are merged into one rule body so no
// duplicate @media blocks are emitted. Rules come back in breakpoint
// order, base first.
func (g *Generator) Plan(selector string, config StyleConfig) []MediaQueryRule {
	base := map[string]string{}
	perKey := map[breakpoint.Key]map[string]string{}

	for prop, v := range config {
		if r, ok := v.(Responsive); ok {
			for bk, bv := range r {
				if bk == breakpoint.Base {
					base[kebabCase(prop)] = FormatValue(prop, resolveOne(bv))
					continue
				}
				if perKey[bk] == nil {
					perKey[bk] = map[string]string{}
				}
				perKey[bk][kebabCase(prop)] = FormatValue(prop, resolveOne(bv))
			}
			continue
		}
		base[kebabCase(prop)] = FormatValue(prop, resolveOne(v))
	}

	var rules []MediaQueryRule
	if len(base) > 0 {
		rules = append(rules, MediaQueryRule{
			Breakpoint: breakpoint.Base,
			Styles:     base,
			Selector:   selector,
		})
	}

	// Group by generated query string, preserving breakpoint order.
	byQuery := map[string]int{}
	for _, bk := range breakpoint.Keys() {
		styles, ok := perKey[bk]
		if !ok {
			continue
		}
		query := g.Queries.MediaQuery(bk)
		if idx, seen := byQuery[query]; seen {
			for p, val := range styles {
				rules[idx].Styles[p] = val
			}
			continue
		}
		rules = append(rules, MediaQueryRule{
			Breakpoint: bk,
			Query:      query,
			Styles:     styles,
			Selector:   selector,
		})
		byQuery[query] = len(rules) - 1
	}
	return rules
}

// GenerateBlocks renders each rule (base rule, then one block per distinct
// media query) as standalone CSS text. An empty config yields no blocks.
func (g *Generator) GenerateBlocks(selector string, config StyleConfig, opts Options) []string {
	rules := g.Plan(selector, config)
	blocks := make([]string, 0, len(rules))
	for _, rule := range rules {
		blocks = append(blocks, renderRule(rule, opts))
	}
	return blocks
}

// Generate renders the full CSS text for a configuration. Output is
// byte-for-byte deterministic for a fixed (selector, config, options).
func (g *Generator) Generate(selector string, config StyleConfig, opts Options) string {
	blocks := g.GenerateBlocks(selector, config, opts)
	if len(blocks) == 0 {
		return ""
	}
	if opts.Minify {
		return strings.Join(blocks, "")
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func renderRule(rule MediaQueryRule, opts Options) string {
	props := make([]string, 0, len(rule.Styles))
	for p := range rule.Styles {
		props = append(props, p)
	}
	sort.Strings(props)

	var b strings.Builder
	if opts.IncludeComments && rule.Query != "" {
		if opts.Minify {
			fmt.Fprintf(&b, "/* %s */", rule.Breakpoint)
		} else {
			fmt.Fprintf(&b, "/* %s */\n", rule.Breakpoint)
		}
	}

	if opts.Minify {
		if rule.Query != "" {
			fmt.Fprintf(&b, "@media %s{", rule.Query)
		}
		b.WriteString(rule.Selector)
		b.WriteByte('{')
		for i, p := range props {
			if i > 0 {
				b.WriteByte(';')
			}
			fmt.Fprintf(&b, "%s:%s", p, rule.Styles[p])
		}
		b.WriteByte('}')
		if rule.Query != "" {
			b.WriteByte('}')
		}
		return b.String()
	}

	indent := ""
	if rule.Query != "" {
		fmt.Fprintf(&b, "@media %s {\n", rule.Query)
		indent = "  "
	}
	fmt.Fprintf(&b, "%s%s {\n", indent, rule.Selector)
	for _, p := range props {
		fmt.Fprintf(&b, "%s  %s: %s;\n", indent, p, rule.Styles[p])
	}
	fmt.Fprintf(&b, "%s}", indent)
	if rule.Query != "" {
		b.WriteString("\n}")
	}
	return b.String()
}
