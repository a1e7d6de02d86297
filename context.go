// Package tachui wires the responsive styling pipeline together: the
// breakpoint registry, CSS generator, rule cache, batcher, stylesheet and
// theme manager all hang off a Context. Construct one per application (or
// per test) and tear it down with Close; there is no package-level state.
package tachui

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tachui/tachui/breakpoint"
	"github.com/tachui/tachui/css"
	"github.com/tachui/tachui/dom"
	"github.com/tachui/tachui/internal/logging"
	"github.com/tachui/tachui/modifier"
	"github.com/tachui/tachui/sheet"
	"github.com/tachui/tachui/theme"
)

// BuildMode selects generation defaults.
type BuildMode int

const (
	Development BuildMode = iota
	Production
)

func (m BuildMode) String() string {
	if m == Production {
		return "production"
	}
	return "development"
}

// ParseBuildMode converts "development" or "production" to a BuildMode.
func ParseBuildMode(name string) (BuildMode, error) {
	switch name {
	case "development", "":
		return Development, nil
	case "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("unknown build mode %q", name)
	}
}

// Options configures a Context. The zero value is usable headless: no
// document, no viewport, development-mode generation.
type Options struct {
	// Document is the host document; nil makes all injection a no-op.
	Document dom.Document

	// Viewport drives the active breakpoint; nil pins it at base.
	Viewport breakpoint.Viewport

	// Breakpoints overrides the default thresholds.
	Breakpoints breakpoint.Config

	// BuildMode picks generation defaults: production minifies and drops
	// comments, development keeps output readable.
	BuildMode BuildMode

	// Generate overrides the build-mode generation defaults entirely.
	Generate *css.Options

	// CacheCapacity bounds the rule cache; 0 means the default.
	CacheCapacity int

	// BatchSize and BatchDelay tune the bulk-CSS batcher; 0 means the
	// defaults.
	BatchSize  int
	BatchDelay time.Duration

	// Logger receives injection warnings; nil selects the default
	// stderr warn-level logger.
	Logger *zerolog.Logger
}

// Context is the entry point to the responsive styling system.
type Context struct {
	registry  *breakpoint.Registry
	themes    *theme.Manager
	generator *css.Generator
	cache     *sheet.RuleCache
	styles    *sheet.StyleSheet
	batcher   *sheet.Batcher
	metrics   *sheet.Metrics
	genOpts   css.Options
	log       zerolog.Logger
}

// New validates opts and assembles a Context.
func New(opts Options) (*Context, error) {
	log := logging.Default()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	registry := breakpoint.NewRegistry(opts.Viewport)
	if len(opts.Breakpoints) > 0 {
		if err := registry.Configure(opts.Breakpoints); err != nil {
			registry.Close()
			return nil, err
		}
	}

	genOpts := css.Options{IncludeComments: true}
	if opts.BuildMode == Production {
		genOpts = css.Options{Minify: true}
	}
	if opts.Generate != nil {
		genOpts = *opts.Generate
	}

	styles := sheet.NewStyleSheet(opts.Document, log)
	return &Context{
		registry:  registry,
		themes:    theme.NewManager(),
		generator: css.NewGenerator(registry),
		cache:     sheet.NewRuleCache(opts.CacheCapacity),
		styles:    styles,
		batcher:   sheet.NewBatcher(styles, opts.BatchSize, opts.BatchDelay),
		metrics:   sheet.NewMetrics(),
		genOpts:   genOpts,
		log:       log,
	}, nil
}

// Breakpoints returns the breakpoint registry.
func (c *Context) Breakpoints() *breakpoint.Registry {
	return c.registry
}

// Theme returns the theme manager.
func (c *Context) Theme() *theme.Manager {
	return c.themes
}

// GenerateOptions returns the generation options in effect.
func (c *Context) GenerateOptions() css.Options {
	return c.genOpts
}

// Responsive creates a modifier binding config to an element. Component
// modifier chains call this and then Apply the result to their target.
func (c *Context) Responsive(config css.StyleConfig) *modifier.Responsive {
	return modifier.New(modifier.Env{
		Generator: c.generator,
		Cache:     c.cache,
		Sheet:     c.styles,
		Metrics:   c.metrics,
		Options:   c.genOpts,
	}, config)
}

// AddUtility generates CSS for a non-critical utility selector through the
// cache and schedules it on the batch path. Dynamic values are resolved
// once; utilities do not subscribe.
func (c *Context) AddUtility(selector string, config css.StyleConfig) {
	resolved := css.ResolveDynamics(config)

	key := css.CacheKey(selector, resolved, c.genOpts)
	blocks, ok := c.cache.Get(key)
	if !ok {
		start := time.Now()
		blocks = c.generator.GenerateBlocks(selector, resolved, c.genOpts)
		c.metrics.RecordGeneration(time.Since(start))
		c.cache.Set(key, blocks)
	}

	for _, b := range blocks {
		c.batcher.Enqueue(b)
	}
}

// Flush forces the batch queue into the stylesheet synchronously, e.g.
// before measuring layout in tests.
func (c *Context) Flush() {
	c.batcher.Flush()
}

// LoadTheme reads a theme.toml, applies its breakpoint overrides and
// registers its color assets. Errors leave the context unchanged.
func (c *Context) LoadTheme(path string) error {
	cfg, err := theme.LoadConfig(path)
	if err != nil {
		return err
	}
	return c.ApplyTheme(cfg)
}

// ApplyTheme applies an already-parsed theme configuration.
func (c *Context) ApplyTheme(cfg *theme.FileConfig) error {
	bp, err := cfg.BreakpointConfig()
	if err != nil {
		return err
	}
	if len(bp) > 0 {
		if err := c.registry.Configure(bp); err != nil {
			return err
		}
	}
	cfg.Apply(c.themes)
	return nil
}

// Stats snapshots the pipeline for developer tooling.
func (c *Context) Stats() sheet.Stats {
	return sheet.Stats{
		CacheSize:     c.cache.Len(),
		CacheCapacity: c.cache.Capacity(),
		CacheHits:     c.cache.Hits(),
		CacheMisses:   c.cache.Misses(),
		CacheHitRate:  c.cache.HitRate(),
		QueueDepth:    c.batcher.Depth(),
		RulesWritten:  c.styles.RulesWritten(),
		Generations:   c.metrics.Generations(),
		GenerationMs:  float64(c.metrics.Elapsed()) / float64(time.Millisecond),
	}
}

// Reset discards cached rules, dedup tracking and metrics. Primarily for
// dev tooling and test isolation; the stylesheet element stays attached.
func (c *Context) Reset() {
	c.cache.Reset()
	c.styles.Reset()
	c.metrics.Reset()
}

// Close cancels viewport subscriptions and pending batch work. Queued CSS
// is dropped; call Flush first if it should still land.
func (c *Context) Close() {
	c.batcher.Close()
	c.registry.Close()
}
