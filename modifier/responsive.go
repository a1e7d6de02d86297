// Package modifier binds responsive style configurations to live elements.
// It is the per-element glue between declaration and stylesheet: resolve
// dynamic values, generate CSS through the cache, inject under a unique
// scoping class, and keep doing so while any embedded signal or theme
// asset changes.
package modifier

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tachui/tachui/css"
	"github.com/tachui/tachui/dom"
	"github.com/tachui/tachui/reactive"
	"github.com/tachui/tachui/sheet"
)

// scopePrefix prefixes every generated scoping class.
const scopePrefix = "tachui-r-"

// scopeCounter makes scoping classes unique per process.
var scopeCounter atomic.Int64

func nextScope() string {
	return fmt.Sprintf("%s%d", scopePrefix, scopeCounter.Add(1))
}

// Env carries the shared collaborators a modifier works against. The
// styling context assembles one and hands it to every modifier it creates.
type Env struct {
	Generator *css.Generator
	Cache     *sheet.RuleCache
	Sheet     *sheet.StyleSheet
	Metrics   *sheet.Metrics
	Options   css.Options
}

// Responsive binds one style configuration to one element. Configurations
// are treated as immutable inputs; on reactive change a freshly resolved
// copy feeds regeneration.
type Responsive struct {
	env    Env
	config css.StyleConfig
	scope  string
	effect *reactive.Effect
}

// New creates an unapplied responsive modifier.
func New(env Env, config css.StyleConfig) *Responsive {
	return &Responsive{env: env, config: config}
}

// Scope returns the generated scoping class, or "" before Apply.
func (r *Responsive) Scope() string {
	return r.scope
}

// Apply binds the configuration to el. The element gets a fresh scoping
// class and CSS is generated and injected immediately, never batched:
// responsive styles must land before first paint. Only a configuration
// containing dynamic values establishes a subscription; static configs are
// one-shot.
//
// A nil target is tolerated as a no-op so headless invocation paths can
// call Apply unconditionally.
func (r *Responsive) Apply(el dom.Element) {
	if el == nil || r.scope != "" {
		return
	}

	r.scope = nextScope()
	el.AddClass(r.scope)
	selector := "." + r.scope

	if !css.HasDynamicValues(r.config) {
		r.inject(selector)
		return
	}

	// Resolving inside the effect reads every dynamic value, which is
	// what registers them as dependencies; theme assets read the scheme
	// signal when resolved, so a theme switch regenerates too.
	r.effect = reactive.NewEffect(func() {
		r.inject(selector)
	})
}

func (r *Responsive) inject(selector string) {
	resolved := css.ResolveDynamics(r.config)

	key := css.CacheKey(selector, resolved, r.env.Options)
	blocks, ok := r.env.Cache.Get(key)
	if !ok {
		start := time.Now()
		blocks = r.env.Generator.GenerateBlocks(selector, resolved, r.env.Options)
		if r.env.Metrics != nil {
			r.env.Metrics.RecordGeneration(time.Since(start))
		}
		r.env.Cache.Set(key, blocks)
	}

	r.env.Sheet.ReplaceScope(r.scope, blocks)
}

// Release stops the reactive subscription, if any. The owning component's
// lifecycle calls this when the element goes away; already-injected CSS
// for the scope stays until the scope is reused or the sheet is reset.
func (r *Responsive) Release() {
	if r.effect != nil {
		r.effect.Stop()
		r.effect = nil
	}
}
