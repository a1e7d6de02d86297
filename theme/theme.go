// Package theme provides the color scheme signal and theme-dependent color
// assets. An asset resolves to its light or dark value by reading the
// scheme signal, so any effect that resolved it re-runs on a theme switch.
package theme

import (
	"fmt"

	"github.com/tachui/tachui/reactive"
)

// Scheme is the active color scheme.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

func (s Scheme) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// ParseScheme converts "light" or "dark" to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown color scheme %q", name)
	}
}

// Manager owns the scheme signal and the named asset registry. One manager
// exists per styling context.
type Manager struct {
	scheme *reactive.Signal[Scheme]
	assets map[string]*Asset
}

// NewManager creates a manager starting in the light scheme.
func NewManager() *Manager {
	return &Manager{
		scheme: reactive.NewSignal(Light),
		assets: make(map[string]*Asset),
	}
}

// Scheme returns the active scheme, tracking the read.
func (m *Manager) Scheme() Scheme {
	return m.scheme.Get()
}

// SetScheme switches the active scheme and synchronously re-runs every
// effect that resolved a theme asset.
func (m *Manager) SetScheme(s Scheme) {
	m.scheme.Set(s)
}

// SchemeSignal exposes the underlying signal for effect wiring.
func (m *Manager) SchemeSignal() *reactive.Signal[Scheme] {
	return m.scheme
}

// Define registers (or redefines) a named color asset. An empty dark value
// falls back to the light value.
func (m *Manager) Define(name, light, dark string) *Asset {
	if dark == "" {
		dark = light
	}
	a := &Asset{manager: m, name: name, light: light, dark: dark}
	m.assets[name] = a
	return a
}

// Color returns the named asset.
func (m *Manager) Color(name string) (*Asset, bool) {
	a, ok := m.assets[name]
	return a, ok
}

// Names returns the registered asset names, unordered.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.assets))
	for n := range m.assets {
		names = append(names, n)
	}
	return names
}

// Asset is a theme-dependent color value.
type Asset struct {
	manager *Manager
	name    string
	light   string
	dark    string
}

// Name returns the asset's registered name.
func (a *Asset) Name() string { return a.name }

// Light returns the light-scheme value.
func (a *Asset) Light() string { return a.light }

// Dark returns the dark-scheme value.
func (a *Asset) Dark() string { return a.dark }

// Resolve returns the value for the active scheme. Reading the scheme
// signal here is what subscribes the surrounding effect to theme switches.
func (a *Asset) Resolve() any {
	if a.manager.scheme.Get() == Dark {
		return a.dark
	}
	return a.light
}
