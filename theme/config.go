package theme

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/tachui/tachui/breakpoint"
)

// FileConfig is the theme.toml schema.
//
//	[theme.breakpoints]
//	md = "768px"
//
//	[theme.colors.accent]
//	light = "#007AFF"
//	dark = "#0A84FF"
type FileConfig struct {
	Theme struct {
		Breakpoints map[string]string   `toml:"breakpoints" validate:"dive,csslength"`
		Colors      map[string]ColorDef `toml:"colors" validate:"dive"`
	} `toml:"theme"`
}

// ColorDef declares a color asset's per-scheme values. Dark is optional
// and falls back to Light.
type ColorDef struct {
	Light string `toml:"light" validate:"required"`
	Dark  string `toml:"dark"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssLengthPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+(px|em|rem|%)$`)
)

// validatorInstance configures and returns the shared validator used for
// theme files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("csslength", func(fl validator.FieldLevel) bool {
			return cssLengthPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ParseConfig decodes and validates theme TOML.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse theme config: %w", err)
	}

	if err := validatorInstance().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate theme config: %w", err)
	}

	for name := range cfg.Theme.Breakpoints {
		if _, err := breakpoint.ParseKey(name); err != nil {
			return nil, fmt.Errorf("validate theme config: breakpoints: %w", err)
		}
	}

	// Ordering is checked against the merged result so a sparse override
	// that breaks ascending thresholds is caught here, not at runtime.
	bp, err := cfg.BreakpointConfig()
	if err != nil {
		return nil, err
	}
	if err := breakpoint.DefaultConfig().Merge(bp).Validate(); err != nil {
		return nil, fmt.Errorf("validate theme config: %w", err)
	}

	return &cfg, nil
}

// LoadConfig reads and validates a theme.toml file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme config: %w", err)
	}
	return ParseConfig(data)
}

// BreakpointConfig converts the declared breakpoint overrides.
func (c *FileConfig) BreakpointConfig() (breakpoint.Config, error) {
	out := make(breakpoint.Config, len(c.Theme.Breakpoints))
	for name, value := range c.Theme.Breakpoints {
		key, err := breakpoint.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("theme breakpoints: %w", err)
		}
		out[key] = value
	}
	return out, nil
}

// Apply registers every declared color asset on the manager.
func (c *FileConfig) Apply(m *Manager) {
	for name, def := range c.Theme.Colors {
		m.Define(name, def.Light, def.Dark)
	}
}
