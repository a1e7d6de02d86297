package breakpoint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Config maps each breakpoint to its minimum-width threshold as a CSS
// length string. Thresholds must strictly increase in pixel-equivalent
// terms in canonical key order.
type Config map[Key]string

// DefaultConfig returns the standard thresholds (Tailwind-compatible).
func DefaultConfig() Config {
	return Config{
		Base: "0px",
		SM:   "640px",
		MD:   "768px",
		LG:   "1024px",
		XL:   "1280px",
		XXL:  "1536px",
	}
}

// cssLengthPattern accepts a number followed by a supported unit.
var cssLengthPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)(px|em|rem|%)$`)

// remBase approximates em/rem lengths in pixels. Not pixel-perfect; the
// root font size of the host document is not consulted.
const remBase = 16

// PixelsOf converts a CSS length string to an approximate pixel value.
// Unrecognized units fall back to a best-effort numeric parse.
func PixelsOf(value string) float64 {
	if m := cssLengthPattern.FindStringSubmatch(value); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		switch m[2] {
		case "em", "rem":
			return n * remBase
		default:
			return n
		}
	}
	// Best effort: parse the leading numeric run.
	i := 0
	for i < len(value) && (value[i] == '.' || (value[i] >= '0' && value[i] <= '9')) {
		i++
	}
	n, _ := strconv.ParseFloat(value[:i], 64)
	return n
}

// Validate checks every key is recognized, every value is a CSS length, and
// values strictly ascend in canonical order. The returned error names the
// offending key, value, or pair.
func (c Config) Validate() error {
	for k, v := range c {
		if !k.Valid() {
			return fmt.Errorf("invalid breakpoint key %d", int(k))
		}
		if !cssLengthPattern.MatchString(v) {
			return fmt.Errorf("breakpoint %s: invalid CSS length %q (want number + px|em|rem|%%)", k, v)
		}
	}

	prev := Base
	havePrev := false
	for _, k := range Keys() {
		v, ok := c[k]
		if !ok {
			continue
		}
		if havePrev {
			if PixelsOf(c[prev]) >= PixelsOf(v) {
				return fmt.Errorf(
					"breakpoint thresholds must strictly ascend: %s (%s) >= %s (%s)",
					prev, c[prev], k, v,
				)
			}
		}
		prev, havePrev = k, true
	}
	return nil
}

// Merge returns a copy of c with overrides layered on top. Neither input
// is mutated.
func (c Config) Merge(overrides Config) Config {
	merged := make(Config, len(c)+len(overrides))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// ActiveFor returns the largest breakpoint whose threshold is at or below
// width, defaulting to Base.
func (c Config) ActiveFor(width float64) Key {
	keys := Keys()
	for i := len(keys) - 1; i > 0; i-- {
		v, ok := c[keys[i]]
		if !ok {
			continue
		}
		if width >= PixelsOf(v) {
			return keys[i]
		}
	}
	return Base
}

func (c Config) String() string {
	var b strings.Builder
	for _, k := range Keys() {
		if v, ok := c[k]; ok {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%s=%s", k, v)
		}
	}
	return b.String()
}
