package css

import (
	"fmt"
	"strconv"
	"strings"
)

// unitlessProperties are emitted as bare numbers.
var unitlessProperties = map[string]bool{
	"opacity":     true,
	"z-index":     true,
	"font-weight": true,
	"line-height": true,
	"flex":        true,
	"flex-grow":   true,
	"flex-shrink": true,
	"order":       true,
}

// dimensionSubstrings mark properties whose numeric values get a px suffix.
// Substring matching covers compound names (paddingTop, borderWidth, ...).
var dimensionSubstrings = []string{
	"width", "height", "padding", "margin",
	"border-radius", "top", "right", "bottom", "left",
	"font-size", "letter-spacing", "text-indent", "gap",
}

// importantProperties get !important appended so responsive overrides win
// over component-default inline styles without selector-specificity games.
var importantProperties = map[string]bool{
	"display":         true,
	"flex-direction":  true,
	"justify-content": true,
	"align-items":     true,
}

// kebabCase converts a camelCase property name for emission:
// fontSize -> font-size. Already-kebab names pass through unchanged.
func kebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUnitless(kebab string) bool {
	if unitlessProperties[kebab] {
		return true
	}
	if strings.HasPrefix(kebab, "flex-") {
		return true
	}
	if strings.HasPrefix(kebab, "grid-") &&
		(strings.HasSuffix(kebab, "-start") || strings.HasSuffix(kebab, "-end")) {
		return true
	}
	return false
}

func isDimension(kebab string) bool {
	for _, sub := range dimensionSubstrings {
		if strings.Contains(kebab, sub) {
			return true
		}
	}
	return false
}

// FormatValue renders a single style value for the (camelCase or kebab)
// property name. Nil becomes "inherit"; numbers are unit-aware.
func FormatValue(property string, v any) string {
	kebab := kebabCase(property)

	text, numeric := formatScalar(v)
	if v == nil {
		text = "inherit"
	} else if numeric {
		switch {
		case isUnitless(kebab):
			// bare number
		case isDimension(kebab):
			text += "px"
		}
	}

	if importantProperties[kebab] {
		text += " !important"
	}
	return text
}

// formatScalar stringifies v and reports whether it was numeric.
func formatScalar(v any) (string, bool) {
	switch n := v.(type) {
	case nil:
		return "inherit", false
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case string:
		return n, false
	case interface{ String() string }:
		return n.String(), false
	default:
		return fmt.Sprintf("%v", v), false
	}
}
