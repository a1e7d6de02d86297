// Package breakpoint holds the ordered set of named responsive breakpoints
// and resolves the active one from viewport width. The system is
// mobile-first: Base means "no media query" and wider breakpoints layer on
// top of it.
package breakpoint

import "fmt"

// Key identifies a responsive breakpoint.
type Key int

const (
	Base Key = iota
	SM       // ≥640px by default
	MD       // ≥768px by default
	LG       // ≥1024px by default
	XL       // ≥1280px by default
	XXL      // ≥1536px by default (2xl)
)

// keyNames is in canonical order, smallest to largest. All range and
// containment comparisons use this order.
var keyNames = [...]string{"base", "sm", "md", "lg", "xl", "2xl"}

// Keys returns all breakpoint keys in canonical order.
func Keys() []Key {
	return []Key{Base, SM, MD, LG, XL, XXL}
}

func (k Key) String() string {
	if k < Base || int(k) >= len(keyNames) {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Valid reports whether k is a recognized breakpoint key.
func (k Key) Valid() bool {
	return k >= Base && int(k) < len(keyNames)
}

// ParseKey converts a breakpoint name ("base", "sm", ... "2xl") to its Key.
func ParseKey(name string) (Key, error) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return Base, fmt.Errorf("unknown breakpoint %q", name)
}
