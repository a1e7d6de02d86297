package dom

import (
	"errors"
	"strings"
)

// MemDocument is an in-memory Document.
type MemDocument struct {
	elements map[string]*MemStyleElement
}

// NewMemDocument creates an empty in-memory document.
func NewMemDocument() *MemDocument {
	return &MemDocument{elements: make(map[string]*MemStyleElement)}
}

func (d *MemDocument) CreateStyleElement(id string) StyleElement {
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := &MemStyleElement{ID: id}
	d.elements[id] = el
	return el
}

// StyleElement returns the element with the given id, if it was created.
func (d *MemDocument) StyleElement(id string) (*MemStyleElement, bool) {
	el, ok := d.elements[id]
	return el, ok
}

type segment struct {
	handle int // 0 for appended text
	css    string
}

// MemStyleElement records every write for inspection by tests.
type MemStyleElement struct {
	ID          string
	AppendCalls int

	segments   []segment
	nextHandle int
}

func (e *MemStyleElement) AppendText(css string) {
	e.AppendCalls++
	e.segments = append(e.segments, segment{css: css})
}

// InsertRule accepts one brace-balanced rule block, mimicking a browser
// rule parser: unbalanced or empty input is rejected.
func (e *MemStyleElement) InsertRule(css string) (int, error) {
	trimmed := strings.TrimSpace(css)
	if trimmed == "" || !strings.Contains(trimmed, "{") ||
		strings.Count(trimmed, "{") != strings.Count(trimmed, "}") {
		return 0, errors.New("malformed css rule")
	}
	e.nextHandle++
	e.segments = append(e.segments, segment{handle: e.nextHandle, css: css})
	return e.nextHandle, nil
}

func (e *MemStyleElement) DeleteRule(handle int) error {
	for i, s := range e.segments {
		if s.handle == handle && handle != 0 {
			e.segments = append(e.segments[:i], e.segments[i+1:]...)
			return nil
		}
	}
	return errors.New("unknown rule handle")
}

// CSSText returns the full stylesheet content in insertion order.
func (e *MemStyleElement) CSSText() string {
	parts := make([]string, 0, len(e.segments))
	for _, s := range e.segments {
		parts = append(parts, s.css)
	}
	return strings.Join(parts, "\n")
}

// RuleCount reports how many parsed rules are currently present.
func (e *MemStyleElement) RuleCount() int {
	n := 0
	for _, s := range e.segments {
		if s.handle != 0 {
			n++
		}
	}
	return n
}

// MemElement is an in-memory Element.
type MemElement struct {
	Classes []string
}

// NewMemElement creates an element with no classes.
func NewMemElement() *MemElement {
	return &MemElement{}
}

func (e *MemElement) AddClass(name string) {
	for _, c := range e.Classes {
		if c == name {
			return
		}
	}
	e.Classes = append(e.Classes, name)
}

// HasClassPrefix reports whether any class starts with prefix.
func (e *MemElement) HasClassPrefix(prefix string) bool {
	for _, c := range e.Classes {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}
