// Package dom is the boundary to the host document. The styling system
// only needs three capabilities: tag an element with a class, create a
// style element, and write rules into it. Browser drivers adapt the real
// DOM; the Mem types back tests and headless hosts.
package dom

// Element is the minimal surface of a target element.
type Element interface {
	AddClass(name string)
}

// Document creates style elements. One style element (fixed id) is the
// sole write target of the styling system.
type Document interface {
	// CreateStyleElement returns the style element with the given id,
	// creating and attaching it on first use.
	CreateStyleElement(id string) StyleElement
}

// StyleElement is a runtime stylesheet. AppendText is the bulk path (one
// text-node append per batch flush); InsertRule parses a single rule and
// may reject malformed CSS. Handles returned by InsertRule are stable and
// usable with DeleteRule regardless of later insertions.
type StyleElement interface {
	AppendText(css string)
	InsertRule(css string) (handle int, err error)
	DeleteRule(handle int) error
}
