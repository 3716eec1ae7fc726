package dom

import "errors"

var (
	// ErrNoBody is returned when a parsed document has no <body> element.
	ErrNoBody = errors.New("document has no body")

	// ErrInvalidSelector is returned when a CSS selector cannot be compiled.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrNotElement is returned when an element operation is applied to a
	// non-element node.
	ErrNotElement = errors.New("node is not an element")
)
