// Package dom provides the in-memory document model domspec tests run against.
//
// It wraps golang.org/x/net/html trees with the operations fixture helpers and
// DOM-aware matchers need:
//   - Markup parsing and serialization (inner and outer HTML)
//   - Attribute, class and inline style access
//   - Form properties (checked, selected, disabled, value)
//   - CSS selector matching and descendant queries
//   - Event observation with bubbling dispatch
//
// Every html.Node maps to exactly one *Element per Document, so element
// handles can be compared and used as map keys.
package dom
