// Package matchers provides the predicate vocabulary used by domspec
// expectations.
//
// A Table maps predicate names to functions over a Subject. Three sources are
// merged into the table a test uses:
//   - Base: value predicates (toEqual, toBe, toContain, toMatch, ...)
//   - Bridge: DOM-aware predicates (toHaveClass, toBeVisible, toHaveAttr, ...)
//     that apply when the subject is a *dom.Element and otherwise fall
//     through to the base predicate of the same name
//   - TriggeredOn: toHaveBeenTriggeredOn, backed by an event spy registry
//
// Unknown predicate names never panic; they simply do not match.
package matchers
