package matchers

import (
	"sort"
)

// Subject is the value under test. Predicates may replace Actual with a
// representation better suited to failure messages.
type Subject struct {
	Actual any
}

// Func is a named predicate over a subject and its declared arguments.
type Func func(s *Subject, args ...any) bool

// Table maps predicate names to predicates.
type Table map[string]Func

// Merge combines tables into a new one. Later tables shadow earlier ones.
func Merge(tables ...Table) Table {
	out := make(Table)
	for _, t := range tables {
		for name, fn := range t {
			out[name] = fn
		}
	}
	return out
}

// Match runs the named predicate. A name missing from the table does not
// match.
func (t Table) Match(name string, s *Subject, args ...any) bool {
	fn, ok := t[name]
	if !ok || fn == nil {
		return false
	}
	return fn(s, args...)
}

// Has reports whether the table defines name.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Names returns the predicate names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
