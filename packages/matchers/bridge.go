package matchers

import (
	"github.com/abdul-hamid-achik/domspec/packages/dom"
)

// Bridge wraps every predicate so that it applies only to element subjects.
// For an element the predicate runs and the subject is replaced by the
// element's markup. For anything else the base predicate of the same name
// runs unchanged, or the match fails when base has none.
func Bridge(base Table, predicates map[string]Predicate) Table {
	out := make(Table, len(predicates))
	for name, pred := range predicates {
		out[name] = bind(pred, base[name])
	}
	return out
}

func bind(pred Predicate, builtIn Func) Func {
	return func(s *Subject, args ...any) bool {
		if el, ok := s.Actual.(*dom.Element); ok && el != nil {
			result := pred(el, args...)
			s.Actual = el.String()
			return result
		}
		if builtIn != nil {
			return builtIn(s, args...)
		}
		return false
	}
}

// Default returns Base merged with the bridged DOM predicates.
func Default() Table {
	base := Base()
	return Merge(base, Bridge(base, DOM()))
}
