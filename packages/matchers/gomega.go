package matchers

import (
	"github.com/onsi/gomega/types"
)

type gomegaMatcher struct {
	table  Table
	name   string
	args   []any
	actual any
}

// Gomega exposes a table predicate as a gomega matcher:
//
//	g.Expect(el).To(matchers.Gomega(table, matchers.ToHaveClass, "active"))
func Gomega(table Table, name string, args ...any) types.GomegaMatcher {
	return &gomegaMatcher{table: table, name: name, args: args}
}

func (m *gomegaMatcher) Match(actual any) (bool, error) {
	s := &Subject{Actual: actual}
	ok := m.table.Match(m.name, s, m.args...)
	m.actual = s.Actual
	return ok, nil
}

func (m *gomegaMatcher) FailureMessage(actual any) string {
	return Message(m.name, m.described(actual), false, m.args...)
}

func (m *gomegaMatcher) NegatedFailureMessage(actual any) string {
	return Message(m.name, m.described(actual), true, m.args...)
}

// described prefers the subject as left by the predicate, which is markup for
// elements.
func (m *gomegaMatcher) described(actual any) any {
	if m.actual != nil {
		return m.actual
	}
	return actual
}
