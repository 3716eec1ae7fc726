package harness

import (
	"testing"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/abdul-hamid-achik/domspec/packages/matchers"
	"github.com/stretchr/testify/assert"
)

// Spec is the per-test handle returned by Suite.Begin. Environment failures
// such as a fixture that cannot be fetched stop the test.
type Spec struct {
	t     testing.TB
	suite *Suite
}

// T returns the test the spec reports to.
func (s *Spec) T() testing.TB {
	return s.t
}

// LoadFixtures replaces the container content with the named fixtures.
func (s *Spec) LoadFixtures(paths ...string) {
	s.t.Helper()
	if err := s.suite.fixtures.Load(paths...); err != nil {
		s.t.Fatalf("load fixtures: %v", err)
	}
}

// SetFixtures replaces the container content with html.
func (s *Spec) SetFixtures(html string) {
	s.t.Helper()
	if err := s.suite.fixtures.Set(html); err != nil {
		s.t.Fatalf("set fixtures: %v", err)
	}
}

// SetFixtureElement replaces the container content with el.
func (s *Spec) SetFixtureElement(el *dom.Element) {
	s.t.Helper()
	if el == nil {
		s.t.Fatalf("set fixture element: nil element")
		return
	}
	s.suite.fixtures.SetElement(el)
}

// ReadFixtures returns the concatenated fixture content without touching the
// document.
func (s *Spec) ReadFixtures(paths ...string) string {
	s.t.Helper()
	content, err := s.suite.fixtures.Read(paths...)
	if err != nil {
		s.t.Fatalf("read fixtures: %v", err)
	}
	return content
}

// PreloadFixtures fills the cache.
func (s *Spec) PreloadFixtures(paths ...string) {
	s.t.Helper()
	if err := s.suite.fixtures.Preload(paths...); err != nil {
		s.t.Fatalf("preload fixtures: %v", err)
	}
}

// ClearCache empties the fixture cache.
func (s *Spec) ClearCache() {
	s.suite.fixtures.ClearCache()
}

// Sandbox returns a detached element with the sandbox id, overridden by attrs.
func (s *Spec) Sandbox(attrs map[string]string) *dom.Element {
	return s.suite.fixtures.Sandbox(attrs)
}

// SpyOnEvent records firings of eventName on target, a selector or element.
func (s *Spec) SpyOnEvent(target any, eventName string) {
	s.t.Helper()
	if err := s.suite.registry.SpyOn(target, eventName); err != nil {
		s.t.Fatalf("spy on %s: %v", eventName, err)
	}
}

// Query returns the first element in the document matching selector.
func (s *Spec) Query(selector string) *dom.Element {
	return s.suite.doc.Query(selector)
}

// Container returns the fixture container, or nil.
func (s *Spec) Container() *dom.Element {
	return s.suite.fixtures.Container()
}

// Expect starts an expectation about actual.
func (s *Spec) Expect(actual any) *Expectation {
	return &Expectation{spec: s, actual: actual}
}

// Expectation evaluates predicates from the suite's table against one value.
type Expectation struct {
	spec   *Spec
	actual any
}

// To reports a failure unless the predicate holds. An unknown predicate
// never holds.
func (e *Expectation) To(name string, args ...any) bool {
	e.spec.t.Helper()
	return e.check(name, false, args)
}

// NotTo reports a failure if the predicate holds.
func (e *Expectation) NotTo(name string, args ...any) bool {
	e.spec.t.Helper()
	return e.check(name, true, args)
}

func (e *Expectation) check(name string, negated bool, args []any) bool {
	e.spec.t.Helper()
	subject := &matchers.Subject{Actual: e.actual}
	pass := e.spec.suite.table.Match(name, subject, args...)
	if pass != negated {
		return true
	}
	return assert.Fail(e.spec.t, matchers.Message(name, subject.Actual, negated, args...))
}
