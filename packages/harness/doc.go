// Package harness wires fixtures, event spies and the matcher table into Go
// tests.
//
// A Suite is built once per package and owns the document, the fixture
// manager and the spy registry. Each test calls Begin, which returns a Spec
// bound to that test and registers the clean-up hook with t.Cleanup:
//
//	var suite = harness.NewSuite()
//
//	func TestMenu(t *testing.T) {
//		s := suite.Begin(t)
//		s.LoadFixtures("menu.html")
//		s.SpyOnEvent("#menu a", "click")
//
//		s.Query("#menu a").Fire("click")
//
//		s.Expect("click").To(matchers.ToHaveBeenTriggeredOn, "#menu a")
//		s.Expect(s.Query("#menu")).To(matchers.ToHaveClass, "open")
//	}
//
// The fixture cache outlives individual tests. Call ClearCache to drop it.
package harness
