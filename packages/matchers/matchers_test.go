package matchers

import (
	"regexp"
	"testing"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/abdul-hamid-achik/domspec/packages/events"
	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func element(t *testing.T, markup string) *dom.Element {
	t.Helper()
	doc := dom.NewDocument()
	require.NoError(t, doc.Body().Insert(markup))
	children := doc.Body().Children()
	require.NotEmpty(t, children)
	return children[0]
}

func match(table Table, name string, actual any, args ...any) bool {
	return table.Match(name, &Subject{Actual: actual}, args...)
}

func TestBase(t *testing.T) {
	table := Base()
	type point struct{ X, Y int }
	p := &point{1, 2}

	tests := []struct {
		name      string
		predicate string
		actual    any
		args      []any
		want      bool
	}{
		{"equal ints", ToEqual, 3, []any{3}, true},
		{"equal int and float", ToEqual, 3, []any{3.0}, true},
		{"equal string and int", ToEqual, "3", []any{3}, false},
		{"equal slices", ToEqual, []string{"a"}, []any{[]string{"a"}}, true},
		{"equal structs", ToEqual, point{1, 2}, []any{point{1, 2}}, true},
		{"be same pointer", ToBe, p, []any{p}, true},
		{"be other pointer", ToBe, p, []any{&point{1, 2}}, false},
		{"be different types", ToBe, 1, []any{int64(1)}, false},
		{"be uncomparable", ToBe, []int{1}, []any{[]int{1}}, false},
		{"match string pattern", ToMatch, "hello world", []any{"wor"}, true},
		{"match slashed pattern", ToMatch, "abc123", []any{"/\\d+/"}, true},
		{"match regexp", ToMatch, "abc", []any{regexp.MustCompile("^b")}, false},
		{"match bad pattern", ToMatch, "abc", []any{"("}, false},
		{"contain substring", ToContain, "hello", []any{"ell"}, true},
		{"contain element", ToContain, []any{1, "two"}, []any{"two"}, true},
		{"contain missing element", ToContain, []int{1, 2}, []any{3}, false},
		{"contain map key", ToContain, map[string]int{"a": 1}, []any{"a"}, true},
		{"contain on int", ToContain, 5, []any{5}, false},
		{"defined", ToBeDefined, 0, nil, true},
		{"undefined nil", ToBeUndefined, nil, nil, true},
		{"null typed nil", ToBeNull, (*point)(nil), nil, true},
		{"truthy string", ToBeTruthy, "x", nil, true},
		{"truthy zero", ToBeTruthy, 0, nil, false},
		{"falsy empty", ToBeFalsy, "", nil, true},
		{"falsy struct", ToBeFalsy, point{}, nil, false},
		{"less than", ToBeLessThan, 1, []any{2}, true},
		{"greater than", ToBeGreaterThan, 1.5, []any{2}, false},
		{"greater than non numeric", ToBeGreaterThan, "x", []any{2}, false},
		{"close to default precision", ToBeCloseTo, 1.001, []any{1.0}, true},
		{"close to precision", ToBeCloseTo, 1.01, []any{1.0, 3}, false},
		{"length of slice", ToHaveLength, []int{1, 2}, []any{2}, true},
		{"length of string", ToHaveLength, "abc", []any{3}, true},
		{"length of int", ToHaveLength, 3, []any{3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match(table, tt.predicate, tt.actual, tt.args...))
		})
	}
}

func TestDOMPredicates(t *testing.T) {
	table := Default()

	tests := []struct {
		name      string
		markup    string
		predicate string
		args      []any
		want      bool
	}{
		{"class present", `<p class="active foo"></p>`, ToHaveClass, []any{"active"}, true},
		{"class substring", `<p class="fooactive"></p>`, ToHaveClass, []any{"active"}, false},
		{"class missing arg", `<p class="a"></p>`, ToHaveClass, nil, false},
		{"visible", `<div></div>`, ToBeVisible, nil, true},
		{"visible when hidden", `<div style="display:none"></div>`, ToBeVisible, nil, false},
		{"hidden", `<div style="display: none"></div>`, ToBeHidden, nil, true},
		{"hidden attribute", `<div hidden></div>`, ToBeHidden, nil, true},
		{"selected", `<option selected>a</option>`, ToBeSelected, nil, true},
		{"not selected", `<option>a</option>`, ToBeSelected, nil, false},
		{"checked", `<input type="checkbox" checked>`, ToBeChecked, nil, true},
		{"not checked", `<input type="radio">`, ToBeChecked, nil, false},
		{"empty", `<div>  </div>`, ToBeEmpty, nil, true},
		{"not empty", `<div><span></span></div>`, ToBeEmpty, nil, false},
		{"an element", `<i></i>`, ToBeAnElement, nil, true},
		{"attr present", `<a href="/x"></a>`, ToHaveAttr, []any{"href"}, true},
		{"attr missing", `<a></a>`, ToHaveAttr, []any{"href"}, false},
		{"attr value", `<a href="/x"></a>`, ToHaveAttr, []any{"href", "/x"}, true},
		{"attr wrong value", `<a href="/x"></a>`, ToHaveAttr, []any{"href", "/y"}, false},
		{"attr coerced value", `<input maxlength="2">`, ToHaveAttr, []any{"maxlength", 2}, true},
		{"attr value on missing", `<a></a>`, ToHaveAttr, []any{"title", ""}, false},
		{"id", `<p id="main"></p>`, ToHaveID, []any{"main"}, true},
		{"id mismatch", `<p id="main"></p>`, ToHaveID, []any{"other"}, false},
		{"id absent", `<p></p>`, ToHaveID, []any{""}, false},
		{"html normalized", `<div><span class="x">Hi</span></div>`, ToHaveHTML, []any{`<SPAN CLASS="x">Hi</SPAN>`}, true},
		{"html differs", `<div><span>Hi</span></div>`, ToHaveHTML, []any{`<span>Bye</span>`}, false},
		{"text exact", `<p>Hello</p>`, ToHaveText, []any{"Hello"}, true},
		{"text regexp", `<p>Hello world</p>`, ToHaveText, []any{regexp.MustCompile(`wor`)}, true},
		{"text regexp miss", `<p>Hello</p>`, ToHaveText, []any{regexp.MustCompile(`^x`)}, false},
		{"value", `<input value="42">`, ToHaveValue, []any{"42"}, true},
		{"value coerced", `<input value="42">`, ToHaveValue, []any{42}, true},
		{"value without attribute", `<input>`, ToHaveValue, []any{""}, false},
		{"value without attribute any", `<textarea>x</textarea>`, ToHaveValue, []any{"x"}, false},
		{"data present", `<div data-role="panel"></div>`, ToHaveData, []any{"role"}, true},
		{"data value", `<div data-role="panel"></div>`, ToHaveData, []any{"role", "panel"}, true},
		{"data camel key", `<div data-user-id="7"></div>`, ToHaveData, []any{"userId", 7}, true},
		{"data json path", `<div data-config='{"theme":"dark","size":3}'></div>`, ToHaveData, []any{"config.theme", "dark"}, true},
		{"data json number", `<div data-config='{"size":3}'></div>`, ToHaveData, []any{"config.size", 3}, true},
		{"data json missing", `<div data-config='{"size":3}'></div>`, ToHaveData, []any{"config.theme"}, false},
		{"data missing", `<div></div>`, ToHaveData, []any{"role"}, false},
		{"be selector", `<p class="lead"></p>`, ToBe, []any{"p.lead"}, true},
		{"be other selector", `<p class="lead"></p>`, ToBe, []any{"div"}, false},
		{"contain selector", `<ul><li class="on"></li></ul>`, ToContain, []any{"li.on"}, true},
		{"contain self", `<ul></ul>`, ToContain, []any{"ul"}, false},
		{"disabled", `<button disabled>x</button>`, ToBeDisabled, nil, true},
		{"enabled", `<button>x</button>`, ToBeDisabled, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := element(t, tt.markup)
			assert.Equal(t, tt.want, match(table, tt.predicate, el, tt.args...))
		})
	}
}

func TestBridge_ReplacesElementSubjectWithMarkup(t *testing.T) {
	el := element(t, `<p class="a"><b>x</b></p>`)
	s := &Subject{Actual: el}

	assert.True(t, Default().Match(ToHaveClass, s, "a"))
	assert.Equal(t, `<p class="a"><b>x</b></p>`, s.Actual)
}

func TestBridge_NonElementFallsThroughToBase(t *testing.T) {
	table := Default()

	s := &Subject{Actual: []string{"a", "b"}}
	assert.True(t, table.Match(ToContain, s, "b"))
	assert.Equal(t, []string{"a", "b"}, s.Actual, "base predicates leave the subject alone")

	assert.True(t, match(table, ToBe, 5, 5))
}

func TestBridge_NonElementWithoutBaseFails(t *testing.T) {
	table := Default()

	assert.False(t, match(table, ToHaveClass, "active", "active"))
	assert.False(t, match(table, ToBeAnElement, "<p></p>"))

	var nilElement *dom.Element
	assert.False(t, match(table, ToBeAnElement, nilElement))
}

func TestBridge_OnlyDOMNamesAreWrapped(t *testing.T) {
	bridged := Bridge(Base(), DOM())

	assert.True(t, bridged.Has(ToHaveClass))
	assert.True(t, bridged.Has(ToBe))
	assert.False(t, bridged.Has(ToEqual))
}

func TestTable_MissingPredicate(t *testing.T) {
	assert.False(t, match(Default(), "toFly", 1))
	assert.False(t, match(Table{"nil": nil}, "nil", 1))
}

func TestMerge_LaterTablesShadow(t *testing.T) {
	always := Table{ToEqual: func(*Subject, ...any) bool { return true }}
	merged := Merge(Base(), always)

	assert.True(t, match(merged, ToEqual, 1, 2))
	assert.False(t, match(Base(), ToEqual, 1, 2))
	assert.Contains(t, merged.Names(), ToBeNull)
}

func TestTriggeredOn(t *testing.T) {
	doc := dom.NewDocument()
	require.NoError(t, doc.Body().Insert(`<button id="go"></button>`))
	registry := events.NewRegistry(doc)
	table := Merge(Default(), TriggeredOn(registry))

	require.NoError(t, registry.SpyOn("#go", "click"))
	assert.False(t, match(table, ToHaveBeenTriggeredOn, "click", "#go"))

	doc.GetElementByID("go").Fire("click")
	assert.True(t, match(table, ToHaveBeenTriggeredOn, "click", "#go"))
	assert.False(t, match(table, ToHaveBeenTriggeredOn, "hover", "#go"))
	assert.False(t, match(table, ToHaveBeenTriggeredOn, "click"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Expected '<p></p>' to have class 'active'.", Message(ToHaveClass, "<p></p>", false, "active"))
	assert.Equal(t, "Expected 1 not to equal 1.", Message(ToEqual, 1, true, 1))
	assert.Equal(t, "Expected 'x' to have attr 'a', 'b'.", Message(ToHaveAttr, "x", false, "a", "b"))
	assert.Equal(t, "Expected 'abc' to match /b/.", Message(ToMatch, "abc", false, regexp.MustCompile("b")))
	assert.Equal(t, "Expected nil to be defined.", Message(ToBeDefined, nil, false))
	assert.Equal(t, "Expected event click to have been triggered on #go", Message(ToHaveBeenTriggeredOn, "click", false, "#go"))
	assert.Equal(t, "Expected event click not to have been triggered on #go", Message(ToHaveBeenTriggeredOn, "click", true, "#go"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "to have class", Humanize("toHaveClass"))
	assert.Equal(t, "to be an element", Humanize("toBeAnElement"))
	assert.Equal(t, "to equal", Humanize("toEqual"))
}

func TestGomega(t *testing.T) {
	g := gomega.NewWithT(t)
	table := Default()
	el := element(t, `<p class="active">x</p>`)

	g.Expect(el).To(Gomega(table, ToHaveClass, "active"))
	g.Expect(el).NotTo(Gomega(table, ToBeHidden))
	g.Expect([]int{1, 2}).To(Gomega(table, ToContain, 2))

	m := Gomega(table, ToHaveClass, "missing")
	ok, err := m.Match(el)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(ok).To(gomega.BeFalse())
	g.Expect(m.FailureMessage(el)).To(gomega.Equal(`Expected '<p class="active">x</p>' to have class 'missing'.`))
}
