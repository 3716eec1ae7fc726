package events

import (
	"testing"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, markup string) (*dom.Document, *Registry) {
	t.Helper()
	doc := dom.NewDocument()
	require.NoError(t, doc.Body().Insert(markup))
	return doc, NewRegistry(doc)
}

func TestRegistry_SpyOnSelector(t *testing.T) {
	doc, r := setup(t, `<button id="go">Go</button>`)

	require.NoError(t, r.SpyOn("#go", "click"))
	assert.False(t, r.WasTriggered("#go", "click"))

	doc.GetElementByID("go").Fire("click")

	assert.True(t, r.WasTriggered("#go", "click"))
	assert.False(t, r.WasTriggered("#go", "hover"))
	assert.False(t, r.WasTriggered("#other", "click"))
}

func TestRegistry_SpyOnElement(t *testing.T) {
	doc, r := setup(t, `<a id="link">x</a>`)
	link := doc.GetElementByID("link")

	require.NoError(t, r.SpyOn(link, "focus"))
	link.Fire("focus")

	assert.True(t, r.WasTriggered(link, "focus"))
}

func TestRegistry_SelectorAndElementAreDistinctKeys(t *testing.T) {
	doc, r := setup(t, `<a id="link">x</a>`)
	link := doc.GetElementByID("link")

	require.NoError(t, r.SpyOn("#link", "click"))
	link.Fire("click")

	assert.True(t, r.WasTriggered("#link", "click"))
	assert.False(t, r.WasTriggered(link, "click"))
	assert.False(t, r.WasTriggered("a#link", "click"))
}

func TestRegistry_SelectorMatchesSeveralElements(t *testing.T) {
	doc, r := setup(t, `<li class="item">a</li><li class="item">b</li>`)
	items := doc.QueryAll(".item")
	require.Len(t, items, 2)

	require.NoError(t, r.SpyOn(".item", "click"))

	first := items[0].Fire("click")
	assert.Same(t, first, r.Event(".item", "click"))

	second := items[1].Fire("click")
	assert.Same(t, second, r.Event(".item", "click"), "later firings overwrite the record")
}

func TestRegistry_SelectorResolvedAtInstallTime(t *testing.T) {
	doc, r := setup(t, ``)

	require.NoError(t, r.SpyOn(".late", "click"))
	require.NoError(t, doc.Body().Insert(`<p class="late">x</p>`))
	doc.Query(".late").Fire("click")

	assert.False(t, r.WasTriggered(".late", "click"))
}

func TestRegistry_BubbledEventsAreRecorded(t *testing.T) {
	doc, r := setup(t, `<div id="panel"><button>x</button></div>`)

	require.NoError(t, r.SpyOn("#panel", "click"))
	ev := doc.Query("#panel button").Fire("click")

	assert.Same(t, ev, r.Event("#panel", "click"))
}

func TestRegistry_CleanUp(t *testing.T) {
	doc, r := setup(t, `<button id="go">Go</button>`)
	btn := doc.GetElementByID("go")

	require.NoError(t, r.SpyOn("#go", "click"))
	btn.Fire("click")
	require.True(t, r.WasTriggered("#go", "click"))
	assert.Equal(t, 1, r.Handlers())

	r.CleanUp()

	assert.False(t, r.WasTriggered("#go", "click"))
	assert.Equal(t, 0, r.Handlers())

	// Handlers stay attached but no longer record.
	assert.Equal(t, 1, btn.ListenerCount("click"))
	btn.Fire("click")
	assert.False(t, r.WasTriggered("#go", "click"))
}

func TestRegistry_SpyAfterCleanUpRecords(t *testing.T) {
	doc, r := setup(t, `<button id="go">Go</button>`)
	btn := doc.GetElementByID("go")

	require.NoError(t, r.SpyOn(btn, "click"))
	r.CleanUp()
	require.NoError(t, r.SpyOn(btn, "click"))

	btn.Fire("click")
	assert.True(t, r.WasTriggered(btn, "click"))
	assert.Equal(t, 2, btn.ListenerCount("click"))
}

func TestRegistry_UnsupportedTarget(t *testing.T) {
	_, r := setup(t, ``)

	err := r.SpyOn(42, "click")
	assert.ErrorIs(t, err, ErrUnsupportedTarget)

	var nilElement *dom.Element
	assert.ErrorIs(t, r.SpyOn(nilElement, "click"), ErrUnsupportedTarget)

	assert.False(t, r.WasTriggered(42, "click"))
	assert.Nil(t, r.Event(nil, "click"))
}

func TestDescribe(t *testing.T) {
	doc := dom.NewDocument()
	el := doc.CreateElement("span")

	assert.Equal(t, "#a", Describe("#a"))
	assert.Equal(t, "<span></span>", Describe(el))
	assert.Equal(t, "42", Describe(42))
}
