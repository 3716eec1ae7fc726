package dom

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a handle to an element node. Property state that has no
// attribute representation once changed (checked, selected, disabled, value)
// and event listeners live on the handle.
type Element struct {
	doc  *Document
	node *html.Node

	checked  *bool
	selected *bool
	disabled *bool
	value    *string

	listeners map[string][]*listener
	nextID    int
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// TagName returns the lower-case tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return attr(e.node, name)
}

// GetAttribute returns the attribute value or "" when absent.
func (e *Element) GetAttribute(name string) string {
	v, _ := attr(e.node, name)
	return v
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := attr(e.node, name)
	return ok
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// SetAttributes applies every attribute in attrs. Keys are applied in sorted
// order so the serialized markup is stable.
func (e *Element) SetAttributes(attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.SetAttribute(k, attrs[k])
	}
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	kept := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	e.node.Attr = kept
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(e.GetAttribute("class"))
}

// HasClass reports whether name is one of the element's class tokens.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends a class token unless already present.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.SetAttribute("class", strings.TrimSpace(e.GetAttribute("class")+" "+name))
}

// RemoveClass drops every occurrence of a class token.
func (e *Element) RemoveClass(name string) {
	var kept []string
	for _, c := range e.Classes() {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// Parent returns the parent element, or nil when detached or at the root.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

// IsAttached reports whether the element is part of its document tree.
func (e *Element) IsAttached() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// Insert parses markup in the context of e and appends the resulting nodes.
func (e *Element) Insert(markup string) error {
	nodes, err := e.doc.parseFragment(markup, e.node)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// SetInnerHTML replaces the element's content with parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := e.doc.parseFragment(markup, e.node)
	if err != nil {
		return err
	}
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// Remove detaches the element from its parent. Listeners stay attached.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// Clone copies the element. With deep set, descendants are copied too.
// Listeners and changed property state are not copied.
func (e *Element) Clone(deep bool) *Element {
	return e.doc.wrap(cloneNode(e.node, deep))
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// OuterHTML serializes the element itself.
func (e *Element) OuterHTML() string {
	var b strings.Builder
	_ = html.Render(&b, e.node)
	return b.String()
}

// String renders the element's outer markup, so failure messages show the
// element rather than a pointer.
func (e *Element) String() string {
	return e.OuterHTML()
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// IsEmpty reports whether the element's inner markup is blank.
func (e *Element) IsEmpty() bool {
	return strings.TrimSpace(e.InnerHTML()) == ""
}

// Matches reports whether the element matches selector. Invalid selectors
// never match.
func (e *Element) Matches(selector string) bool {
	sel, err := compile(selector)
	if err != nil {
		return false
	}
	return sel.Match(e.node)
}

// Down returns the first descendant matching selector, or nil.
func (e *Element) Down(selector string) *Element {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	n := cascadia.Query(e.node, sel)
	if n == nil {
		return nil
	}
	return e.doc.wrap(n)
}

// QueryAll returns every descendant matching selector.
func (e *Element) QueryAll(selector string) []*Element {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	return e.doc.wrapAll(cascadia.QueryAll(e.node, sel))
}

func attr(n *html.Node, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func cloneNode(n *html.Node, deep bool) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if deep {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			c.AppendChild(cloneNode(child, true))
		}
	}
	return c
}

func isFormControl(a atom.Atom) bool {
	switch a {
	case atom.Input, atom.Select, atom.Textarea, atom.Button, atom.Option, atom.Optgroup, atom.Fieldset:
		return true
	}
	return false
}
