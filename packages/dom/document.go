package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const emptyDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is a parsed HTML document and the owner of every Element created
// from it.
type Document struct {
	root     *html.Node
	body     *html.Node
	elements map[*html.Node]*Element
}

// NewDocument returns an empty document with a head and a body.
func NewDocument() *Document {
	doc, err := Parse(emptyDocument)
	if err != nil {
		// The literal above always parses.
		panic(err)
	}
	return doc
}

// Parse parses a complete HTML document.
func Parse(markup string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	d := &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}
	d.body = findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	if d.body == nil {
		return nil, ErrNoBody
	}
	return d, nil
}

// Root returns the underlying document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// CreateElement returns a new detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	return d.wrap(n)
}

// Wrap returns the element handle for n, which must belong to d.
func (d *Document) Wrap(n *html.Node) (*Element, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, ErrNotElement
	}
	return d.wrap(n), nil
}

// GetElementByID returns the first attached element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// Query returns the first attached element matching selector, or nil when
// nothing matches or the selector is invalid.
func (d *Document) Query(selector string) *Element {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	n := cascadia.Query(d.root, sel)
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// QueryAll returns every attached element matching selector in document
// order. An invalid selector yields no elements.
func (d *Document) QueryAll(selector string) []*Element {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	return d.wrapAll(cascadia.QueryAll(d.root, sel))
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var b strings.Builder
	_ = html.Render(&b, d.root)
	return b.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

func (d *Document) wrapAll(nodes []*html.Node) []*Element {
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// parseFragment parses markup in the context of the given element node.
func (d *Document) parseFragment(markup string, context *html.Node) ([]*html.Node, error) {
	if context == nil || context.Type != html.ElementNode {
		context = d.body
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return nodes, nil
}

// NormalizeHTML returns markup as the DOM serializes it after insertion into
// a fresh <div>: tag and attribute names lower-cased, implied end tags added.
func (d *Document) NormalizeHTML(markup string) (string, error) {
	div := d.CreateElement("div")
	if err := div.Insert(markup); err != nil {
		return "", err
	}
	return div.InnerHTML(), nil
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// compile accepts selector groups such as "h1, h2".
func compile(selector string) (cascadia.Matcher, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return sel, nil
}
