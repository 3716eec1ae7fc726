package fixtures

import (
	"fmt"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"go.uber.org/zap"
)

const (
	// DefaultContainerID is the id of the element hosting fixture content.
	DefaultContainerID = "domspec-fixtures"
	// DefaultSandboxID is the id given to every sandbox element.
	DefaultSandboxID = "sandbox"
)

// Fixtures manages the fixture container of one document.
type Fixtures struct {
	doc         *dom.Document
	loader      *Loader
	containerID string
	sandboxID   string
	logger      *zap.Logger
}

// Option configures Fixtures.
type Option func(*Fixtures)

// WithContainerID overrides the container element id.
func WithContainerID(id string) Option {
	return func(f *Fixtures) {
		f.containerID = id
	}
}

// WithSandboxID overrides the sandbox element id.
func WithSandboxID(id string) Option {
	return func(f *Fixtures) {
		f.sandboxID = id
	}
}

// WithFixturesLogger sets the logger used for container events.
func WithFixturesLogger(logger *zap.Logger) Option {
	return func(f *Fixtures) {
		f.logger = logger
	}
}

// New returns a fixture manager for doc. A nil loader gets a default one.
func New(doc *dom.Document, loader *Loader, opts ...Option) *Fixtures {
	if loader == nil {
		loader = NewLoader()
	}
	f := &Fixtures{
		doc:         doc,
		loader:      loader,
		containerID: DefaultContainerID,
		sandboxID:   DefaultSandboxID,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Document returns the document fixtures are inserted into.
func (f *Fixtures) Document() *dom.Document {
	return f.doc
}

// Loader returns the loader used by Read, Preload and Load.
func (f *Fixtures) Loader() *Loader {
	return f.loader
}

// ContainerID returns the container element id.
func (f *Fixtures) ContainerID() string {
	return f.containerID
}

// Set replaces the container with one holding html parsed as markup.
func (f *Fixtures) Set(html string) error {
	f.CleanUp()
	container := f.newContainer()
	if err := container.Insert(html); err != nil {
		return fmt.Errorf("setting fixture: %w", err)
	}
	f.attach(container)
	return nil
}

// SetElement replaces the container with one holding el. The element is
// moved into the container, not copied.
func (f *Fixtures) SetElement(el *dom.Element) {
	f.CleanUp()
	container := f.newContainer()
	container.AppendChild(el)
	f.attach(container)
}

// Load reads paths through the loader and sets the joined content. The
// previous container is removed even when reading fails.
func (f *Fixtures) Load(paths ...string) error {
	f.CleanUp()
	html, err := f.loader.Read(paths...)
	if err != nil {
		return err
	}
	return f.Set(html)
}

// Read returns the joined content of paths without touching the document.
func (f *Fixtures) Read(paths ...string) (string, error) {
	return f.loader.Read(paths...)
}

// Preload warms the cache for paths.
func (f *Fixtures) Preload(paths ...string) error {
	return f.loader.Preload(paths...)
}

// ClearCache drops every cached fixture.
func (f *Fixtures) ClearCache() {
	f.loader.ClearCache()
}

// Container returns the current container, or nil.
func (f *Fixtures) Container() *dom.Element {
	return f.doc.GetElementByID(f.containerID)
}

// CleanUp removes the container. It is a no-op when none exists.
func (f *Fixtures) CleanUp() {
	for c := f.Container(); c != nil; c = f.Container() {
		c.Remove()
		f.logger.Debug("fixture container removed", zap.String("id", f.containerID))
	}
}

// Sandbox returns a new detached <div> with the sandbox id and attrs
// applied. An "id" entry in attrs replaces the default id. The caller owns
// the element.
func (f *Fixtures) Sandbox(attrs map[string]string) *dom.Element {
	el := f.doc.CreateElement("div")
	el.SetAttribute("id", f.sandboxID)
	el.SetAttributes(attrs)
	return el
}

// SandboxHTML is Sandbox with inner markup.
func (f *Fixtures) SandboxHTML(attrs map[string]string, inner string) (*dom.Element, error) {
	el := f.Sandbox(attrs)
	if err := el.Insert(inner); err != nil {
		return nil, fmt.Errorf("filling sandbox: %w", err)
	}
	return el, nil
}

func (f *Fixtures) newContainer() *dom.Element {
	container := f.doc.CreateElement("div")
	container.SetAttribute("id", f.containerID)
	return container
}

func (f *Fixtures) attach(container *dom.Element) {
	f.doc.Body().AppendChild(container)
	f.logger.Debug("fixture container attached", zap.String("id", f.containerID))
}
