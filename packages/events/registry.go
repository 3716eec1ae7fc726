package events

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"go.uber.org/zap"
)

// ErrUnsupportedTarget is returned for targets that are neither a selector
// string nor a *dom.Element.
var ErrUnsupportedTarget = errors.New("spy target must be a selector string or *dom.Element")

type key struct {
	selector  string
	element   *dom.Element
	eventName string
}

func keyFor(target any, eventName string) (key, error) {
	switch t := target.(type) {
	case string:
		return key{selector: t, eventName: eventName}, nil
	case *dom.Element:
		if t == nil {
			return key{}, fmt.Errorf("%w: nil element", ErrUnsupportedTarget)
		}
		return key{element: t, eventName: eventName}, nil
	default:
		return key{}, fmt.Errorf("%w: got %T", ErrUnsupportedTarget, target)
	}
}

// Registry holds spy handlers and the events they captured.
type Registry struct {
	doc        *dom.Document
	spied      map[key]*dom.Event
	handlers   []dom.Handler
	generation int
	logger     *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns a registry resolving selectors against doc.
func NewRegistry(doc *dom.Document, opts ...Option) *Registry {
	r := &Registry{
		doc:    doc,
		spied:  make(map[key]*dom.Event),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SpyOn observes eventName on target. A selector is resolved once, now, to
// every matching element; elements added later are not observed. Each firing
// overwrites the record for (target, eventName).
func (r *Registry) SpyOn(target any, eventName string) error {
	k, err := keyFor(target, eventName)
	if err != nil {
		return err
	}

	generation := r.generation
	handler := func(ev *dom.Event) {
		if r.generation != generation {
			return
		}
		r.spied[k] = ev
	}

	var elements []*dom.Element
	if k.element != nil {
		elements = []*dom.Element{k.element}
	} else {
		elements = r.doc.QueryAll(k.selector)
	}
	for _, el := range elements {
		el.Observe(eventName, handler)
	}
	r.handlers = append(r.handlers, handler)

	r.logger.Debug("spying on event",
		zap.String("event", eventName),
		zap.String("target", describe(k)),
		zap.Int("elements", len(elements)))
	return nil
}

// WasTriggered reports whether eventName fired on target since the spy was
// installed. Unsupported targets report false.
func (r *Registry) WasTriggered(target any, eventName string) bool {
	return r.Event(target, eventName) != nil
}

// Event returns the last event captured for (target, eventName), or nil.
func (r *Registry) Event(target any, eventName string) *dom.Event {
	k, err := keyFor(target, eventName)
	if err != nil {
		return nil
	}
	return r.spied[k]
}

// Handlers returns how many spy handlers were installed since the last
// CleanUp.
func (r *Registry) Handlers() int {
	return len(r.handlers)
}

// CleanUp forgets every record and handler. Handlers are not detached from
// their elements.
func (r *Registry) CleanUp() {
	r.spied = make(map[key]*dom.Event)
	r.handlers = nil
	r.generation++
}

func describe(k key) string {
	if k.element != nil {
		return k.element.String()
	}
	return k.selector
}

// Describe renders a target descriptor for messages.
func Describe(target any) string {
	switch t := target.(type) {
	case string:
		return t
	case *dom.Element:
		if t != nil {
			return t.String()
		}
	}
	return fmt.Sprintf("%v", target)
}
