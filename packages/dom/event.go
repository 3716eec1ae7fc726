package dom

import (
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Event is dispatched to an element and, when Bubbles is set, to each of its
// ancestors.
type Event struct {
	ID            string
	Type          string
	Target        *Element
	CurrentTarget *Element
	Bubbles       bool
	Detail        any

	stopped          bool
	defaultPrevented bool
}

// NewEvent returns a bubbling event of the given type with a fresh ID.
func NewEvent(eventType string) *Event {
	return &Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		Bubbles: true,
	}
}

// StopPropagation prevents delivery to further ancestors. Listeners on the
// current target still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// PreventDefault marks the event as cancelled.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// Handler observes events.
type Handler func(*Event)

type listener struct {
	id      int
	handler Handler
}

// Observe registers handler for eventType and returns a function that
// removes it again.
func (e *Element) Observe(eventType string, handler Handler) (stop func()) {
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.nextID++
	l := &listener{id: e.nextID, handler: handler}
	e.listeners[eventType] = append(e.listeners[eventType], l)
	return func() {
		e.stopObserving(eventType, l.id)
	}
}

// ListenerCount returns how many handlers are registered for eventType.
func (e *Element) ListenerCount(eventType string) int {
	return len(e.listeners[eventType])
}

func (e *Element) stopObserving(eventType string, id int) {
	ls := e.listeners[eventType]
	for i, l := range ls {
		if l.id == id {
			e.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Fire dispatches a new bubbling event of eventType at e and returns it.
func (e *Element) Fire(eventType string) *Event {
	ev := NewEvent(eventType)
	e.Dispatch(ev)
	return ev
}

// Dispatch delivers ev to e and then, while it bubbles and has not been
// stopped, to each ancestor element in turn. It returns false when a
// listener called PreventDefault.
func (e *Element) Dispatch(ev *Event) bool {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	ev.Target = e
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		current := e.doc.wrap(n)
		ev.CurrentTarget = current
		current.invoke(ev)
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

func (e *Element) invoke(ev *Event) {
	ls := e.listeners[ev.Type]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.handler(ev)
	}
}
