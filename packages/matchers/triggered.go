package matchers

import (
	"fmt"

	"github.com/abdul-hamid-achik/domspec/packages/events"
)

// ToHaveBeenTriggeredOn checks an event spy. The subject is the event name
// and the argument the spied target.
const ToHaveBeenTriggeredOn = "toHaveBeenTriggeredOn"

// TriggeredOn returns a table holding ToHaveBeenTriggeredOn bound to
// registry. It is not bridged: the subject is never an element.
func TriggeredOn(registry *events.Registry) Table {
	return Table{
		ToHaveBeenTriggeredOn: func(s *Subject, args ...any) bool {
			eventName := fmt.Sprint(s.Actual)
			return registry.WasTriggered(arg(args, 0), eventName)
		},
	}
}
