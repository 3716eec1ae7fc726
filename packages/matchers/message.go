package matchers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/abdul-hamid-achik/domspec/packages/events"
)

// Message renders the failure message for a predicate, in the form
// "Expected 'x' to have class 'y'." or its negated counterpart.
func Message(name string, actual any, negated bool, args ...any) string {
	not := ""
	if negated {
		not = "not "
	}

	if name == ToHaveBeenTriggeredOn {
		return fmt.Sprintf("Expected event %v %sto have been triggered on %s", actual, not, events.Describe(arg(args, 0)))
	}

	var b strings.Builder
	b.WriteString("Expected ")
	b.WriteString(Format(actual))
	b.WriteString(" ")
	b.WriteString(not)
	b.WriteString(Humanize(name))
	for i, a := range args {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(Format(a))
	}
	b.WriteString(".")
	return b.String()
}

// Humanize splits a camelCase predicate name into lower-case words:
// "toHaveClass" becomes "to have class".
func Humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Format renders a value for a failure message.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return "'" + val + "'"
	case *regexp.Regexp:
		if val == nil {
			return "nil"
		}
		return "/" + val.String() + "/"
	case fmt.Stringer:
		if isNil(val) {
			return "nil"
		}
		return val.String()
	}
	return fmt.Sprintf("%v", v)
}
