package matchers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/tidwall/gjson"
)

// DOM-aware predicate names. ToBe and ToContain are shared with Base.
const (
	ToHaveClass   = "toHaveClass"
	ToBeVisible   = "toBeVisible"
	ToBeHidden    = "toBeHidden"
	ToBeSelected  = "toBeSelected"
	ToBeChecked   = "toBeChecked"
	ToBeEmpty     = "toBeEmpty"
	ToBeAnElement = "toBeAnElement"
	ToHaveAttr    = "toHaveAttr"
	ToHaveID      = "toHaveId"
	ToHaveHTML    = "toHaveHtml"
	ToHaveText    = "toHaveText"
	ToHaveValue   = "toHaveValue"
	ToHaveData    = "toHaveData"
	ToBeDisabled  = "toBeDisabled"
)

// Predicate checks an element against declared arguments.
type Predicate func(el *dom.Element, args ...any) bool

// DOM returns the DOM-aware predicate set.
func DOM() map[string]Predicate {
	return map[string]Predicate{
		ToHaveClass: func(el *dom.Element, args ...any) bool {
			name, ok := stringArg(args, 0)
			return ok && el.HasClass(name)
		},
		ToBeVisible: func(el *dom.Element, args ...any) bool {
			return el.ComputedDisplay() != "none"
		},
		ToBeHidden: func(el *dom.Element, args ...any) bool {
			return el.ComputedDisplay() == "none"
		},
		ToBeSelected: func(el *dom.Element, args ...any) bool {
			return el.Selected()
		},
		ToBeChecked: func(el *dom.Element, args ...any) bool {
			return el.Checked()
		},
		ToBeEmpty: func(el *dom.Element, args ...any) bool {
			return el.IsEmpty()
		},
		ToBeAnElement: func(el *dom.Element, args ...any) bool {
			return true
		},
		ToHaveAttr: haveAttr,
		ToHaveID: func(el *dom.Element, args ...any) bool {
			id, present := el.Attr("id")
			return present && id == fmt.Sprint(arg(args, 0))
		},
		ToHaveHTML: func(el *dom.Element, args ...any) bool {
			markup, ok := stringArg(args, 0)
			if !ok {
				return false
			}
			normalized, err := el.Document().NormalizeHTML(markup)
			if err != nil {
				return false
			}
			return el.InnerHTML() == normalized
		},
		ToHaveText: func(el *dom.Element, args ...any) bool {
			if re, ok := arg(args, 0).(*regexp.Regexp); ok {
				return re != nil && re.MatchString(el.InnerHTML())
			}
			text, ok := stringArg(args, 0)
			return ok && el.InnerHTML() == text
		},
		ToHaveValue: func(el *dom.Element, args ...any) bool {
			if !el.HasAttribute("value") {
				return false
			}
			return el.Value() == fmt.Sprint(arg(args, 0))
		},
		ToHaveData: haveData,
		ToBe: func(el *dom.Element, args ...any) bool {
			selector, ok := stringArg(args, 0)
			return ok && el.Matches(selector)
		},
		ToContain: func(el *dom.Element, args ...any) bool {
			selector, ok := stringArg(args, 0)
			return ok && el.Down(selector) != nil
		},
		ToBeDisabled: func(el *dom.Element, args ...any) bool {
			return el.Disabled()
		},
	}
}

// haveAttr compares the stored value when one is given and otherwise only
// checks presence.
func haveAttr(el *dom.Element, args ...any) bool {
	name, ok := stringArg(args, 0)
	if !ok {
		return false
	}
	value, present := el.Attr(name)
	expected := arg(args, 1)
	if isNil(expected) {
		return present
	}
	return present && value == fmt.Sprint(expected)
}

// haveData reads data-<key>. A dotted key continues as a gjson path into the
// attribute's JSON value: "config.theme" reads theme from data-config.
func haveData(el *dom.Element, args ...any) bool {
	key, ok := stringArg(args, 0)
	if !ok || key == "" {
		return false
	}
	name, path, nested := strings.Cut(key, ".")
	raw, present := el.Attr("data-" + kebab(name))
	if !present {
		return false
	}

	expected := arg(args, 1)
	if !nested {
		if isNil(expected) {
			return true
		}
		return raw == fmt.Sprint(expected)
	}

	result := gjson.Get(raw, path)
	if !result.Exists() {
		return false
	}
	if isNil(expected) {
		return true
	}
	return equals(result.Value(), expected) || result.String() == fmt.Sprint(expected)
}

func stringArg(args []any, i int) (string, bool) {
	switch v := arg(args, i).(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// kebab turns a camelCase data key into its attribute form.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
