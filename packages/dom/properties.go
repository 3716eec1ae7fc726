package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Style returns the value of a property declared in the inline style
// attribute. The last declaration wins.
func (e *Element) Style(property string) string {
	property = strings.ToLower(strings.TrimSpace(property))
	var value string
	for _, decl := range strings.Split(e.GetAttribute("style"), ";") {
		name, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(name)) == property {
			v = strings.TrimSpace(v)
			v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
			value = strings.ToLower(v)
		}
	}
	return value
}

// SetStyle sets one inline style declaration, replacing earlier ones for the
// same property.
func (e *Element) SetStyle(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	var kept []string
	for _, decl := range strings.Split(e.GetAttribute("style"), ";") {
		name, _, ok := strings.Cut(decl, ":")
		if !ok || strings.ToLower(strings.TrimSpace(name)) == property {
			continue
		}
		kept = append(kept, strings.TrimSpace(decl))
	}
	if value != "" {
		kept = append(kept, property+": "+value)
	}
	e.SetAttribute("style", strings.Join(kept, "; "))
}

// Show clears an inline display:none.
func (e *Element) Show() {
	if e.Style("display") == "none" {
		e.SetStyle("display", "")
	}
	e.RemoveAttribute("hidden")
}

// Hide sets an inline display:none.
func (e *Element) Hide() {
	e.SetStyle("display", "none")
}

// ComputedDisplay resolves the element's own display value: the inline style
// first, then the hidden attribute, then the tag's default.
func (e *Element) ComputedDisplay() string {
	if v := e.Style("display"); v != "" {
		return v
	}
	if e.HasAttribute("hidden") {
		return "none"
	}
	return defaultDisplay(e.node.DataAtom)
}

// Checked returns the checked property.
func (e *Element) Checked() bool {
	if e.checked != nil {
		return *e.checked
	}
	return e.node.DataAtom == atom.Input && e.HasAttribute("checked")
}

// SetChecked sets the checked property without touching the attribute.
func (e *Element) SetChecked(v bool) {
	e.checked = &v
}

// Selected returns the selected property.
func (e *Element) Selected() bool {
	if e.selected != nil {
		return *e.selected
	}
	return e.node.DataAtom == atom.Option && e.HasAttribute("selected")
}

// SetSelected sets the selected property without touching the attribute.
func (e *Element) SetSelected(v bool) {
	e.selected = &v
}

// Disabled returns the disabled property. Only form controls carry it.
func (e *Element) Disabled() bool {
	if !isFormControl(e.node.DataAtom) {
		return false
	}
	if e.disabled != nil {
		return *e.disabled
	}
	return e.HasAttribute("disabled")
}

// SetDisabled sets the disabled property without touching the attribute.
func (e *Element) SetDisabled(v bool) {
	e.disabled = &v
}

// Value returns the current value. A <select> reports its first selected
// option and a <textarea> its text until a value has been set.
func (e *Element) Value() string {
	if e.value != nil {
		return *e.value
	}
	switch e.node.DataAtom {
	case atom.Textarea:
		return e.Text()
	case atom.Select:
		for _, opt := range e.QueryAll("option") {
			if opt.Selected() {
				return opt.Value()
			}
		}
		if first := e.Down("option"); first != nil {
			return first.Value()
		}
		return ""
	case atom.Option:
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(e.Text())
	}
	return e.GetAttribute("value")
}

// SetValue sets the current value without touching the attribute.
func (e *Element) SetValue(v string) {
	e.value = &v
}

func defaultDisplay(a atom.Atom) string {
	switch a {
	case atom.Head, atom.Script, atom.Style, atom.Title, atom.Meta, atom.Link, atom.Template:
		return "none"
	case atom.A, atom.Span, atom.Em, atom.Strong, atom.B, atom.I, atom.U, atom.Code,
		atom.Label, atom.Small, atom.Abbr, atom.Sub, atom.Sup:
		return "inline"
	case atom.Input, atom.Select, atom.Textarea, atom.Button, atom.Img:
		return "inline-block"
	case atom.Li:
		return "list-item"
	case atom.Table:
		return "table"
	case atom.Tr:
		return "table-row"
	case atom.Td, atom.Th:
		return "table-cell"
	}
	return "block"
}
