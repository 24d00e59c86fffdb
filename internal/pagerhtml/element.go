package pagerhtml

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/rshade/pagenav/internal/pager"
)

// DefaultTag is the element used for buttons when none is configured.
const DefaultTag = "a"

// tagNameRe restricts Tag to plain element and custom-element names.
var tagNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// ButtonProps is what an Element receives for each button.
type ButtonProps struct {
	pager.Button

	// Class is the full, space-separated class list.
	Class string

	// Style is the inline CSS for the button, empty unless it is the
	// highlighted page and a highlight style is configured.
	Style string
}

// Element decides how each button is written. Implementations must escape
// any attribute values they emit.
type Element interface {
	Button(props ButtonProps) templ.Component
}

// ElementFunc adapts a function to Element, for custom components.
type ElementFunc func(props ButtonProps) templ.Component

// Button calls f.
func (f ElementFunc) Button(props ButtonProps) templ.Component {
	return f(props)
}

// Tag renders every button as the named HTML element. Invalid names fall
// back to DefaultTag.
func Tag(name string) Element {
	if !tagNameRe.MatchString(name) {
		name = DefaultTag
	}
	return tagElement(strings.ToLower(name))
}

type tagElement string

func (t tagElement) Button(props ButtonProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<" + string(t))
		if t == "button" {
			b.WriteString(` type="button"`)
		}
		writeAttr(&b, "class", props.Class)
		if props.URL != "" {
			writeAttr(&b, "href", string(templ.URL(props.URL)))
		}
		writeAttr(&b, "data-page", strconv.Itoa(props.Page))
		if props.Style != "" {
			writeAttr(&b, "style", props.Style)
		}
		if props.Active {
			writeAttr(&b, "aria-current", "page")
		}
		if props.Disabled {
			writeAttr(&b, "aria-disabled", "true")
		}
		b.WriteString(">")
		b.WriteString(templ.EscapeString(props.Label))
		b.WriteString("</" + string(t) + ">")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + templ.EscapeString(value) + `"`)
}
