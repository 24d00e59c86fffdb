// Package pagerhtml renders a pager.Pager as HTML through templ components.
//
// The markup is a container div holding the arrow and jump buttons around a
// nested div of numbered buttons. Styling hooks are BEM-style classes:
//
//	pagination                      container
//	pagination--hide-on-mobile      container, when HideOnNarrow is set
//	pagination__numbers             wrapper of the numbered buttons
//	pagination__button              every button
//	pagination__button--number      numbered buttons
//	pagination__button--highlight   the current page
//	pagination__button--arrow       previous and next arrows
//	pagination__button--prev/--next arrow direction
//	pagination__button--disabled    arrows at the edge of the sequence
//	pagination__button--jump        skip-by-ten buttons
//
// Every button carries data-page with its target page so client scripts can
// route clicks without parsing hrefs.
package pagerhtml

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/rshade/pagenav/internal/pager"
)

// CSS class names.
const (
	ClassContainer    = "pagination"
	ClassHideOnMobile = "pagination--hide-on-mobile"
	ClassNumbers      = "pagination__numbers"
	ClassButton       = "pagination__button"
	ClassNumber       = "pagination__button--number"
	ClassHighlight    = "pagination__button--highlight"
	ClassArrow        = "pagination__button--arrow"
	ClassPrev         = "pagination__button--prev"
	ClassNext         = "pagination__button--next"
	ClassDisabled     = "pagination__button--disabled"
	ClassJump         = "pagination__button--jump"
)

// Options configures the HTML rendering.
type Options struct {
	// Element writes each button (default Tag("a")).
	Element Element

	// HighlightStyle is inline CSS applied to the current page's button,
	// as property/value pairs.
	HighlightStyle map[string]string
}

// Pagination returns a component that renders the current state of p.
func Pagination(p *pager.Pager, opts Options) templ.Component {
	element := opts.Element
	if element == nil {
		element = Tag(DefaultTag)
	}
	highlight := InlineStyle(opts.HighlightStyle)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		containerClass := ClassContainer
		if p.HideOnNarrow() {
			containerClass += " " + ClassHideOnMobile
		}
		if _, err := io.WriteString(w, `<div class="`+containerClass+`">`); err != nil {
			return err
		}

		numbersOpen := false
		for _, b := range p.Buttons() {
			if b.Kind == pager.Number && !numbersOpen {
				if _, err := io.WriteString(w, `<div class="`+ClassNumbers+`">`); err != nil {
					return err
				}
				numbersOpen = true
			}
			if b.Kind != pager.Number && numbersOpen {
				if _, err := io.WriteString(w, `</div>`); err != nil {
					return err
				}
				numbersOpen = false
			}

			props := ButtonProps{Button: b, Class: buttonClass(b)}
			if b.Active {
				props.Style = highlight
			}
			if err := element.Button(props).Render(ctx, w); err != nil {
				return err
			}
		}
		if numbersOpen {
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func buttonClass(b pager.Button) string {
	classes := []string{ClassButton}
	switch {
	case b.Kind == pager.Number:
		classes = append(classes, ClassNumber)
		if b.Active {
			classes = append(classes, ClassHighlight)
		}
	case b.Kind.IsArrow():
		classes = append(classes, ClassArrow)
		if b.Kind == pager.PrevArrow {
			classes = append(classes, ClassPrev)
		} else {
			classes = append(classes, ClassNext)
		}
		if b.Disabled {
			classes = append(classes, ClassDisabled)
		}
	case b.Kind.IsJump():
		classes = append(classes, ClassJump)
	}
	return strings.Join(classes, " ")
}

// InlineStyle formats CSS declarations in property order, e.g.
// "color: #fff; font-weight: bold". Empty properties or values are skipped.
func InlineStyle(decls map[string]string) string {
	props := make([]string, 0, len(decls))
	for prop, value := range decls {
		if strings.TrimSpace(prop) == "" || strings.TrimSpace(value) == "" {
			continue
		}
		props = append(props, prop)
	}
	sort.Strings(props)

	parts := make([]string, 0, len(props))
	for _, prop := range props {
		parts = append(parts, strings.TrimSpace(prop)+": "+strings.TrimSpace(decls[prop]))
	}
	return strings.Join(parts, "; ")
}

// ParseInlineStyle parses "prop: value; prop: value" into declarations.
// Malformed declarations are skipped.
func ParseInlineStyle(s string) map[string]string {
	decls := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		decls[prop] = value
	}
	return decls
}
