package pagebar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/internal/pager"
)

// defaultAccentColor is the default highlight color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorDim   = lipgloss.Color("#4A4A4A")
)

// Styles holds the per-kind button styles of the page bar.
type Styles struct {
	Number   lipgloss.Style
	Active   lipgloss.Style
	Arrow    lipgloss.Style
	Disabled lipgloss.Style
	Jump     lipgloss.Style
}

// DefaultStyles returns the styles for the default accent color.
func DefaultStyles() Styles {
	return NewStyles("")
}

// NewStyles builds Styles around a hex accent color such as "#7D56F4".
// An empty accentColor selects the default.
func NewStyles(accentColor string) Styles {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	accent := lipgloss.Color(color)

	return Styles{
		Number: lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 1),
		Active: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),
		Arrow: lipgloss.NewStyle().
			Foreground(accent).
			Padding(0, 1),
		Disabled: lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1),
		Jump: lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true).
			Padding(0, 1),
	}
}

// WithHighlight returns a copy of s whose active style takes every property
// set on highlight, falling back to the current active style for the rest.
// Padding is kept from the active style unless highlight sets its own.
func (s Styles) WithHighlight(highlight lipgloss.Style) Styles {
	merged := highlight.Inherit(s.Active)
	if top, right, bottom, left := highlight.GetPadding(); top+right+bottom+left == 0 {
		top, right, bottom, left = s.Active.GetPadding()
		merged = merged.Padding(top, right, bottom, left)
	}
	s.Active = merged
	return s
}

// For picks the style for a button. Active wins over disabled, which wins
// over the kind style.
func (s Styles) For(b pager.Button) lipgloss.Style {
	switch {
	case b.Active:
		return s.Active
	case b.Disabled:
		return s.Disabled
	case b.Kind.IsArrow():
		return s.Arrow
	case b.Kind.IsJump():
		return s.Jump
	default:
		return s.Number
	}
}
