package pagebar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pagenav/internal/pager"
)

// Renderer turns a single button into its terminal representation. It is the
// extension point for custom button elements; the page bar only decides which
// buttons exist and which style applies.
type Renderer interface {
	RenderButton(b pager.Button, style lipgloss.Style) string
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(b pager.Button, style lipgloss.Style) string

// RenderButton calls f.
func (f RendererFunc) RenderButton(b pager.Button, style lipgloss.Style) string {
	return f(b, style)
}

// TerminalRenderer renders styled labels. With Hyperlinks set, buttons that
// carry a URL are wrapped in an OSC 8 hyperlink so supporting terminals make
// them clickable.
type TerminalRenderer struct {
	Hyperlinks bool
}

// RenderButton implements Renderer.
func (r TerminalRenderer) RenderButton(b pager.Button, style lipgloss.Style) string {
	out := style.Render(b.Label)
	if r.Hyperlinks && b.URL != "" {
		out = ansi.SetHyperlink(b.URL) + out + ansi.ResetHyperlink()
	}
	return out
}

// BracketRenderer renders every button as "[label]", for terminals where
// colors alone do not make buttons recognisable.
type BracketRenderer struct{}

// RenderButton implements Renderer.
func (BracketRenderer) RenderButton(b pager.Button, style lipgloss.Style) string {
	return style.Render("[" + b.Label + "]")
}

// RendererByName returns the named built-in renderer: "terminal" (default,
// with hyperlinks), "plain" (no hyperlinks) or "brackets".
func RendererByName(name string) (Renderer, bool) {
	switch name {
	case "", "terminal":
		return TerminalRenderer{Hyperlinks: true}, true
	case "plain":
		return TerminalRenderer{}, true
	case "brackets":
		return BracketRenderer{}, true
	default:
		return nil, false
	}
}
