// Package pagebar renders a pager.Pager as a one-line Bubble Tea component
// that responds to keys, mouse clicks and window resizes.
package pagebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/internal/pager"
)

// defaultSeparator is placed between rendered buttons.
const defaultSeparator = " "

// SetPageMsg overrides the current page from outside the component.
// Pages below 1 are ignored.
type SetPageMsg struct {
	Page int
}

// SetTotalPagesMsg changes the page count, pulling the current page back into
// range if needed.
type SetTotalPagesMsg struct {
	Total int
}

// PageChangedMsg is emitted after every committed page change.
type PageChangedMsg struct {
	Page  int
	Prev  int
	Event any // the tea.KeyMsg or tea.MouseMsg that caused it, nil for overrides
}

// Options configures a page bar.
type Options struct {
	// Pager configures the underlying state machine.
	Pager pager.Options

	// Renderer draws each button (default TerminalRenderer with hyperlinks).
	Renderer Renderer

	// Styles overrides the default button styles.
	Styles *Styles

	// HighlightStyle is merged over the active button style.
	HighlightStyle *lipgloss.Style

	// KeyMap overrides the default key bindings.
	KeyMap *KeyMap

	// Separator goes between buttons (default a single space).
	Separator string
}

// Model is the page bar component. Page state lives in the shared *pager.Pager;
// the model only adds presentation and input handling on top of it.
//
//nolint:recvcheck // Bubble Tea components use value receivers for Update/View.
type Model struct {
	pager     *pager.Pager
	renderer  Renderer
	styles    Styles
	keys      KeyMap
	separator string

	width          int // last known viewport width
	containerWidth int // width allotted by the parent, 0 if unknown
}

// New creates a page bar.
func New(opts Options) Model {
	m := Model{
		pager:     pager.New(opts.Pager),
		renderer:  opts.Renderer,
		styles:    DefaultStyles(),
		keys:      DefaultKeyMap(),
		separator: opts.Separator,
	}
	if m.renderer == nil {
		m.renderer = TerminalRenderer{Hyperlinks: true}
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	}
	if opts.HighlightStyle != nil {
		m.styles = m.styles.WithHighlight(*opts.HighlightStyle)
	}
	if opts.KeyMap != nil {
		m.keys = *opts.KeyMap
	}
	if m.separator == "" {
		m.separator = defaultSeparator
	}
	return m
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resize, input and override messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.pager.Mounted() {
			m.pager.Mount(m.containerWidth, msg.Width)
		}
		return m, nil

	case SetPageMsg:
		prev := m.pager.CurrentPage()
		return m, m.changed(prev, m.pager.SetCurrentPage(msg.Page), nil)

	case SetTotalPagesMsg:
		prev := m.pager.CurrentPage()
		return m, m.changed(prev, m.pager.SetTotalPages(msg.Total), nil)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Hidden() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.press(pager.PrevArrow, msg)
	case key.Matches(msg, m.keys.Next):
		return m.press(pager.NextArrow, msg)
	case key.Matches(msg, m.keys.JumpBack):
		return m.press(pager.JumpBack, msg)
	case key.Matches(msg, m.keys.JumpForward):
		return m.press(pager.JumpForward, msg)
	case key.Matches(msg, m.keys.First):
		return m.change(1, msg)
	case key.Matches(msg, m.keys.Last):
		return m.change(m.pager.TotalPages(), msg)
	}
	return m, nil
}

// press activates the button of the given kind, if it is currently rendered.
// Below the arrow threshold no arrows are drawn, so prev and next step one
// page directly.
func (m Model) press(kind pager.ButtonKind, event any) (Model, tea.Cmd) {
	b, ok := pager.Find(m.pager.Buttons(), kind)
	if ok {
		return m.change(b.Page, event)
	}
	switch kind {
	case pager.PrevArrow:
		return m.change(m.pager.CurrentPage()-1, event)
	case pager.NextArrow:
		return m.change(m.pager.CurrentPage()+1, event)
	default:
		return m, nil
	}
}

// handleMouse treats a left press on row 0 as a click on the button under X.
// Coordinates are relative to the page bar; parents translate them.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
		return m, nil
	}
	if m.Hidden() {
		return m, nil
	}
	b, ok := m.ButtonAt(msg.X)
	if !ok {
		return m, nil
	}
	return m.change(b.Page, msg)
}

func (m Model) change(page int, event any) (Model, tea.Cmd) {
	prev := m.pager.CurrentPage()
	return m, m.changed(prev, m.pager.ChangePage(page, event), event)
}

func (m Model) changed(prev int, ok bool, event any) tea.Cmd {
	if !ok {
		return nil
	}
	page := m.pager.CurrentPage()
	return func() tea.Msg {
		return PageChangedMsg{Page: page, Prev: prev, Event: event}
	}
}

// View renders the buttons on one line. It is empty while hidden.
func (m Model) View() string {
	if m.Hidden() {
		return ""
	}
	buttons := m.pager.Buttons()
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, m.renderButton(b))
	}
	return strings.Join(parts, m.separator)
}

func (m Model) renderButton(b pager.Button) string {
	return m.renderer.RenderButton(b, m.styles.For(b))
}

// ButtonAt returns the button drawn at column x of the rendered bar.
// Separators belong to no button.
func (m Model) ButtonAt(x int) (pager.Button, bool) {
	if x < 0 || m.Hidden() {
		return pager.Button{}, false
	}
	sepWidth := lipgloss.Width(m.separator)
	left := 0
	for _, b := range m.pager.Buttons() {
		w := lipgloss.Width(m.renderButton(b))
		if x >= left && x < left+w {
			return b, true
		}
		left += w + sepWidth
	}
	return pager.Button{}, false
}

// Hidden reports whether the bar is suppressed because it is configured to
// hide in narrow containers and the current width is narrow.
func (m Model) Hidden() bool {
	if !m.pager.HideOnNarrow() {
		return false
	}
	return m.pager.IsNarrow(m.containerWidth) || m.pager.IsNarrow(m.width)
}

// Mount performs the one-time width measurement directly, for callers that
// render without a Bubble Tea program.
func (m Model) Mount(containerWidth, viewportWidth int) Model {
	m.containerWidth = containerWidth
	m.width = viewportWidth
	m.pager.Mount(containerWidth, viewportWidth)
	return m
}

// SetContainerWidth records the width the parent allots to the bar. Call it
// before forwarding the first tea.WindowSizeMsg so the mount sees it.
func (m Model) SetContainerWidth(w int) Model {
	m.containerWidth = w
	return m
}

// Pager exposes the underlying state machine.
func (m Model) Pager() *pager.Pager {
	return m.pager
}

// CurrentPage returns the current page.
func (m Model) CurrentPage() int {
	return m.pager.CurrentPage()
}

// Keys returns the active key bindings.
func (m Model) Keys() KeyMap {
	return m.keys
}
