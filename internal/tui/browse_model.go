// Package tui holds the interactive line browser built from the list and
// page bar components.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagenav/internal/ingest"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pagination"
	listview "github.com/rshade/pagenav/internal/tui/list"
	"github.com/rshade/pagenav/internal/tui/pagebar"
)

// chromeRows is the number of rows around the list: header, page bar, help.
const chromeRows = 3

// BrowseOptions configures the browser.
type BrowseOptions struct {
	// Title is shown in the header.
	Title string

	// PageSize is the number of lines per page. Zero sizes pages to the
	// terminal height on the first resize.
	PageSize int

	// Bar configures the page bar. TotalPages and Callback are set by the browser.
	Bar pagebar.Options
}

// browseKeys are the browser's own bindings.
type browseKeys struct {
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Quit key.Binding
	bar  pagebar.KeyMap
}

func newBrowseKeys(bar pagebar.KeyMap) browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		bar: bar,
	}
}

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.bar.Prev, k.bar.Next, k.Up, k.Down, k.Help, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return append(k.bar.FullHelp(), []key.Binding{k.Up, k.Down}, []key.Binding{k.Help, k.Quit})
}

// BrowseModel is the Bubble Tea model for the line browser. The page bar owns
// the current page; its callback moves the list.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	ctx   context.Context // Context for trace ID
	title string

	list *listview.PageListModel[ingest.Line]
	bar  pagebar.Model
	help help.Model
	keys browseKeys

	autoSize bool
	width    int
	height   int

	lastChange *pagebar.PageChangedMsg
	quitting   bool
}

// NewBrowseModel creates a browser over lines.
func NewBrowseModel(ctx context.Context, lines []ingest.Line, opts BrowseOptions) BrowseModel {
	pageSize := opts.PageSize
	autoSize := pageSize < 1
	if autoSize {
		pageSize = pagination.DefaultPageSize
	}

	list := listview.NewPageListModel(lines, pageSize, renderLine)

	barOpts := opts.Bar
	userCallback := barOpts.Pager.Callback
	barOpts.Pager.TotalPages = list.TotalPages()
	barOpts.Pager.Callback = func(page int, event any) {
		list.SetPage(page)
		if userCallback != nil {
			userCallback(page, event)
		}
	}
	if barOpts.Pager.Logger == nil {
		barOpts.Pager.Logger = logging.FromContext(ctx)
	}
	bar := pagebar.New(barOpts)
	list.SetPage(bar.CurrentPage())

	title := opts.Title
	if title == "" {
		title = "pagenav"
	}

	return BrowseModel{
		ctx:      ctx,
		title:    title,
		list:     list,
		bar:      bar,
		help:     help.New(),
		keys:     newBrowseKeys(bar.Keys()),
		autoSize: autoSize,
	}
}

// Init initializes the model (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Translate to bar-relative coordinates; clicks elsewhere are ignored.
		if msg.Y != m.barRow() {
			return m, nil
		}
		msg.Y = 0
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case pagebar.PageChangedMsg:
		m.lastChange = &msg
		logging.FromContext(m.ctx).Debug().
			Ctx(m.ctx).
			Str("component", "tui").
			Int("page", msg.Page).
			Int("prev", msg.Prev).
			Msg("browse page changed")
		return m, nil

	case pagebar.SetPageMsg, pagebar.SetTotalPagesMsg:
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowseModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.list.Update(msg)

	if m.autoSize {
		m.list.SetPageSize(max(msg.Height-chromeRows, 1))
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.bar = m.bar.SetContainerWidth(msg.Width)
	m.bar, cmd = m.bar.Update(msg)
	cmds = append(cmds, cmd)

	if m.autoSize {
		// Keep the bar in step with the re-paged list.
		page := m.list.Page()
		m.bar, cmd = m.bar.Update(pagebar.SetTotalPagesMsg{Total: m.list.TotalPages()})
		cmds = append(cmds, cmd)
		m.bar, cmd = m.bar.Update(pagebar.SetPageMsg{Page: page})
		cmds = append(cmds, cmd)
		m.list.SetPage(m.bar.CurrentPage())
	}
	return m, tea.Batch(cmds...)
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	m.list.Update(msg)
	return m, cmd
}

// barRow is the screen row of the page bar: below the header and a full page.
func (m BrowseModel) barRow() int {
	return 1 + m.list.PageSize()
}

// CurrentPage returns the page shown.
func (m BrowseModel) CurrentPage() int {
	return m.bar.CurrentPage()
}

// List exposes the list component.
func (m BrowseModel) List() *listview.PageListModel[ingest.Line] {
	return m.list
}

// Bar exposes the page bar component.
func (m BrowseModel) Bar() pagebar.Model {
	return m.bar
}

// RunBrowse runs the browser full-screen with mouse support until the user quits.
func RunBrowse(ctx context.Context, m BrowseModel, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
