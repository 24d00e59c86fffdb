package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/pagenav/internal/pagination"
)

// truncateTail marks rows cut to the viewport width.
const truncateTail = "…"

// RenderFunc is a function that renders an item at a given index.
// The selected parameter indicates whether this item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// PageListModel shows one page of a long item list with a row cursor.
// Paging itself is driven from outside through SetPage, so that a page bar
// can own the current page; the list only moves its cursor within the page.
type PageListModel[T any] struct {
	// items contains all list items
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// page is the 1-based current page
	page int

	// pageSize is the number of items per page
	pageSize int

	// cursor is the selected row within the current page (0-based)
	cursor int

	// width is the viewport width in columns; 0 disables truncation
	width int
}

// NewPageListModel creates a list showing the first page of items.
// A pageSize below 1 falls back to pagination.DefaultPageSize.
func NewPageListModel[T any](items []T, pageSize int, renderFunc RenderFunc[T]) *PageListModel[T] {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &PageListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		page:       pagination.DefaultPage,
		pageSize:   pageSize,
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *PageListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles cursor keys and resize messages.
func (m *PageListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKeyMsg moves the cursor within the current page.
func (m *PageListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	last := len(m.PageItems()) - 1
	if last < 0 {
		return m
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "pgup", "ctrl+u":
		m.cursor = 0
	case "pgdown", "ctrl+d":
		m.cursor = last
	}
	return m
}

// View renders the rows of the current page.
func (m *PageListModel[T]) View() string {
	rows := m.PageItems()
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range rows {
		line := m.renderFunc(item, i == m.cursor)
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, truncateTail)
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// SetPage shows the given page, clamped to the available pages, and moves
// the cursor to its first row.
func (m *PageListModel[T]) SetPage(page int) {
	m.page = pagination.ClampPage(page, m.TotalPages())
	m.cursor = 0
}

// SetPageSize changes the page size and keeps the first row of the current
// page visible. Sizes below 1 are ignored.
func (m *PageListModel[T]) SetPageSize(size int) {
	if size < 1 || size == m.pageSize {
		return
	}
	first := (m.page - 1) * m.pageSize
	m.pageSize = size
	m.SetPage(first/size + 1)
}

// SetItems replaces the items and returns to the first page.
func (m *PageListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetPage(pagination.DefaultPage)
}

// PageItems returns the items on the current page.
func (m *PageListModel[T]) PageItems() []T {
	return pagination.Slice(m.items, m.page, m.pageSize)
}

// Page returns the current 1-based page.
func (m *PageListModel[T]) Page() int {
	return m.page
}

// PageSize returns the number of items per page.
func (m *PageListModel[T]) PageSize() int {
	return m.pageSize
}

// TotalPages returns the number of pages.
func (m *PageListModel[T]) TotalPages() int {
	return pagination.CalculateTotalPages(len(m.items), m.pageSize)
}

// ItemCount returns the total number of items in the list.
func (m *PageListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected item's index in the full list, or -1 if the
// list is empty.
func (m *PageListModel[T]) Selected() int {
	if len(m.items) == 0 {
		return -1
	}
	return (m.page-1)*m.pageSize + m.cursor
}

// Cursor returns the selected row within the current page.
func (m *PageListModel[T]) Cursor() int {
	return m.cursor
}

// Width returns the viewport width.
func (m *PageListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item.
// Returns nil if list is empty.
func (m *PageListModel[T]) GetSelectedItem() *T {
	idx := m.Selected()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}
	return &m.items[idx]
}
