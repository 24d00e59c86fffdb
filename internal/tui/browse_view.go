package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagenav/internal/ingest"
)

// Color palette.
var (
	colorAccent = lipgloss.Color("#7D56F4")
	colorMuted  = lipgloss.Color("#888888")
	colorValue  = lipgloss.Color("#FAFAFA")
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	gutterStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	lineStyle     = lipgloss.NewStyle().Foreground(colorValue)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)

// numberPrinter formats counts with thousands separators.
//
//nolint:gochecknoglobals // Printer is immutable after construction.
var numberPrinter = message.NewPrinter(language.English)

// renderLine renders one list row with its line number.
func renderLine(l ingest.Line, selected bool) string {
	gutter := gutterStyle.Render(fmt.Sprintf("%6d ", l.Number))
	if selected {
		return gutter + selectedStyle.Render("> "+l.Text)
	}
	return gutter + lineStyle.Render("  "+l.Text)
}

// View renders the browser (Bubble Tea interface).
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(m.title) + "  " + statusStyle.Render(m.status())

	// Pad the list to a full page so the bar stays on a fixed row.
	body := m.list.View()
	rows := 0
	if body != "" {
		rows = strings.Count(body, "\n") + 1
	}
	if pad := m.list.PageSize() - rows; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	if rows == 0 {
		body = statusStyle.Render("(no lines)") + strings.Repeat("\n", max(m.list.PageSize()-1, 0))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.bar.View(),
		m.help.View(m.keys),
	)
}

// status summarises position and size.
func (m BrowseModel) status() string {
	s := numberPrinter.Sprintf("page %d of %d · %d lines", m.bar.CurrentPage(), m.list.TotalPages(), m.list.ItemCount())
	if m.lastChange != nil {
		s += numberPrinter.Sprintf(" · moved from %d", m.lastChange.Prev)
	}
	return s
}
