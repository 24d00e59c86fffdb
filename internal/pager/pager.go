package pager

import (
	"github.com/rshade/pagenav/internal/pagination"
)

// State is the mutable part of a Pager.
type State struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	DisplayCount int `json:"display_count" yaml:"display_count"`
}

// Pager is the page-number control's single source of truth.
//
// State changes only through three transitions: Mount (once), SetCurrentPage
// (external override) and ChangePage (user click). The first two funnel into
// the same clamped commit as the third, so CurrentPage is always within
// [1, max(TotalPages, 1)].
//
// A Pager is not safe for concurrent use; it is driven from one UI event loop.
type Pager struct {
	opts    Options
	state   State
	mounted bool
}

// New creates a Pager from opts, starting at opts.CurrentPage (default 1)
// with the wide display count.
func New(opts Options) *Pager {
	opts = opts.withDefaults()
	return &Pager{
		opts: opts,
		state: State{
			CurrentPage:  pagination.ClampPage(opts.CurrentPage, opts.TotalPages),
			DisplayCount: opts.WideCount,
		},
	}
}

// Mount records the one-time width measurement taken right after the control
// is first attached to its container. If the container width is known and
// below NarrowWidth, or the viewport width is, the narrow display count is
// selected. A width of zero means "unknown" and never counts as narrow.
//
// Only the first call has any effect; later resizes do not re-measure.
// Returns true if this call performed the measurement.
func (p *Pager) Mount(containerWidth, viewportWidth int) bool {
	if p.mounted {
		return false
	}
	p.mounted = true

	narrow := p.IsNarrow(containerWidth) || p.IsNarrow(viewportWidth)
	if narrow {
		p.state.DisplayCount = p.opts.NarrowCount
	}

	p.opts.Logger.Debug().
		Int("container_width", containerWidth).
		Int("viewport_width", viewportWidth).
		Bool("narrow", narrow).
		Int("display_count", p.state.DisplayCount).
		Msg("pager mounted")
	return true
}

// Mounted reports whether Mount has run.
func (p *Pager) Mounted() bool {
	return p.mounted
}

// IsNarrow reports whether a known width is below the narrow threshold.
func (p *Pager) IsNarrow(width int) bool {
	return width > 0 && width < p.opts.NarrowWidth
}

// ChangePage is the user-driven transition. The candidate is clamped to the
// page sequence; if it equals the current page nothing happens and the
// callback is not invoked. Otherwise the page is committed and the callback
// runs synchronously with the committed page and event.
// Returns true if the page changed.
func (p *Pager) ChangePage(candidate int, event any) bool {
	page := pagination.ClampPage(candidate, p.opts.TotalPages)
	if page == p.state.CurrentPage {
		return false
	}

	prev := p.state.CurrentPage
	p.state.CurrentPage = page

	p.opts.Logger.Debug().
		Int("from", prev).
		Int("to", page).
		Int("candidate", candidate).
		Bool("external", event == nil).
		Msg("page changed")

	p.opts.Callback(page, event)
	return true
}

// SetCurrentPage is the external-override transition. Values that are not a
// valid page number (below 1) are ignored. Valid values go through ChangePage
// with a nil event, so the callback fires exactly as for a click.
func (p *Pager) SetCurrentPage(page int) bool {
	if page < pagination.MinPage {
		return false
	}
	return p.ChangePage(page, nil)
}

// SetTotalPages updates the page count. If the current page falls outside the
// new sequence it is pulled back in through ChangePage.
func (p *Pager) SetTotalPages(total int) bool {
	p.opts.TotalPages = max(total, 0)
	return p.ChangePage(p.state.CurrentPage, nil)
}

// State returns a copy of the current state.
func (p *Pager) State() State {
	return p.state
}

// CurrentPage returns the current page.
func (p *Pager) CurrentPage() int {
	return p.state.CurrentPage
}

// DisplayCount returns the number of page numbers shown at once.
func (p *Pager) DisplayCount() int {
	return p.state.DisplayCount
}

// TotalPages returns the page count.
func (p *Pager) TotalPages() int {
	return p.opts.TotalPages
}

// HideOnNarrow reports whether renderers should hide the control in narrow containers.
func (p *Pager) HideOnNarrow() bool {
	return p.opts.HideOnNarrow
}

// Labels returns the effective button labels.
func (p *Pager) Labels() Labels {
	return p.opts.Labels
}

// Window returns the page numbers currently on display.
func (p *Pager) Window() []int {
	return pagination.ComputeWindow(p.state.CurrentPage, p.opts.TotalPages, p.state.DisplayCount)
}
