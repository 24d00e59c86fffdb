// Package pager holds the renderer-independent state of the page-number control:
// the current page, the display count chosen at mount time, the transitions
// between them, and the button layout derived from that state.
//
// Terminal and HTML renderers sit on top of a *Pager and never mutate page
// state themselves; every change goes through ChangePage.
package pager

import (
	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/internal/pagination"
)

// Layout defaults.
const (
	DefaultNarrowWidth    = 80
	DefaultArrowThreshold = 5
	JumpSize              = 10
)

// Callback is invoked after every committed page change with the new page and
// the event that caused it. The event is nil for external overrides.
type Callback func(page int, event any)

// Labels holds the text shown on the non-numbered buttons.
type Labels struct {
	Prev        string
	Next        string
	JumpBack    string
	JumpForward string
}

// DefaultLabels returns the built-in button labels.
func DefaultLabels() Labels {
	return Labels{Prev: "<", Next: ">", JumpBack: "-10", JumpForward: "+10"}
}

// Options configures a Pager. Zero values select the defaults.
type Options struct {
	// TotalPages is the upper bound of the page sequence. Zero is an empty sequence.
	TotalPages int

	// CurrentPage is the starting page (default 1).
	CurrentPage int

	// GetURL, when set, gives every button a navigable address.
	GetURL func(page int) string

	// Callback is invoked after every committed page change (default no-op).
	Callback Callback

	// Labels overrides the arrow and jump button text. Empty labels keep the defaults.
	Labels Labels

	// WideCount is the display count used before and after a wide mount measurement.
	WideCount int

	// NarrowCount is the display count used when the mount measurement is narrow.
	NarrowCount int

	// NarrowWidth is the width, in columns, below which a container counts as narrow.
	NarrowWidth int

	// ArrowThreshold hides the arrow buttons unless TotalPages exceeds it.
	ArrowThreshold int

	// HideOnNarrow asks renderers to hide the control in narrow containers.
	HideOnNarrow bool

	// Logger receives debug logs for page transitions (default disabled).
	Logger *zerolog.Logger
}

// withDefaults returns a copy of o with zero values replaced by defaults.
func (o Options) withDefaults() Options {
	if o.TotalPages < 0 {
		o.TotalPages = 0
	}
	if o.CurrentPage < pagination.MinPage {
		o.CurrentPage = pagination.DefaultPage
	}
	if o.Callback == nil {
		o.Callback = func(int, any) {}
	}
	if o.WideCount < pagination.MinDisplayCount {
		o.WideCount = pagination.DefaultDisplayCount
	}
	if o.NarrowCount < pagination.MinDisplayCount {
		o.NarrowCount = pagination.DefaultNarrowDisplayCount
	}
	if o.NarrowWidth < 1 {
		o.NarrowWidth = DefaultNarrowWidth
	}
	if o.ArrowThreshold < 1 {
		o.ArrowThreshold = DefaultArrowThreshold
	}

	defaults := DefaultLabels()
	if o.Labels.Prev == "" {
		o.Labels.Prev = defaults.Prev
	}
	if o.Labels.Next == "" {
		o.Labels.Next = defaults.Next
	}
	if o.Labels.JumpBack == "" {
		o.Labels.JumpBack = defaults.JumpBack
	}
	if o.Labels.JumpForward == "" {
		o.Labels.JumpForward = defaults.JumpForward
	}

	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
