package pager

import "strconv"

// ButtonKind identifies the role of a rendered button.
type ButtonKind int

const (
	// PrevArrow moves one page back.
	PrevArrow ButtonKind = iota
	// JumpBack moves JumpSize pages back.
	JumpBack
	// Number selects the page it shows.
	Number
	// JumpForward moves JumpSize pages forward.
	JumpForward
	// NextArrow moves one page forward.
	NextArrow
)

// String returns the kind name used in CSS class names and logs.
func (k ButtonKind) String() string {
	switch k {
	case PrevArrow:
		return "prev"
	case JumpBack:
		return "jump-back"
	case Number:
		return "number"
	case JumpForward:
		return "jump-forward"
	case NextArrow:
		return "next"
	default:
		return "unknown"
	}
}

// IsArrow reports whether the kind is one of the arrow buttons.
func (k ButtonKind) IsArrow() bool {
	return k == PrevArrow || k == NextArrow
}

// IsJump reports whether the kind is one of the skip-by-ten buttons.
func (k ButtonKind) IsJump() bool {
	return k == JumpBack || k == JumpForward
}

// Button is one clickable element of the control.
type Button struct {
	Kind  ButtonKind
	Page  int    // target page when clicked
	Label string // visible text
	// Active marks the numbered button of the current page.
	Active bool
	// Disabled marks an arrow at the edge of the sequence. It is a visual
	// hint only; clicking it targets the current page, which is a no-op.
	Disabled bool
	// URL is the navigable address, set when a URL generator is configured.
	URL string
}

// Buttons lays out the control for the current state, in display order:
// previous arrow, jump back, page numbers, jump forward, next arrow.
//
// Arrows appear only when TotalPages exceeds the arrow threshold. Jump back
// appears only past page JumpSize; jump forward only when at least JumpSize
// pages remain. Jump targets are not clamped here; the visibility rules keep
// them in range and ChangePage clamps regardless.
func (p *Pager) Buttons() []Button {
	total := p.opts.TotalPages
	current := p.state.CurrentPage
	labels := p.opts.Labels
	showArrows := total > p.opts.ArrowThreshold

	window := p.Window()
	buttons := make([]Button, 0, len(window)+4) //nolint:mnd // two arrows and two jumps.

	if showArrows {
		buttons = append(buttons, Button{
			Kind:     PrevArrow,
			Page:     max(1, current-1),
			Label:    labels.Prev,
			Disabled: current <= 1,
		})
	}
	if current > JumpSize {
		buttons = append(buttons, Button{Kind: JumpBack, Page: current - JumpSize, Label: labels.JumpBack})
	}
	for _, page := range window {
		buttons = append(buttons, Button{
			Kind:   Number,
			Page:   page,
			Label:  strconv.Itoa(page),
			Active: page == current,
		})
	}
	if total-current >= JumpSize {
		buttons = append(buttons, Button{Kind: JumpForward, Page: current + JumpSize, Label: labels.JumpForward})
	}
	if showArrows {
		buttons = append(buttons, Button{
			Kind:     NextArrow,
			Page:     min(total, current+1),
			Label:    labels.Next,
			Disabled: current >= total,
		})
	}

	if p.opts.GetURL != nil {
		for i := range buttons {
			buttons[i].URL = p.opts.GetURL(buttons[i].Page)
		}
	}
	return buttons
}

// Find returns the first button of the given kind, if it is rendered.
func Find(buttons []Button, kind ButtonKind) (Button, bool) {
	for _, b := range buttons {
		if b.Kind == kind {
			return b, true
		}
	}
	return Button{}, false
}
