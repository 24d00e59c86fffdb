package config

import (
	"github.com/rshade/pagenav/internal/pager"
)

// ToPagerOptions converts the pager section into pager.Options. Page data,
// URL generation and callbacks are left for the caller to fill in.
func (pc *PagerConfig) ToPagerOptions() pager.Options {
	return pager.Options{
		WideCount:      pc.WideCount,
		NarrowCount:    pc.NarrowCount,
		NarrowWidth:    pc.NarrowWidth,
		ArrowThreshold: pc.ArrowThreshold,
		HideOnNarrow:   pc.HideOnNarrow,
		Labels: pager.Labels{
			Prev:        pc.Labels.Prev,
			Next:        pc.Labels.Next,
			JumpBack:    pc.Labels.JumpBack,
			JumpForward: pc.Labels.JumpForward,
		},
	}
}
