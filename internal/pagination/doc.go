// Package pagination provides the page-window arithmetic behind the pager control.
//
// This package contains the pure, side-effect free logic shared by the terminal
// widget, the HTML renderer and the CLI commands, including:
//   - ComputeWindow: the contiguous run of page numbers to display around a target
//   - Params: CLI flag values for window computations and their validation
//   - PageMeta: metadata describing a page of a larger item sequence
//   - SortLines: ordering helper for paged line input
//
// Nothing in this package returns an error for an out-of-range page: targets are
// clamped into the sequence, never rejected.
package pagination
