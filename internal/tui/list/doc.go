// Package listview provides a paged list component for Bubble Tea TUI applications.
//
// PageListModel renders one page of items at a time and keeps a row cursor
// within that page. It does not decide which page to show: the host sets the
// page, typically from a page bar callback, so only one component owns the
// current page. Rendering cost is O(page size) regardless of list length.
package listview
