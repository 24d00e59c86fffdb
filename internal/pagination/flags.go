package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Window defaults and validation limits.
const (
	DefaultDisplayCount       = 10
	DefaultNarrowDisplayCount = 5
	MinDisplayCount           = 1
	MaxDisplayCount           = 100
	DefaultPage               = 1
	MinPage                   = 1
	DefaultPageSize           = 20
	MinPageSize               = 1
	MaxPageSize               = 10000
	DefaultSortOrder          = ""
	SortOrderAsc              = "asc"
	SortOrderDesc             = "desc"
)

// Common validation errors.
var (
	ErrInvalidTotal     = errors.New("total pages must be >= 0")
	ErrInvalidCount     = errors.New("display count must be between 1 and 100")
	ErrInvalidPageSize  = errors.New("page-size must be between 1 and 10000")
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrTotalAndItems    = errors.New("cannot use both --total and --items")
)

// Params holds the CLI flags that describe a window computation.
// Pages are either given directly (TotalPages) or derived from an item count
// and a page size (TotalItems, PageSize). The two modes are mutually exclusive.
type Params struct {
	// Page is the 1-based target page. Out-of-range values are clamped, not rejected.
	Page int

	// TotalPages is the number of pages in the sequence.
	TotalPages int

	// TotalItems is the number of items to split into pages (item mode).
	TotalItems int

	// PageSize is the number of items per page (item mode).
	PageSize int

	// Count is the number of page numbers shown at once.
	Count int
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Count:    DefaultDisplayCount,
	}
}

// Validate checks that the parameters describe a computable window.
// The target page is deliberately not checked; ComputeWindow clamps it.
func (p Params) Validate() error {
	if p.TotalPages < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotal, p.TotalPages)
	}
	if p.TotalItems < 0 {
		return errors.New("items cannot be negative")
	}
	if p.TotalPages > 0 && p.TotalItems > 0 {
		return ErrTotalAndItems
	}
	if p.Count < MinDisplayCount || p.Count > MaxDisplayCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, p.Count)
	}
	if p.IsItemBased() && (p.PageSize < MinPageSize || p.PageSize > MaxPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// IsItemBased returns true if the page total is derived from an item count.
func (p Params) IsItemBased() bool {
	return p.TotalItems > 0
}

// EffectiveTotalPages returns the page total for either mode.
func (p Params) EffectiveTotalPages() int {
	if p.IsItemBased() {
		return CalculateTotalPages(p.TotalItems, p.PageSize)
	}
	return p.TotalPages
}

// Window computes the page window described by the parameters.
func (p Params) Window() []int {
	return ComputeWindow(p.Page, p.EffectiveTotalPages(), p.Count)
}

// CalculateTotalPages returns how many pages of pageSize are needed for
// totalItems. Returns 0 when there are no items or the page size is invalid.
func CalculateTotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// ParseSortOrder parses a sort order flag value. An empty string means the
// input order is kept.
func ParseSortOrder(order string) (string, error) {
	order = strings.ToLower(strings.TrimSpace(order))
	switch order {
	case DefaultSortOrder, SortOrderAsc, SortOrderDesc:
		return order, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
}

// Slice returns the items on the given 1-based page. The page is clamped to
// the last available page, so a page past the end yields the final page.
func Slice[T any](items []T, page, pageSize int) []T {
	if len(items) == 0 || pageSize <= 0 {
		return []T{}
	}

	page = ClampPage(page, CalculateTotalPages(len(items), pageSize))
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))

	return items[start:end]
}
