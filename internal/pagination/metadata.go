package pagination

// PageMeta contains metadata about one page of a paged sequence.
type PageMeta struct {
	CurrentPage int   `json:"current_page" yaml:"current_page"`
	PageSize    int   `json:"page_size"    yaml:"page_size"`
	TotalPages  int   `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int   `json:"total_items"  yaml:"total_items"`
	HasPrevious bool  `json:"has_previous" yaml:"has_previous"`
	HasNext     bool  `json:"has_next"     yaml:"has_next"`
	Window      []int `json:"window"       yaml:"window"`
}

// NewPageMeta creates page metadata for the given page of totalPages pages,
// with the page window computed for count visible numbers.
// The page is clamped into range before anything is derived from it.
func NewPageMeta(page, totalPages, count int) PageMeta {
	current := ClampPage(page, totalPages)

	return PageMeta{
		CurrentPage: current,
		TotalPages:  max(totalPages, 0),
		HasPrevious: current > MinPage,
		HasNext:     current < totalPages,
		Window:      ComputeWindow(current, totalPages, count),
	}
}

// NewItemPageMeta creates page metadata for a sequence of totalItems items
// split into pages of pageSize.
func NewItemPageMeta(page, totalItems, pageSize, count int) PageMeta {
	meta := NewPageMeta(page, CalculateTotalPages(totalItems, pageSize), count)
	meta.PageSize = pageSize
	meta.TotalItems = totalItems
	return meta
}

// MetaFromParams creates page metadata for validated CLI parameters.
func MetaFromParams(p Params) PageMeta {
	if p.IsItemBased() {
		return NewItemPageMeta(p.Page, p.TotalItems, p.PageSize, p.Count)
	}
	return NewPageMeta(p.Page, p.TotalPages, p.Count)
}
