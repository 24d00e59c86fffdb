package pagination

// halfDivisor splits the display count into the slots at or before the target.
const halfDivisor = 2

// Middle returns how many window slots sit at or before the target when the
// target is centered, i.e. ceil(count / 2).
func Middle(count int) int {
	if count < 1 {
		count = 1
	}
	return (count + 1) / halfDivisor
}

// ComputeWindow returns the ascending, contiguous page numbers to display for
// the given target page. The result has min(count, total) entries, all within
// [1, total]. The target is centered when both sides have enough pages;
// otherwise the window is pinned to the nearest edge of the sequence.
//
// Any target is accepted and clamped into [1, total] first, so extreme values
// cannot overflow the centering arithmetic. A count above total is treated as
// total. A total of zero (or less) yields an empty window.
func ComputeWindow(target, total, count int) []int {
	if count < 1 {
		count = 1
	}
	if total <= 0 {
		return []int{}
	}
	target = ClampPage(target, total)
	count = min(count, total)

	restCount := count - 1 // slots besides the target itself
	start := max(min(target-Middle(count)+1, total-restCount), 1)
	end := min(start+restCount, total)

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// ClampPage pulls page into [1, total]. A total below one is treated as a
// single-page sequence so the result is always a valid page index.
func ClampPage(page, total int) int {
	return min(max(page, MinPage), max(total, MinPage))
}
