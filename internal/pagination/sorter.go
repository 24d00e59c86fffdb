package pagination

import (
	"sort"
	"strings"
)

// SortLines orders lines by the given sort order ("asc" or "desc").
// Returns a new sorted slice; does not modify the original.
// An empty or unknown order returns the input unchanged.
func SortLines(lines []string, order string) []string {
	return SortBy(lines, func(s string) string { return s }, order)
}

// SortBy orders items case-insensitively by the string key returns, keeping
// the input order of equal keys. Returns a new slice; an empty or unknown
// order returns the input unchanged.
func SortBy[T any](items []T, key func(T) string, order string) []T {
	if order != SortOrderAsc && order != SortOrderDesc {
		return items
	}

	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(key(sorted[i])), strings.ToLower(key(sorted[j]))
		if order == SortOrderDesc {
			return a > b
		}
		return a < b
	})

	return sorted
}
