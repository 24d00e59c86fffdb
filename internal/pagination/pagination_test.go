package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageRange builds the inclusive sequence [from, to].
func pageRange(from, to int) []int {
	out := []int{}
	for p := from; p <= to; p++ {
		out = append(out, p)
	}
	return out
}

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name   string
		target int
		total  int
		count  int
		want   []int
	}{
		{name: "target near start", target: 5, total: 20, count: 10, want: pageRange(1, 10)},
		{name: "target near end", target: 15, total: 20, count: 10, want: pageRange(11, 20)},
		{name: "total below count", target: 1, total: 3, count: 10, want: []int{1, 2, 3}},
		{name: "total equals count", target: 4, total: 10, count: 10, want: pageRange(1, 10)},
		{name: "empty sequence", target: 1, total: 0, count: 10, want: []int{}},
		{name: "centered odd count", target: 10, total: 20, count: 5, want: pageRange(8, 12)},
		{name: "centered even count", target: 7, total: 20, count: 4, want: pageRange(6, 9)},
		{name: "target past end", target: 100, total: 20, count: 10, want: pageRange(11, 20)},
		{name: "negative target", target: -5, total: 20, count: 10, want: pageRange(1, 10)},
		{name: "zero count treated as one", target: 3, total: 5, count: 0, want: []int{3}},
		{name: "single page", target: 1, total: 1, count: 5, want: []int{1}},
		{name: "minimum int target", target: math.MinInt, total: 20, count: 10, want: pageRange(1, 10)},
		{name: "maximum int target", target: math.MaxInt, total: 20, count: 10, want: pageRange(11, 20)},
		{name: "maximum int count", target: 7, total: 20, count: math.MaxInt, want: pageRange(1, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeWindow(tt.target, tt.total, tt.count))
		})
	}
}

func TestComputeWindow_Properties(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for count := 1; count <= 12; count++ {
			for target := -5; target <= 40; target++ {
				got := ComputeWindow(target, total, count)

				require.Len(t, got, min(count, total), "target=%d total=%d count=%d", target, total, count)
				for i, p := range got {
					require.GreaterOrEqual(t, p, 1)
					require.LessOrEqual(t, p, total)
					if i > 0 {
						require.Equal(t, got[i-1]+1, p, "window must be contiguous")
					}
				}

				if total <= count {
					require.Equal(t, pageRange(1, total), got)
				}

				middle := Middle(count)
				if target >= 1 && target <= total && target-middle >= 0 && target+(count-middle) <= total {
					require.Equal(t, target, got[middle-1], "target=%d total=%d count=%d", target, total, count)
				}

				if target > total && total > 0 {
					require.Equal(t, total, got[len(got)-1])
				}
			}
		}
	}
}

func TestMiddle(t *testing.T) {
	assert.Equal(t, 5, Middle(10))
	assert.Equal(t, 3, Middle(5))
	assert.Equal(t, 1, Middle(1))
	assert.Equal(t, 1, Middle(0))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 10))
	assert.Equal(t, 10, ClampPage(11, 10))
	assert.Equal(t, 4, ClampPage(4, 10))
	assert.Equal(t, 1, ClampPage(7, 0))
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: *NewParams()},
		{name: "valid pages", params: Params{Page: 3, TotalPages: 20, Count: 10}},
		{name: "out of range page is allowed", params: Params{Page: 99, TotalPages: 20, Count: 10}},
		{name: "valid items", params: Params{Page: 2, TotalItems: 95, PageSize: 10, Count: 5}},
		{name: "negative total", params: Params{TotalPages: -1, Count: 10}, wantErr: ErrInvalidTotal},
		{name: "zero count", params: Params{TotalPages: 5, Count: 0}, wantErr: ErrInvalidCount},
		{name: "huge count", params: Params{TotalPages: 5, Count: 101}, wantErr: ErrInvalidCount},
		{name: "mixed modes", params: Params{TotalPages: 5, TotalItems: 5, PageSize: 1, Count: 5}, wantErr: ErrTotalAndItems},
		{name: "bad page size", params: Params{TotalItems: 5, PageSize: 0, Count: 5}, wantErr: ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParams_EffectiveTotalPages(t *testing.T) {
	assert.Equal(t, 20, Params{TotalPages: 20}.EffectiveTotalPages())
	assert.Equal(t, 10, Params{TotalItems: 95, PageSize: 10}.EffectiveTotalPages())
	assert.Equal(t, pageRange(1, 5), Params{Page: 1, TotalItems: 50, PageSize: 10, Count: 10}.Window())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 10, CalculateTotalPages(100, 10))
	assert.Equal(t, 11, CalculateTotalPages(101, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, SortOrderDesc, order)

	order, err = ParseSortOrder("")
	require.NoError(t, err)
	assert.Empty(t, order)

	_, err = ParseSortOrder("sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{name: "page 1", page: 1, pageSize: 3, want: []int{0, 1, 2}},
		{name: "page 2", page: 2, pageSize: 3, want: []int{3, 4, 5}},
		{name: "last partial page", page: 4, pageSize: 3, want: []int{9}},
		{name: "past the end caps to last page", page: 10, pageSize: 3, want: []int{9}},
		{name: "before the start caps to first page", page: 0, pageSize: 4, want: []int{0, 1, 2, 3}},
		{name: "invalid page size", page: 1, pageSize: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(items, tt.page, tt.pageSize))
		})
	}

	assert.Equal(t, []string{}, Slice([]string{}, 1, 5))
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name string
		got  PageMeta
		want PageMeta
	}{
		{
			name: "middle page",
			got:  NewPageMeta(3, 10, 5),
			want: PageMeta{CurrentPage: 3, TotalPages: 10, HasPrevious: true, HasNext: true, Window: pageRange(1, 5)},
		},
		{
			name: "empty sequence",
			got:  NewPageMeta(1, 0, 10),
			want: PageMeta{CurrentPage: 1, TotalPages: 0, Window: []int{}},
		},
		{
			name: "page past end is clamped",
			got:  NewPageMeta(50, 20, 10),
			want: PageMeta{CurrentPage: 20, TotalPages: 20, HasPrevious: true, Window: pageRange(11, 20)},
		},
		{
			name: "item based",
			got:  NewItemPageMeta(2, 95, 10, 10),
			want: PageMeta{
				CurrentPage: 2, PageSize: 10, TotalPages: 10, TotalItems: 95,
				HasPrevious: true, HasNext: true, Window: pageRange(1, 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMetaFromParams(t *testing.T) {
	meta := MetaFromParams(Params{Page: 2, TotalItems: 95, PageSize: 10, Count: 10})
	assert.Equal(t, 95, meta.TotalItems)
	assert.Equal(t, 10, meta.TotalPages)

	meta = MetaFromParams(Params{Page: 2, TotalPages: 3, Count: 10})
	assert.Equal(t, 3, meta.TotalPages)
	assert.Zero(t, meta.PageSize)
}

func TestSortLines(t *testing.T) {
	lines := []string{"banana", "Apple", "cherry"}

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, SortLines(lines, SortOrderAsc))
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, SortLines(lines, SortOrderDesc))
	assert.Equal(t, lines, SortLines(lines, ""))
	assert.Equal(t, []string{"banana", "Apple", "cherry"}, lines, "input must not be modified")
}
