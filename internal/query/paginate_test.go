package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nums(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_WindowLaw(t *testing.T) {
	// items.len == clamp(limit, 0, max(0, N-(page-1)*limit)) para todo
	// (page, limit) válido.
	for _, n := range []int{0, 1, 4, 5, 12, 100} {
		items := nums(n)
		for page := 1; page <= 5; page++ {
			for _, limit := range []int{1, 3, 5, 10, 100} {
				window, meta := Paginate(items, page, limit)

				want := n - (page-1)*limit
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}

				assert.Len(t, window, want, "n=%d page=%d limit=%d", n, page, limit)
				assert.Equal(t, n, meta.Total)
				assert.Equal(t, page, meta.Page)
				assert.Equal(t, limit, meta.Limit)
			}
		}
	}
}

func TestPaginate_TwelveRecordsLimitFivePageThree(t *testing.T) {
	window, meta := Paginate(nums(12), 3, 5)

	assert.Len(t, window, 2)
	assert.Equal(t, []int{11, 12}, window)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginate_EmptyInput(t *testing.T) {
	window, meta := Paginate([]int{}, 1, 10)

	assert.Empty(t, window)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestPaginate_PageBeyondEnd_ReturnsEmptyWindow(t *testing.T) {
	window, meta := Paginate(nums(3), 9, 10)

	assert.Empty(t, window)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	_, meta := Paginate(nums(10), 1, 5)
	assert.Equal(t, 2, meta.TotalPages)
}
