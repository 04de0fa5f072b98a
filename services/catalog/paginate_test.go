package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateBounds(t *testing.T) {
	// 25 records, limit 10, page 3 yields the final 5.
	page := Paginate(sequence(25), 3, 10)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate([]int{}, 1, 10)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateClampsPage(t *testing.T) {
	high := Paginate(sequence(25), 99, 10)
	assert.Equal(t, 3, high.Page)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, high.Items)

	low := Paginate(sequence(25), 0, 10)
	assert.Equal(t, 1, low.Page)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, low.Items)
}

func TestPaginateDefaultsBadLimit(t *testing.T) {
	page := Paginate(sequence(25), 1, 0)
	assert.Len(t, page.Items, DefaultPageSize)
	assert.Equal(t, 2, page.TotalPages)
}
