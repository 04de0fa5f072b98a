package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListAcceptedShapes(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ToList([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, ToList([]interface{}{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, ToList(`["a","b"]`))
	assert.Equal(t, []string{"a", "b"}, ToList("a, b"))
	assert.Nil(t, ToList(""))
	assert.Nil(t, ToList(nil))
	assert.Nil(t, ToList(42))
}

func TestToNumberCoercion(t *testing.T) {
	n := ToNumber("4.5")
	require.NotNil(t, n)
	assert.Equal(t, 4.5, *n)

	n = ToNumber(float64(10))
	require.NotNil(t, n)
	assert.Equal(t, float64(10), *n)

	assert.Nil(t, ToNumber(""))
	assert.Nil(t, ToNumber("cheap"))
	assert.Nil(t, ToNumber(nil))
}

func TestBuildGuideParamsDefaults(t *testing.T) {
	p := BuildGuideParams(map[string]interface{}{})
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Limit)
	assert.Empty(t, p.FiltersApplied())
}

func TestBuildGuideParamsFiltersApplied(t *testing.T) {
	p := BuildGuideParams(map[string]interface{}{
		"location":    "Dhaka",
		"specialties": "history,food",
		"max_price":   "50",
		"sort_by":     "price",
		"sort_order":  "desc",
		"page":        "2",
		"limit":       "5",
	})

	assert.Equal(t, "Dhaka", p.Location)
	assert.Equal(t, []string{"history", "food"}, p.Specialties)
	require.NotNil(t, p.MaxPrice)
	assert.Equal(t, float64(50), *p.MaxPrice)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.Limit)

	filters := p.FiltersApplied()
	assert.Equal(t, "Dhaka", filters["location"])
	assert.Equal(t, float64(50), filters["max_price"])
	assert.NotContains(t, filters, "min_rating")
	assert.NotContains(t, filters, "sort_by")
}

func TestBuildTransportParamsDefaults(t *testing.T) {
	p := BuildTransportParams(map[string]interface{}{"from": "Dhaka"})
	assert.Equal(t, "Dhaka", p.From)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, DefaultPageSize, p.Limit)

	filters := p.FiltersApplied()
	assert.Equal(t, "Dhaka", filters["from"])
	assert.Len(t, filters, 1)
}
