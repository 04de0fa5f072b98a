package catalog

// PageResult is a bounded slice of an already filtered-and-sorted sequence.
type PageResult[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// Paginate slices items into the requested page. An out-of-range page number
// is clamped into [1, TotalPages], never rejected; an empty input yields one
// empty page.
func Paginate[T any](items []T, page, limit int) PageResult[T] {
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}
