package repo

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// paginate computes the slice bounds for one page over totalItems items.
// pageSize falls back to DefaultPageSize when non-positive; an out-of-range
// page is clamped into [1, totalPages] so a request past the end returns the
// last page rather than an empty one.
func paginate(totalItems, page, pageSize int) (start, end, totalPages, clampedPage int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages = (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	clampedPage = clamp(page, 1, totalPages)

	start = (clampedPage - 1) * pageSize
	start = clamp(start, 0, totalItems)
	end = clamp(start+pageSize, start, totalItems)
	return start, end, totalPages, clampedPage
}
