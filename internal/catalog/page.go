package catalog

// PageResult is one display page of the filtered catalog.
type PageResult struct {
	Items        []DiagnosticItem
	Page         int
	TotalPages   int
	VisiblePages []int
}

// FilterPage derives a display page from the catalog: an item is included iff
// it belongs to at least one selected tier and, when tag is non-empty, carries
// that tag. Catalog order is preserved. Pages are 1-based and out-of-range
// page requests clamp rather than error.
func FilterPage(items []DiagnosticItem, tiers []int, tag string, page, pageSize int) PageResult {
	if pageSize <= 0 {
		pageSize = 10
	}

	var filtered []DiagnosticItem
	for _, item := range items {
		if !matchesTiers(item, tiers) {
			continue
		}
		if tag != "" && !item.HasTag(tag) {
			continue
		}
		filtered = append(filtered, item)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return PageResult{
		Items:        filtered[start:end],
		Page:         page,
		TotalPages:   totalPages,
		VisiblePages: VisiblePages(page, totalPages),
	}
}

// VisiblePages returns the pagination-control window: at most 5 page numbers
// centered on current, clamped to [1, total].
func VisiblePages(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > total {
		end = total
	}
	if end-4 < start {
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

func matchesTiers(item DiagnosticItem, tiers []int) bool {
	for _, t := range tiers {
		if item.InTier(t) {
			return true
		}
	}
	return false
}
