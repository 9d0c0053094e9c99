package report

import "adsdash/internal/domain"

// DefaultRowsPerPage is used when a caller passes a non-positive page size.
const DefaultRowsPerPage = 10

// Paginate slices one page out of a fully materialized, already sorted
// detail view. Pages are zero-based. Out-of-range pages return an empty
// slice with correct page info rather than an error.
func Paginate(records []domain.AdRecord, page, rowsPerPage int) ([]domain.AdRecord, domain.PageInfo) {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	if page < 0 {
		page = 0
	}

	total := len(records)
	start := page * rowsPerPage
	end := start + rowsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	info := domain.PageInfo{
		Page:        page,
		RowsPerPage: rowsPerPage,
		TotalRows:   total,
		TotalPages:  (total + rowsPerPage - 1) / rowsPerPage,
		StartIndex:  0,
		EndIndex:    end,
		HasMore:     end < total,
	}
	if total > 0 && start < total {
		info.StartIndex = start + 1
	}

	return records[start:end], info
}
