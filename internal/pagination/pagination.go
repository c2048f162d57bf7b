package pagination

import (
	"math"
	"strconv"

	"resto-backend/internal/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Page[T any] struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Data  []T `json:"data"`
	// Total is len(items) as passed to Paginate. Callers that page in the
	// store overwrite it with the counted total.
	Total int `json:"total"`
}

// Paginate returns items[(page-1)*limit : page*limit], clamped to the slice.
// page and limit must be >= 1.
func Paginate[T any](items []T, page, limit int) Page[T] {
	start := min(Offset(page, limit), len(items))
	end := len(items)
	if len(items)-start > limit {
		end = start + limit
	}
	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)
	return Page[T]{Page: page, Limit: limit, Data: data, Total: len(items)}
}

// PageCount is the number of pages needed for total items.
func PageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Offset is the zero-based index of the first item on page. It saturates at
// math.MaxInt instead of overflowing.
func Offset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Parse reads page and limit query values. Empty values take the defaults;
// anything that is not a positive integer is INVALID_PAGINATION.
func Parse(pageRaw, limitRaw string) (int, int, error) {
	page, err := parsePositive(pageRaw, DefaultPage)
	if err != nil {
		return 0, 0, apperror.New(apperror.CodeInvalidPagination, "page must be a positive integer")
	}
	limit, err := parsePositive(limitRaw, DefaultLimit)
	if err != nil {
		return 0, 0, apperror.New(apperror.CodeInvalidPagination, "limit must be a positive integer")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, nil
}

func parsePositive(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
