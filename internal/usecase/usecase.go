package usecase

import (
	"strings"

	"resto-backend/internal/apperror"
	"resto-backend/internal/pagination"
)

func requireID(id uint, what string) error {
	if id == 0 {
		return apperror.Newf(apperror.CodeMissingID, "%s id is required", what)
	}
	return nil
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func checkPage(page, limit int) error {
	if page < 1 || limit < 1 {
		return apperror.New(apperror.CodeInvalidPagination, "page and limit must be positive integers")
	}
	return nil
}

// pageExists rejects pages past the last one. An empty collection still has page 1.
func pageExists(page, limit int, total int64) error {
	if total > 0 && page > pagination.PageCount(int(total), limit) {
		return apperror.Newf(apperror.CodePageNotFound, "page %d does not exist", page)
	}
	return nil
}

func paginate[T any](items []T, page, limit int) (pagination.Page[T], error) {
	if err := checkPage(page, limit); err != nil {
		return pagination.Page[T]{}, err
	}
	if err := pageExists(page, limit, int64(len(items))); err != nil {
		return pagination.Page[T]{}, err
	}
	return pagination.Paginate(items, page, limit), nil
}
