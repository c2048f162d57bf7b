package apperror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var codeStatus = map[Code]int{
	CodeMissingID:           http.StatusBadRequest,
	CodeMissingData:         http.StatusBadRequest,
	CodeInvalidPagination:   http.StatusBadRequest,
	CodeInvalidData:         http.StatusBadRequest,
	CodeNotFound:            http.StatusNotFound,
	CodePageNotFound:        http.StatusNotFound,
	CodeProfileNotFound:     http.StatusNotFound,
	CodeMissingToken:        http.StatusUnauthorized,
	CodeInvalidToken:        http.StatusUnauthorized,
	CodeBadCredentials:      http.StatusUnauthorized,
	CodeForbidden:           http.StatusForbidden,
	CodeDuplicateAssignment: http.StatusConflict,
}

// Status maps an error to the HTTP status the client sees.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if e, ok := As(err); ok {
		if s, ok := codeStatus[e.Code]; ok {
			return s
		}
		if s, ok := storeStatus[e.StoreCode]; ok {
			return s
		}
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return http.StatusBadRequest
	}
	if s, ok := storeStatus[storeCode(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// IsConflict reports a uniqueness violation from any supported store.
func IsConflict(err error) bool {
	return Status(err) == http.StatusConflict
}
