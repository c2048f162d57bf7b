// Package apperror carries diagnostic provenance for failures across the
// repository, usecase and handler layers.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeMissingID           Code = "MISSING_ID"
	CodeMissingData         Code = "MISSING_DATA"
	CodeInvalidPagination   Code = "INVALID_PAGINATION"
	CodeInvalidData         Code = "INVALID_DATA"
	CodeNotFound            Code = "NOT_FOUND"
	CodePageNotFound        Code = "PAGE_NOT_FOUND"
	CodeMissingToken        Code = "MISSING_TOKEN"
	CodeInvalidToken        Code = "INVALID_TOKEN"
	CodeBadCredentials      Code = "INVALID_CREDENTIALS"
	CodeForbidden           Code = "FORBIDDEN"
	CodeProfileNotFound     Code = "PROFILE_NOT_FOUND"
	CodeDuplicateAssignment Code = "DUPLICATE_ASSIGNMENT"
	CodeInternal            Code = "INTERNAL_ERROR"
	CodeUnknown             Code = "UNKNOWN_ERROR"
)

const (
	LayerRepository = "repository"
	LayerOperation  = "operation"
)

// Error is a tagged failure. Fields are optional except Message.
type Error struct {
	Code       Code
	Message    string
	Layer      string
	Operation  string
	Context    string
	ResourceID any
	Input      any
	// StoreCode is the raw database error code (SQLSTATE or MySQL number), if any.
	StoreCode string
	Err       error
}

func (e *Error) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a validation or domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether any *Error in the chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// Tag re-wraps err for the operation layer, keeping the inner diagnostics.
func Tag(err error, operation string) error {
	if err == nil {
		return nil
	}
	out := &Error{
		Layer:     LayerOperation,
		Operation: operation,
		Err:       err,
	}
	if inner, ok := As(err); ok {
		out.Code = inner.Code
		out.Message = inner.Message
		out.Context = inner.Context
		out.ResourceID = inner.ResourceID
		out.Input = inner.Input
		out.StoreCode = inner.StoreCode
	} else {
		out.Message = err.Error()
	}
	return out
}
