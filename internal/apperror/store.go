package apperror

import (
	"errors"
	"strconv"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StoreOption func(*Error)

func WithResource(id any) StoreOption {
	return func(e *Error) { e.ResourceID = id }
}

func WithInput(input any) StoreOption {
	return func(e *Error) { e.Input = input }
}

// FromStore wraps a raw database error with the context the repository was in.
func FromStore(err error, context, operation string, opts ...StoreOption) error {
	if err == nil {
		return nil
	}
	e := &Error{
		Message:   err.Error(),
		Layer:     LayerRepository,
		Operation: operation,
		Context:   context,
		StoreCode: storeCode(err),
		Err:       err,
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		e.Code = CodeNotFound
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func storeCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return strconv.Itoa(int(myErr.Number))
	}
	return ""
}

// Store codes by resulting HTTP status. PostgreSQL SQLSTATE codes and MySQL
// error numbers share one table because they never collide.
var storeStatus = map[string]int{
	// unique violation
	"23505": 409,
	"1062":  409,
	// foreign key
	"23503": 400,
	"1451":  400,
	"1452":  400,
	// not null
	"23502": 400,
	"1048":  400,
	"1364":  400,
	// malformed input
	"22P02": 400,
	"1366":  400,
	"1292":  400,
	// value too long
	"22001": 400,
	"1406":  400,
	// undefined table / column
	"42P01": 500,
	"1146":  500,
	"42703": 500,
	"1054":  500,
}
