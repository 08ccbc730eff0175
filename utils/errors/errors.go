package errors

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/xchain/logitrack/constant"
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithDetail attaches a caller-facing message to the error
// code, e.g. the maximum permissible delta of a rejected adjustment.
func SetCustomErrorWithDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// FromSQL maps driver-level failures onto the core taxonomy. Lock waits and
// deadlocks surface as ErrConcurrencyConflict so callers know to retry.
func FromSQL(err error) CustomError {
	if errors.Is(err, sql.ErrNoRows) {
		return SetCustomError(constant.ErrNotFound)
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1205, 1213: // lock wait timeout, deadlock
			return SetCustomError(constant.ErrConcurrencyConflict)
		}
	}
	return SetCustomError(constant.ErrInternal)
}
