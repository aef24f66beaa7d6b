package util

import (
	"github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/errno"
)

type unretryableErr interface {
	marker()
}

type unretryableWrapper struct {
	error
}

func (unretryableWrapper) marker() {}

func (w unretryableWrapper) Unwrap() error {
	return w.error
}

// WrapUnretryableError wraps an error to make it unretryable.
func WrapUnretryableError(err error) error {
	return unretryableWrapper{err}
}

// IsUnretryableError checks if an error is wrapped by WrapUnretryableError. It
// supports pingcap/errors package.
func IsUnretryableError(err error) bool {
	for err != nil {
		if _, ok := err.(unretryableErr); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsSQLErrorUnretryable checks the MySQL error to determine if running the same
// statement again can't succeed. For errors we don't have confidence, we
// assume it is retryable.
func IsSQLErrorUnretryable(err *mysql.MySQLError) bool {
	if err == nil {
		return false
	}
	switch err.Number {
	case errno.ErrParse, errno.ErrNoSuchTable, errno.ErrBadDB, errno.ErrBadField:
		return true
	}
	return false
}
