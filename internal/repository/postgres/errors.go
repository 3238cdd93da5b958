package postgres

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgTransientError reports whether the error is an I/O-level failure
// that a caller may safely retry: connection loss, timeouts and
// operator-initiated shutdowns, as opposed to statement errors.
func IsPgTransientError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx = connection exceptions, 57xxx = operator intervention,
		// 53xxx = insufficient resources
		switch pgErr.Code[:2] {
		case "08", "57", "53":
			return true
		}
	}
	return pgconn.SafeToRetry(err)
}
