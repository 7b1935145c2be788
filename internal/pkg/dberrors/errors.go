package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes the repositories react to
const (
	CodeStringDataRightTruncation = "22001"
	CodeNotNullViolation          = "23502"
)

// Code returns the SQLSTATE of a PostgreSQL error, or "" for any other error
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsInvalidValue reports whether PostgreSQL rejected a column value:
// a string longer than its column or a NULL in a NOT NULL column.
func IsInvalidValue(err error) bool {
	switch Code(err) {
	case CodeStringDataRightTruncation, CodeNotNullViolation:
		return true
	}
	return false
}

// IsDatabaseError reports whether err came from PostgreSQL or from reaching it:
// a server error, a failed connect or a network timeout.
func IsDatabaseError(err error) bool {
	if err == nil {
		return false
	}
	if Code(err) != "" {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	return pgconn.Timeout(err)
}
