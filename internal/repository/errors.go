// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios when a
// booking write is rejected: a seat already taken for the match, a
// reference to a row that does not exist, or a store that cannot be
// reached at all.
package repository

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateSeat is returned when a booking insert collides with an
// existing bookings row for the same (match, seat) pair, or when the
// request itself lists the same seat twice. Handlers should translate
// this into an HTTP 409 response.
var ErrDuplicateSeat = errors.New("seat already booked for this match")

// ErrInvalidReference is returned when a booking names a match, seat or
// user that does not exist, surfacing as a foreign key violation.
// Handlers should translate this into an HTTP 422 response.
var ErrInvalidReference = errors.New("booking references an unknown match, seat or user")

// ErrStoreUnavailable is returned when the database cannot be reached.
// Handlers should translate this into an HTTP 503 response.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrConflict is the generic write-rejection sentinel used when a
// persistence failure does not match a more specific classification.
// Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// MySQL server error numbers relevant to booking writes.
const (
	mysqlErrDupEntry      = 1062 // ER_DUP_ENTRY
	mysqlErrNoReferenced  = 1452 // ER_NO_REFERENCED_ROW_2
	mysqlErrNoReferenced1 = 1216 // ER_NO_REFERENCED_ROW (older servers)
)

// classifyWriteError maps a raw driver error onto one of the sentinel
// values above. Primary key and unique index collisions become
// ErrDuplicateSeat, foreign key violations become ErrInvalidReference,
// and connection-level failures become ErrStoreUnavailable. Anything
// unrecognised collapses to ErrConflict so callers always receive one
// of the four sentinels.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDupEntry:
			return ErrDuplicateSeat
		case mysqlErrNoReferenced, mysqlErrNoReferenced1:
			return ErrInvalidReference
		}
		return ErrConflict
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return ErrStoreUnavailable
	}
	return ErrConflict
}
