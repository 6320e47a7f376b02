package repository

import (
	"context"
	"database/sql"
	"time"
)

// BookingRepo provides data access to the bookings table. Bookings
// group together one or more seats for a particular match and user
// under a shared booking number. Rows are insert-only; all timestamp
// fields are assumed to be stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// BookingRecord mirrors the schema of the bookings table. It is used
// internally by the repository when constructing rows for insertion.
type BookingRecord struct {
	BookingNumber string
	MatchID       uint64
	SeatID        uint64
	UserID        uint64
}

// CreateBulkTx inserts one bookings row per record in a single
// statement within the provided transaction. Either every row is
// inserted or none are: a duplicate (match, seat) pair anywhere in the
// batch rejects the whole statement, and the caller's rollback discards
// any other work done under the transaction.
//
// Errors are classified before being returned, so callers receive one
// of ErrDuplicateSeat, ErrInvalidReference, ErrStoreUnavailable or
// ErrConflict. Passing an empty slice has no effect and returns nil.
func (r *BookingRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, bookings []BookingRecord) error {
	if len(bookings) == 0 {
		return nil
	}
	query := `INSERT INTO bookings (booking_number, match_id, seat_id, user_id) VALUES `
	args := make([]interface{}, 0, len(bookings)*4)
	for i, b := range bookings {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, b.BookingNumber, b.MatchID, b.SeatID, b.UserID)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// BookingDetail is the flattened record returned by ListByUser: one
// booked seat joined with its match, the match's stadium and the seat's
// stand position.
type BookingDetail struct {
	MatchID       uint64    `json:"match_id"`
	MatchDate     time.Time `json:"match_date"`
	MatchTime     string    `json:"match_time"`
	MatchName     string    `json:"match_name"`
	StadiumName   string    `json:"stadium_name"`
	StandName     string    `json:"stand_name"`
	SeatNumber    string    `json:"seat_number"`
	CreatedOn     time.Time `json:"booking_created_on"`
	BookingNumber string    `json:"booking_number"`
}

// ListByUser returns every seat booked by the given user, newest
// purchase first. Each row carries the parent match's date, time and
// name, the stadium name and the seat's stand position. When the user
// has no bookings, an empty slice is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.match_id, m.match_date, m.match_time, m.match_name,
	                  s.name, st.stand_name, st.seat_number,
	                  b.created_on, b.booking_number
	           FROM bookings b
	           JOIN matches m ON m.id = b.match_id
	           JOIN stadiums s ON s.id = m.stadium_id
	           JOIN seatings st ON st.id = b.seat_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_on DESC, b.booking_number, st.stand_name, st.seat_number`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(
			&d.MatchID, &d.MatchDate, &d.MatchTime, &d.MatchName,
			&d.StadiumName, &d.StandName, &d.SeatNumber,
			&d.CreatedOn, &d.BookingNumber,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// CountByMatch returns the number of booked seats for a match. Used by
// the booking.created event payload so downstream consumers see the
// occupancy without querying the primary database themselves.
func (r *BookingRepo) CountByMatch(ctx context.Context, matchID uint64) (uint64, error) {
	const q = `SELECT COUNT(*) FROM bookings WHERE match_id = ?`
	var n uint64
	if err := r.db.QueryRowContext(ctx, q, matchID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
