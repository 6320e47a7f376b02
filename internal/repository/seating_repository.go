package repository // repository defines data access for seatings

import (
	"context"
	"database/sql"

	"github.com/iliyamo/stadium-ticket-booking/internal/model"
)

// SeatingRepo provides read access to the seatings table and computes
// seat availability for a match. Seatings are reference data: a seat
// belongs to a stadium and is reused across every match hosted there.
type SeatingRepo struct {
	db *sql.DB
}

// NewSeatingRepo constructs a SeatingRepo with the given DB handle.
func NewSeatingRepo(db *sql.DB) *SeatingRepo {
	return &SeatingRepo{db: db}
}

// AvailableSeat pairs a vacant seat with the match it was queried for.
type AvailableSeat struct {
	SeatID     uint64 `json:"seat_id"`
	StadiumID  uint64 `json:"stadium_id"`
	MatchID    uint64 `json:"match_id"`
	StandName  string `json:"stand_name"`
	SeatNumber string `json:"seat_number"`
}

// AvailableByMatch returns the seats of the match's stadium that have
// no bookings row for the match: seatings joined to matches on
// stadium_id, minus the seat ids already booked for this match.
//
// An unknown match id produces an empty slice, not an error: the join
// filter simply matches nothing. Callers must not depend on seat order.
func (r *SeatingRepo) AvailableByMatch(ctx context.Context, matchID uint64) ([]AvailableSeat, error) {
	const q = `SELECT st.id, st.stadium_id, m.id, st.stand_name, st.seat_number
	           FROM seatings st
	           JOIN matches m ON m.stadium_id = st.stadium_id
	           WHERE m.id = ?
	             AND st.id NOT IN (SELECT b.seat_id FROM bookings b WHERE b.match_id = ?)`
	rows, err := r.db.QueryContext(ctx, q, matchID, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]AvailableSeat, 0)
	for rows.Next() {
		var s AvailableSeat
		if err := rows.Scan(&s.SeatID, &s.StadiumID, &s.MatchID, &s.StandName, &s.SeatNumber); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByStadium retrieves all seats of a stadium ordered by stand then
// seat number.
func (r *SeatingRepo) ListByStadium(ctx context.Context, stadiumID uint64) ([]model.Seating, error) {
	const q = `SELECT id, stadium_id, stand_name, seat_number
	           FROM seatings
	           WHERE stadium_id = ?
	           ORDER BY stand_name, seat_number`
	rows, err := r.db.QueryContext(ctx, q, stadiumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Seating, 0)
	for rows.Next() {
		var s model.Seating
		if err := rows.Scan(&s.ID, &s.StadiumID, &s.StandName, &s.SeatNumber); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
