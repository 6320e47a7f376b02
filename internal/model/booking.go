package model

import "time"

// Booking represents one seat reserved for one match. A single purchase
// of several seats produces several rows sharing the same BookingNumber.
// Rows are insert-only: they are never updated or deleted by any exposed
// operation.
//
// The composite primary key is (booking_number, match_id, seat_id); a
// separate unique index on (match_id, seat_id) guarantees a seat can be
// booked at most once per match regardless of booking number.
//
// Fields:
//  BookingNumber – 8-character uppercase-alphanumeric purchase token.
//  MatchID       – foreign key into matches.
//  SeatID        – foreign key into seatings.
//  UserID        – foreign key into users; the purchaser.
//  CreatedOn     – timestamp of insertion.
type Booking struct {
	BookingNumber string    // bookings.booking_number
	MatchID       uint64    // bookings.match_id
	SeatID        uint64    // bookings.seat_id
	UserID        uint64    // bookings.user_id
	CreatedOn     time.Time // bookings.created_on
}
