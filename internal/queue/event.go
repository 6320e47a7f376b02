// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a multi-seat purchase commits.
// It carries enough information for downstream consumers to log,
// notify or feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingNumber string   `json:"booking_number"`
	UserID        uint64   `json:"user_id"`
	UserName      string   `json:"user_name"`
	MatchID       uint64   `json:"match_id"`
	MatchName     string   `json:"match_name"`
	MatchDate     string   `json:"match_date"`
	StadiumName   string   `json:"stadium_name"`
	SeatIDs       []uint64 `json:"seat_ids"`
	SeatsBooked   uint32   `json:"seats_booked"`
	// MatchSeatsBooked is the total occupancy of the match after this
	// purchase, so consumers can track sell-through without a DB query.
	MatchSeatsBooked uint64 `json:"match_seats_booked"`
	CreatedAt        string `json:"created_at"`
}
