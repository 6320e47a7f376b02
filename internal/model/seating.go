package model

// Seating represents a physical seat belonging to a stadium. A seat is
// a property of the stadium, not of a match: the same seating row is
// reused across every match hosted at that stadium. SeatNumber is a
// string because stands label seats like "A-14" or "UP-203".
//
// Fields:
//  ID         – primary key identifier.
//  StadiumID  – foreign key into stadiums.
//  StandName  – name of the stand the seat belongs to.
//  SeatNumber – label of the seat within the stand.
type Seating struct {
	ID         uint64 // seatings.id
	StadiumID  uint64 // seatings.stadium_id
	StandName  string // seatings.stand_name
	SeatNumber string // seatings.seat_number
}
