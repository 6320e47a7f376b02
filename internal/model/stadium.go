package model

// Stadium represents a venue as stored in the `stadiums` table. A
// stadium owns the matches hosted there and the physical seats laid
// out in its stands. Stadiums are reference data and read-only from
// this service's perspective.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – stadium name.
//  City         – city the stadium is located in.
//  State        – state or region.
//  SeatCapacity – total number of seats.
type Stadium struct {
	ID           uint64 // stadiums.id
	Name         string // stadiums.name
	City         string // stadiums.city
	State        string // stadiums.state
	SeatCapacity uint32 // stadiums.seat_capacity
}
