package model

import "time"

// User represents a ticket-buying customer as stored in the `users`
// table. Users are reference data created out-of-band by an external
// identity system; this service only reads them. The json tags are
// omitted because these structs are used internally by the repository
// layer; handlers define separate response types with appropriate tags.
//
// Fields:
//  ID        – primary key identifier of the user.
//  Name      – display name.
//  Email     – email address.
//  Contact   – free-form contact string (usually a phone number).
//  CreatedAt – timestamp of creation.
type User struct {
	ID        uint64    // users.id
	Name      string    // users.name
	Email     string    // users.email
	Contact   string    // users.contact
	CreatedAt time.Time // users.created_at
}
