package database

import (
	"context"
	"database/sql"
)

// schemaStatements creates the five tables the service operates over.
// Reference data (users, stadiums, matches, seatings) is loaded
// out-of-band; only bookings rows are ever written by the service.
//
// The unique index uq_bookings_match_seat enforces the core invariant:
// a (match_id, seat_id) pair appears in at most one bookings row, so
// concurrent purchases of the same seat resolve to exactly one winner
// at commit time.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		contact VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS stadiums (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		city VARCHAR(128) NOT NULL,
		state VARCHAR(128) NOT NULL,
		seat_capacity INT UNSIGNED NOT NULL DEFAULT 0,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS matches (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		match_date DATE NOT NULL,
		match_time VARCHAR(32) NOT NULL,
		match_name VARCHAR(255) NOT NULL,
		stadium_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (id),
		KEY idx_matches_stadium (stadium_id),
		CONSTRAINT fk_matches_stadium FOREIGN KEY (stadium_id) REFERENCES stadiums (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seatings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		stadium_id BIGINT UNSIGNED NOT NULL,
		stand_name VARCHAR(128) NOT NULL,
		seat_number VARCHAR(32) NOT NULL,
		PRIMARY KEY (id),
		KEY idx_seatings_stadium (stadium_id),
		CONSTRAINT fk_seatings_stadium FOREIGN KEY (stadium_id) REFERENCES stadiums (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		booking_number CHAR(8) NOT NULL,
		match_id BIGINT UNSIGNED NOT NULL,
		seat_id BIGINT UNSIGNED NOT NULL,
		user_id BIGINT UNSIGNED NOT NULL,
		created_on TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (booking_number, match_id, seat_id),
		UNIQUE KEY uq_bookings_match_seat (match_id, seat_id),
		KEY idx_bookings_user (user_id),
		CONSTRAINT fk_bookings_match FOREIGN KEY (match_id) REFERENCES matches (id),
		CONSTRAINT fk_bookings_seat FOREIGN KEY (seat_id) REFERENCES seatings (id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables. It runs at startup so a
// fresh database is usable immediately; existing tables are left
// untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
