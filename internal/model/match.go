package model

import "time"

// Match represents a scheduled event hosted at a stadium. MatchTime is
// kept as the free-form time-of-day string the schedule feed provides
// (e.g. "19:30 IST") rather than a parsed time.Time.
//
// Fields:
//  ID        – primary key identifier.
//  MatchDate – calendar date of the match.
//  MatchTime – time-of-day string.
//  MatchName – human-readable name (e.g. the two teams playing).
//  StadiumID – foreign key into stadiums.
type Match struct {
	ID        uint64    // matches.id
	MatchDate time.Time // matches.match_date (DATE column)
	MatchTime string    // matches.match_time
	MatchName string    // matches.match_name
	StadiumID uint64    // matches.stadium_id
}
