package repository // repository defines data access for matches

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/stadium-ticket-booking/internal/model"
)

// ErrMatchNotFound is returned when a match lookup yields no rows.
var ErrMatchNotFound = errors.New("match not found")

// MatchRepo provides read access to the matches table. Matches are
// reference data loaded out-of-band, so the repository exposes no
// write methods.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo constructs a MatchRepo with the given DB handle.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *MatchRepo) DB() *sql.DB { return r.db }

// ListAll returns every scheduled match ordered by date then id.
func (r *MatchRepo) ListAll(ctx context.Context) ([]model.Match, error) {
	const q = `SELECT id, match_date, match_time, match_name, stadium_id
	           FROM matches
	           ORDER BY match_date, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Match, 0)
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.MatchDate, &m.MatchTime, &m.MatchName, &m.StadiumID); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a match by its id.
func (r *MatchRepo) GetByID(ctx context.Context, id uint64) (*model.Match, error) {
	const q = `SELECT id, match_date, match_time, match_name, stadium_id
	           FROM matches WHERE id = ?`
	var m model.Match
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.MatchDate, &m.MatchTime, &m.MatchName, &m.StadiumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}
