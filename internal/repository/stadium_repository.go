package repository // repository defines data access for stadiums

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/stadium-ticket-booking/internal/model"
)

// ErrStadiumNotFound is returned when a stadium lookup yields no rows.
var ErrStadiumNotFound = errors.New("stadium not found")

// StadiumRepo provides read access to the stadiums table.
type StadiumRepo struct {
	db *sql.DB
}

// NewStadiumRepo constructs a StadiumRepo with the given DB handle.
func NewStadiumRepo(db *sql.DB) *StadiumRepo {
	return &StadiumRepo{db: db}
}

// ListAll returns every stadium ordered by name.
func (r *StadiumRepo) ListAll(ctx context.Context) ([]model.Stadium, error) {
	const q = `SELECT id, name, city, state, seat_capacity
	           FROM stadiums
	           ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Stadium, 0)
	for rows.Next() {
		var s model.Stadium
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.SeatCapacity); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a stadium by its id.
func (r *StadiumRepo) GetByID(ctx context.Context, id uint64) (*model.Stadium, error) {
	const q = `SELECT id, name, city, state, seat_capacity
	           FROM stadiums WHERE id = ?`
	var s model.Stadium
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Name, &s.City, &s.State, &s.SeatCapacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStadiumNotFound
		}
		return nil, err
	}
	return &s, nil
}
