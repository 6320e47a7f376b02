package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d1 := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, match_date, match_time, match_name, stadium_id FROM matches ORDER BY match_date, id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_date", "match_time", "match_name", "stadium_id"}).
			AddRow(int64(1), d1, "15:00", "Home vs Away", int64(3)).
			AddRow(int64(2), d2, "19:30", "Derby Night", int64(3)))

	repo := NewMatchRepo(db)
	matches, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, uint64(1), matches[0].ID)
	assert.Equal(t, "Derby Night", matches[1].MatchName)
	assert.Equal(t, d1, matches[0].MatchDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM matches WHERE id = ?`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_date", "match_time", "match_name", "stadium_id"}))

	repo := NewMatchRepo(db)
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStadiumGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM stadiums WHERE id = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "seat_capacity"}).
			AddRow(int64(3), "North Park", "Springfield", "IL", int64(40000)))

	repo := NewStadiumRepo(db)
	s, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "North Park", s.Name)
	assert.Equal(t, uint32(40000), s.SeatCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
