package handler

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/stadium-ticket-booking/internal/repository"
)

var bookingNumberPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// newBookingTest wires a BookingHandler onto a sqlmock database with
// event publishing stubbed out.
func newBookingTest(t *testing.T) (*BookingHandler, sqlmock.Sqlmock, *sql.DB, chan string) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewBookingHandler(repository.NewBookingRepo(db), repository.NewMatchRepo(db), repository.NewStadiumRepo(db), repository.NewUserRepo(db))
	published := make(chan string, 1)
	h.publish = func(bookingNumber string, userID, matchID uint64, seatIDs []uint64) {
		published <- bookingNumber
	}
	return h, mock, db, published
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingSuccessReturnsBookingNumber(t *testing.T) {
	h, mock, _, published := newBookingTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings (booking_number, match_id, seat_id, user_id) VALUES (?, ?, ?, ?),(?, ?, ?, ?)`)).
		WithArgs(sqlmock.AnyArg(), int64(5), int64(1), int64(1), sqlmock.AnyArg(), int64(5), int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":5,"seat_ids":[1,2]}`)
	c.Set("user_id", float64(1))

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		BookingNumber string `json:"booking_number"`
		SeatsBooked   int    `json:"seats_booked"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, bookingNumberPattern, resp.BookingNumber)
	assert.Equal(t, 2, resp.SeatsBooked)

	select {
	case n := <-published:
		assert.Equal(t, resp.BookingNumber, n)
	case <-time.After(2 * time.Second):
		t.Fatal("booking.created event was not published")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingConflictWhenSeatTaken(t *testing.T) {
	h, mock, _, published := newBookingTest(t)

	// Seat B is already booked for this match; the whole purchase is
	// rejected and rolled back, so seat A stays unbooked too.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '5-2' for key 'uq_bookings_match_seat'"})
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":5,"seat_ids":[1,2]}`)
	c.Set("user_id", float64(1))

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	select {
	case <-published:
		t.Fatal("no event may be published for a rejected booking")
	default:
	}
}

func TestCreateBookingDuplicateSeatInRequestConflicts(t *testing.T) {
	h, mock, _, _ := newBookingTest(t)

	// The same seat listed twice collides with itself on the primary
	// key; the store rejects it like any other duplicate.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":5,"seat_ids":[3,3]}`)
	c.Set("user_id", float64(1))

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnknownMatchIsUnprocessable(t *testing.T) {
	h, mock, _, _ := newBookingTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row: fk_bookings_match"})
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":999,"seat_ids":[1]}`)
	c.Set("user_id", float64(1))

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingStoreUnavailable(t *testing.T) {
	h, mock, _, _ := newBookingTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WillReturnError(driver.ErrBadConn)
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":5,"seat_ids":[1]}`)
	c.Set("user_id", float64(1))

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty seat list", `{"match_id":5,"seat_ids":[]}`},
		{"missing seat list", `{"match_id":5}`},
		{"missing match id", `{"seat_ids":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _ := newBookingTest(t)
			c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", tt.body)
			c.Set("user_id", float64(1))
			require.NoError(t, h.CreateBooking(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBookingWithoutIdentity(t *testing.T) {
	h, _, _, _ := newBookingTest(t)
	c, rec := newJSONContext(t, http.MethodPost, "/v1/bookings", `{"match_id":5,"seat_ids":[1]}`)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMyBookings(t *testing.T) {
	h, mock, _, _ := newBookingTest(t)

	createdOn := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	matchDate := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.user_id = ?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"match_id", "match_date", "match_time", "match_name",
			"name", "stand_name", "seat_number", "created_on", "booking_number",
		}).
			AddRow(int64(5), matchDate, "19:30", "Home vs Away", "North Park", "East Stand", "E-101", createdOn, "AB12CD34").
			AddRow(int64(5), matchDate, "19:30", "Home vs Away", "North Park", "East Stand", "E-102", createdOn, "AB12CD34"))

	c, rec := newJSONContext(t, http.MethodGet, "/v1/my-bookings", "")
	c.Set("user_id", float64(1))

	require.NoError(t, h.ListMyBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []MyBookingItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "AB12CD34", resp.Items[0].BookingNumber)
	assert.Equal(t, resp.Items[0].BookingNumber, resp.Items[1].BookingNumber)
	assert.Equal(t, "2026-04-02", resp.Items[0].MatchDate)
	assert.Equal(t, "North Park", resp.Items[0].StadiumName)
	assert.Equal(t, "2026-03-14T10:30:00Z", resp.Items[0].CreatedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMyBookingsEmpty(t *testing.T) {
	h, mock, _, _ := newBookingTest(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.user_id = ?`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"match_id", "match_date", "match_time", "match_name",
			"name", "stand_name", "seat_number", "created_on", "booking_number",
		}))

	c, rec := newJSONContext(t, http.MethodGet, "/v1/my-bookings", "")
	c.Set("user_id", float64(7))

	require.NoError(t, h.ListMyBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
