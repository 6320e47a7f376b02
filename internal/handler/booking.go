package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stadium-ticket-booking/internal/queue"
	"github.com/iliyamo/stadium-ticket-booking/internal/repository"
	queue_publisher "github.com/iliyamo/stadium-ticket-booking/internal/service"
	"github.com/iliyamo/stadium-ticket-booking/internal/utils"
)

// BookingHandler groups the repositories required to create bookings
// and list a user's booking history. All methods assume that identity
// middleware has already run; methods return 401 Unauthorized if the
// user ID cannot be extracted from the context. The booking write runs
// inside a transaction to guarantee atomicity.
type BookingHandler struct {
	BookingRepo *repository.BookingRepo // access to bookings
	MatchRepo   *repository.MatchRepo   // access to matches for event enrichment
	StadiumRepo *repository.StadiumRepo // access to stadiums for event enrichment
	UserRepo    *repository.UserRepo    // access to users for event enrichment

	// publish emits the booking.created event after a successful
	// commit; replaced in tests to avoid a live broker.
	publish func(bookingNumber string, userID, matchID uint64, seatIDs []uint64)
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories. All dependencies must be non-nil.
func NewBookingHandler(bookingRepo *repository.BookingRepo, matchRepo *repository.MatchRepo, stadiumRepo *repository.StadiumRepo, userRepo *repository.UserRepo) *BookingHandler {
	if bookingRepo == nil || matchRepo == nil || stadiumRepo == nil || userRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	h := &BookingHandler{
		BookingRepo: bookingRepo,
		MatchRepo:   matchRepo,
		StadiumRepo: stadiumRepo,
		UserRepo:    userRepo,
	}
	h.publish = h.publishBookingCreated
	return h
}

// CreateBooking handles POST /v1/bookings. The request body must
// contain a JSON object with a match_id and a non-empty seat_ids array
// of seats believed to be free. One booking number is generated for
// the purchase and one bookings row per seat is inserted in a single
// transaction: either every seat is booked or none are.
//
// Duplicate seat ids within the request are not pre-filtered; they hit
// the store's primary key and reject the purchase the same way a seat
// already taken by another user does. Responses: 201 with the booking
// number on success, 409 when a seat is already booked, 422 when the
// match, a seat or the user does not exist, 503 when the store is
// unreachable.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		MatchID uint64   `json:"match_id"`
		SeatIDs []uint64 `json:"seat_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MatchID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "match_id is required"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}

	bookingNumber, err := utils.NewBookingNumber()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate booking number"})
	}
	records := make([]repository.BookingRecord, 0, len(body.SeatIDs))
	for _, seatID := range body.SeatIDs {
		records = append(records, repository.BookingRecord{
			BookingNumber: bookingNumber,
			MatchID:       body.MatchID,
			SeatID:        seatID,
			UserID:        userID,
		})
	}

	ctx := c.Request().Context()
	tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := h.BookingRepo.CreateBulkTx(ctx, tx, records); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSeat):
			return c.JSON(http.StatusConflict, echo.Map{"error": "one or more seats are already booked for this match"})
		case errors.Is(err, repository.ErrInvalidReference):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown match, seat or user"})
		case errors.Is(err, repository.ErrStoreUnavailable):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable, try again"})
		default:
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking could not be committed"})
		}
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking could not be committed"})
	}
	committed = true

	// Fire the booking.created event after commit. Publishing is
	// best-effort and must never fail the request.
	go h.publish(bookingNumber, userID, body.MatchID, body.SeatIDs)

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_number": bookingNumber,
		"seats_booked":   len(body.SeatIDs),
	})
}

// publishBookingCreated enriches and publishes a BookingCreatedEvent.
// It runs outside the request lifecycle with its own timeout; lookup
// failures leave the name fields empty rather than dropping the event.
func (h *BookingHandler) publishBookingCreated(bookingNumber string, userID, matchID uint64, seatIDs []uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ev := queue.BookingCreatedEvent{
		BookingNumber: bookingNumber,
		UserID:        userID,
		MatchID:       matchID,
		SeatIDs:       seatIDs,
		SeatsBooked:   uint32(len(seatIDs)),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if u, err := h.UserRepo.GetByID(ctx, userID); err == nil {
		ev.UserName = u.Name
	}
	if n, err := h.BookingRepo.CountByMatch(ctx, matchID); err == nil {
		ev.MatchSeatsBooked = n
	}
	if m, err := h.MatchRepo.GetByID(ctx, matchID); err == nil {
		ev.MatchName = m.MatchName
		ev.MatchDate = m.MatchDate.Format("2006-01-02")
		if s, err2 := h.StadiumRepo.GetByID(ctx, m.StadiumID); err2 == nil {
			ev.StadiumName = s.Name
		}
	}
	_ = queue_publisher.PublishBookingCreated(ctx, ev)
}

// MyBookingItem is one row of the booking history response.
type MyBookingItem struct {
	MatchID       uint64 `json:"match_id"`
	MatchDate     string `json:"match_date"`
	MatchTime     string `json:"match_time"`
	MatchName     string `json:"match_name"`
	StadiumName   string `json:"stadium_name"`
	StandName     string `json:"stand_name"`
	SeatNumber    string `json:"seat_number"`
	CreatedOn     string `json:"booking_created_on"`
	BookingNumber string `json:"booking_number"`
}

// ListMyBookings handles GET /v1/my-bookings. It returns every seat
// booked by the authenticated user, each row joined with its match,
// stadium and seat details. Users with no bookings receive an empty
// items array.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	details, err := h.BookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	out := make([]MyBookingItem, 0, len(details))
	for _, d := range details {
		out = append(out, MyBookingItem{
			MatchID:       d.MatchID,
			MatchDate:     d.MatchDate.Format("2006-01-02"),
			MatchTime:     d.MatchTime,
			MatchName:     d.MatchName,
			StadiumName:   d.StadiumName,
			StandName:     d.StandName,
			SeatNumber:    d.SeatNumber,
			CreatedOn:     d.CreatedOn.UTC().Format(time.RFC3339),
			BookingNumber: d.BookingNumber,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// getUserID extracts the user_id placed in the context by the identity
// middleware and converts it to uint64. The JWT library decodes
// numeric claims as float64, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
