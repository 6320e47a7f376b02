// Package handler exposes HTTP handlers for both public and
// authenticated endpoints. This file defines handlers for the public
// browsing API: matches, per-match seat availability and the stadium
// reference data. These routes require no authentication so that
// anyone can inspect the schedule and vacant seats before booking.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stadium-ticket-booking/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing of matches, availability and stadiums.
type PublicHandler struct {
	MatchRepo   *repository.MatchRepo   // provides access to match data
	StadiumRepo *repository.StadiumRepo // provides access to stadium data
	SeatingRepo *repository.SeatingRepo // provides access to seats and availability
}

// NewPublicHandler constructs a PublicHandler with the provided
// repositories. All dependencies must be non-nil.
func NewPublicHandler(matchRepo *repository.MatchRepo, stadiumRepo *repository.StadiumRepo, seatingRepo *repository.SeatingRepo) *PublicHandler {
	if matchRepo == nil || stadiumRepo == nil || seatingRepo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{
		MatchRepo:   matchRepo,
		StadiumRepo: stadiumRepo,
		SeatingRepo: seatingRepo,
	}
}

// MatchItem represents a match in list responses. The date is
// serialized as YYYY-MM-DD; the time stays the free-form string the
// schedule feed provides.
type MatchItem struct {
	MatchID   uint64 `json:"match_id"`
	MatchDate string `json:"match_date"`
	MatchTime string `json:"match_time"`
	MatchName string `json:"match_name"`
	StadiumID uint64 `json:"stadium_id"`
}

// StadiumItem represents a stadium in list responses.
type StadiumItem struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	State        string `json:"state"`
	SeatCapacity uint32 `json:"seat_capacity"`
}

// SeatItem represents one physical seat of a stadium.
type SeatItem struct {
	ID         uint64 `json:"id"`
	StandName  string `json:"stand_name"`
	SeatNumber string `json:"seat_number"`
}

// GetMatches handles GET /v1/matches. It returns every scheduled match
// with its date, time, name and hosting stadium id. An empty schedule
// yields an empty items array, not an error.
func (h *PublicHandler) GetMatches(c echo.Context) error {
	ctx := c.Request().Context()
	matches, err := h.MatchRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]MatchItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchItem{
			MatchID:   m.ID,
			MatchDate: m.MatchDate.Format("2006-01-02"),
			MatchTime: m.MatchTime,
			MatchName: m.MatchName,
			StadiumID: m.StadiumID,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetMatch handles GET /v1/matches/:id. It returns a single match or
// 404 when the id is unknown.
func (h *PublicHandler) GetMatch(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
	}
	m, err := h.MatchRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMatchNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, MatchItem{
		MatchID:   m.ID,
		MatchDate: m.MatchDate.Format("2006-01-02"),
		MatchTime: m.MatchTime,
		MatchName: m.MatchName,
		StadiumID: m.StadiumID,
	})
}

// GetAvailability handles GET /v1/matches/:id/availability. It returns
// the seats of the match's stadium that have no booking for the match.
// An unknown match id yields an empty items array: "no such match" and
// "all seats booked" are both valid empty results, not errors.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
	}
	seats, err := h.SeatingRepo.AvailableByMatch(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}

// GetStadiums handles GET /v1/stadiums. It lists all stadiums.
func (h *PublicHandler) GetStadiums(c echo.Context) error {
	ctx := c.Request().Context()
	stadiums, err := h.StadiumRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]StadiumItem, 0, len(stadiums))
	for _, s := range stadiums {
		out = append(out, StadiumItem{
			ID:           s.ID,
			Name:         s.Name,
			City:         s.City,
			State:        s.State,
			SeatCapacity: s.SeatCapacity,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetStadiumSeats handles GET /v1/stadiums/:id/seats. It validates the
// stadium exists, then returns its full seat list grouped by stand in
// the store's ordering. The response also echoes the stadium so
// clients can label the seat map.
func (h *PublicHandler) GetStadiumSeats(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid stadium id"})
	}
	s, err := h.StadiumRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrStadiumNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	seats, err := h.SeatingRepo.ListByStadium(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]SeatItem, 0, len(seats))
	for _, seat := range seats {
		out = append(out, SeatItem{ID: seat.ID, StandName: seat.StandName, SeatNumber: seat.SeatNumber})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"stadium": StadiumItem{ID: s.ID, Name: s.Name, City: s.City, State: s.State, SeatCapacity: s.SeatCapacity},
		"items":   out,
	})
}
