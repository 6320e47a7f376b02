package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stadium-ticket-booking/internal/handler"
	"github.com/iliyamo/stadium-ticket-booking/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication and no
// other middleware. Currently it exposes only a health check, used by
// load balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints:
// matches, per-match availability and the stadium seat maps. The
// optional middleware (response cache, rate limiter) is applied to the
// whole group; read responses are idempotent so caching them is safe
// within the configured TTL.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	// Full match schedule
	g.GET("/matches", p.GetMatches)
	// Single match details
	g.GET("/matches/:id", p.GetMatch)
	// Vacant seats for a match (empty array when unknown or sold out)
	g.GET("/matches/:id/availability", p.GetAvailability)
	// Stadium reference data
	g.GET("/stadiums", p.GetStadiums)
	// Seat map of one stadium
	g.GET("/stadiums/:id/seats", p.GetStadiumSeats)
}

// RegisterBookings registers the authenticated booking endpoints. The
// JWTAuth middleware verifies the bearer token issued by the external
// identity provider and injects the resolved user id; handlers never
// authenticate users themselves. The booking write is deliberately
// left outside the response cache.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.Use(mw...)
	// Book one or more seats atomically
	g.POST("/bookings", b.CreateBooking)
	// Booking history for the authenticated user
	g.GET("/my-bookings", b.ListMyBookings)
}
