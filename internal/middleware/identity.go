package middleware

// identity.go defines helpers shared across middleware files. The rate
// limiter keys buckets per user when possible; unauthenticated traffic
// shares the "anon" identity and is keyed by IP instead.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID renders the user_id stored in context by JWTAuth as a
// string for use in Redis keys. It returns "anon" when no identity is
// present.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64, int64, int:
		return fmt.Sprint(t)
	}
	return "anon"
}
