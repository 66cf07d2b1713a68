package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// IdentityKey is the echo context key the caller's identity is stored under.
const IdentityKey = "identity"

// TokenParser verifies a raw session token and decodes its identity.
type TokenParser interface {
	Parse(raw string) (domain.Identity, error)
}

// Auth validates the bearer token and injects the caller identity into context.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := parser.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(IdentityKey, id)
			return next(c)
		}
	}
}

// Identity returns the caller stored by Auth, or the zero identity.
func Identity(c echo.Context) domain.Identity {
	id, _ := c.Get(IdentityKey).(domain.Identity)
	return id
}
