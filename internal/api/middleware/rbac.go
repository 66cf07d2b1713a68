package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/core/domain"
)

// RBAC enforces role-based access control. A zero identity never passes.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := Identity(c)
			if id.IsZero() || !id.RoleID.In(allowedRoles...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
