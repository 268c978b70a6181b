package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// ReadAccess admits every operator role.
func ReadAccess() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin, domain.RoleViewer)
}

// WriteAccess admits admins only. Hiring, departments and hours are writes.
func WriteAccess() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin)
}

// RBAC lets the request through only when the role stored by Auth is one of
// roles.
func RBAC(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if !allowed[role] {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("role %q may not %s %s", role, c.Request().Method, c.Path()))
			}
			return next(c)
		}
	}
}
