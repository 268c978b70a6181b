package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrledger/payroll-system/internal/pkg/token"
)

// Context keys set by Auth.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth verifies the bearer token and stores the operator's username and role
// on the echo context for RBAC and the handlers.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	signer := token.NewSigner(jwtSecret, 0)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := signer.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			c.Set(ContextUsername, claims.Username)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}
