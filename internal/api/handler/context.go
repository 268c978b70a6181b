package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Context keys set by middleware.Auth.
const (
	ctxUsername = "username"
	ctxRole     = "role"
)

// actor returns the authenticated operator. The role must be present; its
// absence means the Auth middleware did not run for this route.
func actor(c echo.Context) (username, role string, err error) {
	role, _ = c.Get(ctxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get(ctxUsername).(string)
	return username, role, nil
}
