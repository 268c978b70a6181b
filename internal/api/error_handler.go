package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/infrastructure/queue"
)

// errorResponse is the body of every 4xx and 5xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// statusRule maps a sentinel to a status. An empty message means the error's
// own text is shown; the wrapped context names the employee or department.
type statusRule struct {
	target  error
	status  int
	message string
}

var statusRules = []statusRule{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrEmployeeNotFound, http.StatusNotFound, ""},
	{domain.ErrDepartmentNotFound, http.StatusNotFound, ""},
	{domain.ErrNoDepartments, http.StatusConflict, ""},
	{domain.ErrInputCancelled, http.StatusConflict, ""},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, ""},
	{domain.ErrNotPartTime, http.StatusUnprocessableEntity, ""},
	{queue.ErrStopped, http.StatusServiceUnavailable, "service is shutting down"},
}

// NewHTTPErrorHandler renders errors as {"error": "..."}. Unmapped errors are
// logged and answered with a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := resolveError(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}
		_ = c.JSON(status, errorResponse{Error: msg})
	}
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	for _, r := range statusRules {
		if !errors.Is(err, r.target) {
			continue
		}
		if r.message != "" {
			return r.status, r.message
		}
		return r.status, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
