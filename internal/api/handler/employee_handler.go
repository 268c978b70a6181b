package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrledger/payroll-system/internal/api/metrics"
	"github.com/hrledger/payroll-system/internal/core/ports"
	"github.com/hrledger/payroll-system/internal/core/report"
)

const headerIdempotencyKey = "Idempotency-Key"

// EmployeeHandler handles HTTP requests for hiring and looking up employees.
type EmployeeHandler struct {
	service ports.CompanyService
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewEmployeeHandler(service ports.CompanyService, m *metrics.Metrics, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, metrics: m, log: log}
}

// Hire handles POST /v1/employees.
//
// @Summary      Hire an employee
// @Description  rate is the annual salary for full_time hires and the hourly rate for part_time hires.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Replays the original hire when repeated"
// @Param        body             body      hireRequest  true   "Employee details"
// @Success      201              {object}  hireResponse
// @Success      200              {object}  hireResponse  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse  "Department not found"
// @Failure      409              {object}  errorResponse  "No departments exist"
// @Failure      422              {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Hire(c echo.Context) error {
	var req hireRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	username, _, err := actor(c)
	if err != nil {
		return err
	}

	res, err := h.service.Hire(c.Request().Context(), ports.HireInput{
		Type:           toEmployeeType(req.Type),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DepartmentID:   req.DepartmentID,
		Rate:           req.Rate,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if res.AlreadyExisted {
		status = http.StatusOK
		h.metrics.HireReplaysTotal.Inc()
	} else {
		h.metrics.HiresTotal.WithLabelValues(string(res.Employee.Type())).Inc()
		h.log.Info().
			Str("employee_id", res.Employee.ID).
			Str("hired_by", username).
			Msg("hire recorded")
	}

	c.Response().Header().Set(echo.HeaderLocation, "/v1/employees/"+res.Employee.ID)
	return c.JSON(status, hireResponse{
		Message:  res.Message,
		Employee: toEmployeeResponse(res.Employee),
	})
}

// List handles GET /v1/employees.
//
// @Summary      List employees in hire order
// @Tags         employees
// @Produce      json,plain
// @Security     BearerAuth
// @Param        format  query     string  false  "text for the printable record cards"  Enums(json, text)
// @Success      200     {array}   employeeResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	es, err := h.service.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}

	if wantsText(c) {
		return c.String(http.StatusOK, report.EmployeeList(es))
	}

	resp := make([]employeeResponse, 0, len(es))
	for _, e := range es {
		resp = append(resp, toEmployeeResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/employees/:id. The ID is matched case-insensitively.
//
// @Summary      Find an employee by ID
// @Tags         employees
// @Produce      json,plain
// @Security     BearerAuth
// @Param        id      path      string  true   "Employee ID (e.g. F101)"
// @Param        format  query     string  false  "text for the printable record card"  Enums(json, text)
// @Success      200     {object}  employeeResponse
// @Failure      404     {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	e, err := h.service.FindEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if wantsText(c) {
		return c.String(http.StatusOK, report.EmployeeDetails(e))
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// SetHours handles PUT /v1/employees/:id/hours.
//
// @Summary      Record hours worked by one part-time employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee ID"
// @Param        body  body      setHoursRequest  true  "Hours worked this period"
// @Success      200   {object}  employeeResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse  "Negative hours or salaried employee"
// @Router       /v1/employees/{id}/hours [put]
func (h *EmployeeHandler) SetHours(c echo.Context) error {
	var req setHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	e, err := h.service.SetHours(c.Request().Context(), c.Param("id"), *req.Hours)
	if err != nil {
		h.metrics.HoursUpdatesTotal.WithLabelValues("single", hoursResult(err)).Inc()
		return err
	}
	h.metrics.HoursUpdatesTotal.WithLabelValues("single", "ok").Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func wantsText(c echo.Context) bool {
	return c.QueryParam("format") == "text"
}
