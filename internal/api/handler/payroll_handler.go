package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrledger/payroll-system/internal/api/metrics"
	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
	"github.com/hrledger/payroll-system/internal/core/report"
)

// PayrollHandler handles the payroll-period hour update and the reports.
type PayrollHandler struct {
	service ports.CompanyService
	metrics *metrics.Metrics
}

func NewPayrollHandler(service ports.CompanyService, m *metrics.Metrics) *PayrollHandler {
	return &PayrollHandler{service: service, metrics: m}
}

// batchHours answers hour prompts from a submitted map of employee ID to
// hours. IDs match case-insensitively. A part-timer with no entry cancels
// the run.
type batchHours map[string]int

func (b batchHours) HoursFor(_ context.Context, e domain.Employee) (int, error) {
	if h, ok := b[e.ID]; ok {
		return h, nil
	}
	for id, h := range b {
		if strings.EqualFold(id, e.ID) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("no hours supplied for %s (%s): %w", e.ID, e.FullName(), domain.ErrInputCancelled)
}

// UpdateHours handles PUT /v1/payroll/hours.
//
// @Summary      Record hours for every part-time employee
// @Description  Negative hours are rejected before anything is applied. Employees are then updated in hire order; the run stops at the first part-timer without an entry and updates applied before that remain.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      batchHoursRequest  true  "Hours keyed by employee ID"
// @Success      200   {object}  hoursUpdateResponse
// @Failure      409   {object}  errorResponse  "Run cancelled"
// @Failure      422   {object}  errorResponse
// @Router       /v1/payroll/hours [put]
func (h *PayrollHandler) UpdateHours(c echo.Context) error {
	var req batchHoursRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.service.UpdatePartTimeHours(c.Request().Context(), batchHours(req.Hours))
	h.metrics.HoursUpdatesTotal.WithLabelValues("batch", hoursResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hoursUpdateResponse{Updated: res.Updated, PartTimers: res.PartTimers})
}

// Payroll handles GET /v1/reports/payroll.
//
// @Summary      Weekly company-wide payroll
// @Tags         reports
// @Produce      json,plain
// @Security     BearerAuth
// @Param        format  query     string  false  "text for the printable report"  Enums(json, text)
// @Success      200     {object}  payrollReportResponse
// @Router       /v1/reports/payroll [get]
func (h *PayrollHandler) Payroll(c echo.Context) error {
	r, err := h.service.PayrollReport(c.Request().Context())
	if err != nil {
		return err
	}
	h.metrics.PayrollTotal.Set(r.Total.InexactFloat64())

	if wantsText(c) {
		h.countReport("payroll", "text")
		return c.String(http.StatusOK, report.Payroll(r))
	}
	h.countReport("payroll", "json")
	return c.JSON(http.StatusOK, toPayrollReportResponse(r))
}

// DepartmentPayroll handles GET /v1/reports/payroll/departments.
//
// @Summary      Weekly payroll grouped by department
// @Tags         reports
// @Produce      json,plain
// @Security     BearerAuth
// @Param        format  query     string  false  "text for the printable report"  Enums(json, text)
// @Success      200     {object}  departmentPayrollResponse
// @Router       /v1/reports/payroll/departments [get]
func (h *PayrollHandler) DepartmentPayroll(c echo.Context) error {
	r, err := h.service.DepartmentPayrollReport(c.Request().Context())
	if err != nil {
		return err
	}

	if wantsText(c) {
		h.countReport("department_payroll", "text")
		return c.String(http.StatusOK, report.DepartmentPayroll(r))
	}
	h.countReport("department_payroll", "json")
	return c.JSON(http.StatusOK, toDepartmentPayrollResponse(r))
}

// EndOfYear handles GET /v1/reports/end-of-year.
//
// @Summary      End-of-year bonus and training report
// @Tags         reports
// @Produce      json,plain
// @Security     BearerAuth
// @Param        format  query     string  false  "text for the printable report"  Enums(json, text)
// @Success      200     {object}  endOfYearResponse
// @Router       /v1/reports/end-of-year [get]
func (h *PayrollHandler) EndOfYear(c echo.Context) error {
	r, err := h.service.EndOfYearReport(c.Request().Context())
	if err != nil {
		return err
	}

	if wantsText(c) {
		h.countReport("end_of_year", "text")
		return c.String(http.StatusOK, report.EndOfYear(r))
	}
	h.countReport("end_of_year", "json")
	return c.JSON(http.StatusOK, toEndOfYearResponse(r))
}

func (h *PayrollHandler) countReport(kind, format string) {
	h.metrics.ReportsGeneratedTotal.WithLabelValues(kind, format).Inc()
}

// hoursResult labels the outcome of an hour update for metrics.
func hoursResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInputCancelled):
		return "cancelled"
	default:
		return "error"
	}
}
