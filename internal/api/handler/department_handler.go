package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrledger/payroll-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	service ports.CompanyService
}

func NewDepartmentHandler(service ports.CompanyService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List handles GET /v1/departments.
//
// @Summary      List departments in registration order
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   departmentResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	depts, err := h.service.ListDepartments(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]departmentResponse, 0, len(depts))
	for _, d := range depts {
		resp = append(resp, toDepartmentResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/departments.
//
// @Summary      Register a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	d, err := h.service.AddDepartment(c.Request().Context(), ports.AddDepartmentInput{ID: req.ID, Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDepartmentResponse(d))
}
