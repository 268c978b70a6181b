package queue

import (
	"context"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
)

// CompanyService routes every call of the wrapped service through a
// Serializer so concurrent HTTP requests never touch the company at the same
// time.
type CompanyService struct {
	next ports.CompanyService
	s    *Serializer
}

var _ ports.CompanyService = (*CompanyService)(nil)

func NewCompanyService(next ports.CompanyService, s *Serializer) *CompanyService {
	return &CompanyService{next: next, s: s}
}

func (c *CompanyService) AddDepartment(ctx context.Context, in ports.AddDepartmentInput) (domain.Department, error) {
	return call(ctx, c.s, func(ctx context.Context) (domain.Department, error) {
		return c.next.AddDepartment(ctx, in)
	})
}

func (c *CompanyService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return call(ctx, c.s, c.next.ListDepartments)
}

func (c *CompanyService) Hire(ctx context.Context, in ports.HireInput) (*ports.HireResult, error) {
	return call(ctx, c.s, func(ctx context.Context) (*ports.HireResult, error) {
		return c.next.Hire(ctx, in)
	})
}

func (c *CompanyService) FindEmployee(ctx context.Context, id string) (domain.Employee, error) {
	return call(ctx, c.s, func(ctx context.Context) (domain.Employee, error) {
		return c.next.FindEmployee(ctx, id)
	})
}

func (c *CompanyService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return call(ctx, c.s, c.next.ListEmployees)
}

func (c *CompanyService) SetHours(ctx context.Context, employeeID string, hours int) (domain.Employee, error) {
	return call(ctx, c.s, func(ctx context.Context) (domain.Employee, error) {
		return c.next.SetHours(ctx, employeeID, hours)
	})
}

// UpdatePartTimeHours holds the worker for the whole batch, so src must not
// block on anything outside the process.
func (c *CompanyService) UpdatePartTimeHours(ctx context.Context, src domain.HoursSource) (ports.HoursUpdateResult, error) {
	return call(ctx, c.s, func(ctx context.Context) (ports.HoursUpdateResult, error) {
		return c.next.UpdatePartTimeHours(ctx, src)
	})
}

func (c *CompanyService) PayrollReport(ctx context.Context) (domain.PayrollReport, error) {
	return call(ctx, c.s, c.next.PayrollReport)
}

func (c *CompanyService) DepartmentPayrollReport(ctx context.Context) (domain.DepartmentPayrollReport, error) {
	return call(ctx, c.s, c.next.DepartmentPayrollReport)
}

func (c *CompanyService) EndOfYearReport(ctx context.Context) (domain.EndOfYearReport, error) {
	return call(ctx, c.s, c.next.EndOfYearReport)
}
