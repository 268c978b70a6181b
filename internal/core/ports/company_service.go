package ports

import (
	"context"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// AddDepartmentInput carries the identity of a new department.
type AddDepartmentInput struct {
	ID   string
	Name string
}

// HireInput carries everything needed to hire one employee.
type HireInput struct {
	Type         domain.EmployeeType
	FirstName    string
	LastName     string
	DepartmentID string
	// Rate is the annual salary for full-time hires and the hourly rate for
	// part-time hires.
	Rate           float64
	IdempotencyKey string
}

// HireResult is returned by the service after a hire.
type HireResult struct {
	Message  string
	Employee domain.Employee
	// AlreadyExisted is true when the idempotency key matched an earlier hire.
	AlreadyExisted bool
}

// HoursUpdateResult summarises a payroll-period hour update.
type HoursUpdateResult struct {
	Updated    int
	PartTimers int
}

// CompanyService defines the use cases both shells drive. Employees are
// returned as snapshots; mutating them does not affect the registry.
type CompanyService interface {
	AddDepartment(ctx context.Context, in AddDepartmentInput) (domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	Hire(ctx context.Context, in HireInput) (*HireResult, error)
	FindEmployee(ctx context.Context, id string) (domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	SetHours(ctx context.Context, employeeID string, hours int) (domain.Employee, error)
	UpdatePartTimeHours(ctx context.Context, src domain.HoursSource) (HoursUpdateResult, error)

	PayrollReport(ctx context.Context) (domain.PayrollReport, error)
	DepartmentPayrollReport(ctx context.Context) (domain.DepartmentPayrollReport, error)
	EndOfYearReport(ctx context.Context) (domain.EndOfYearReport, error)
}
