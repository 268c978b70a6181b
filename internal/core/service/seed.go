package service

import (
	"context"
	"fmt"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
)

var demoDepartments = []ports.AddDepartmentInput{
	{ID: "S1", Name: "Sales"},
	{ID: "E1", Name: "Engineering"},
	{ID: "M1", Name: "Marketing"},
}

var demoHires = []ports.HireInput{
	{Type: domain.TypeFullTime, FirstName: "Ana", LastName: "Smith", Rate: 80000.0, DepartmentID: "S1"},
	{Type: domain.TypePartTime, FirstName: "Bob", LastName: "Johnson", Rate: 22.50, DepartmentID: "E1"},
	{Type: domain.TypeFullTime, FirstName: "Carla", LastName: "Diaz", Rate: 95000.0, DepartmentID: "E1"},
	{Type: domain.TypeFullTime, FirstName: "David", LastName: "Lee", Rate: 78000.0, DepartmentID: "S1"},
	{Type: domain.TypePartTime, FirstName: "Eve", LastName: "Brown", Rate: 25.00, DepartmentID: "M1"},
}

// SeedDemoData loads three departments and five employees so the shells have
// something to show on first start.
func SeedDemoData(ctx context.Context, svc ports.CompanyService) error {
	for _, d := range demoDepartments {
		if _, err := svc.AddDepartment(ctx, d); err != nil {
			return fmt.Errorf("seed department %s: %w", d.ID, err)
		}
	}
	for _, h := range demoHires {
		if _, err := svc.Hire(ctx, h); err != nil {
			return fmt.Errorf("seed employee %s %s: %w", h.FirstName, h.LastName, err)
		}
	}
	return nil
}
