package domain

import (
	"context"
	"fmt"
)

// HoursSource supplies the hours worked for one part-time employee during a
// payroll run. Returning an error (typically ErrInputCancelled) stops the run.
type HoursSource interface {
	HoursFor(ctx context.Context, e Employee) (int, error)
}

// HoursSourceFunc adapts a function to HoursSource.
type HoursSourceFunc func(ctx context.Context, e Employee) (int, error)

func (f HoursSourceFunc) HoursFor(ctx context.Context, e Employee) (int, error) {
	return f(ctx, e)
}

// Company owns every department and employee for the life of the process and
// hands out employee IDs. It is not safe for concurrent use.
type Company struct {
	employees   []*Employee
	departments []*Department
	ids         *IDSequence
}

func NewCompany() *Company {
	return &Company{ids: NewIDSequence(FirstEmployeeNumber)}
}

// IDs exposes the company's sequence for employee constructors.
func (c *Company) IDs() *IDSequence {
	return c.ids
}

// AddDepartment registers d. Duplicate IDs are not detected.
func (c *Company) AddDepartment(d *Department) {
	c.departments = append(c.departments, d)
}

// HireEmployee appends e without checking its department against the
// registry and returns the confirmation message.
func (c *Company) HireEmployee(e *Employee) string {
	c.employees = append(c.employees, e)
	return HireConfirmation(e)
}

// HireConfirmation is the message shown once e is on the books.
func HireConfirmation(e *Employee) string {
	return fmt.Sprintf("HIRE SUCCESS: %s (%s) has been hired into %s.", e.FullName(), e.ID, e.DepartmentName())
}

// FindEmployeeByID returns the first employee whose ID matches, ignoring case.
func (c *Company) FindEmployeeByID(id string) (*Employee, bool) {
	for _, e := range c.employees {
		if e.HasID(id) {
			return e, true
		}
	}
	return nil, false
}

// AvailableDepartments returns departments in registration order. An empty
// result means hiring cannot proceed.
func (c *Company) AvailableDepartments() []*Department {
	out := make([]*Department, len(c.departments))
	copy(out, c.departments)
	return out
}

func (c *Company) DepartmentByID(id string) (*Department, bool) {
	for _, d := range c.departments {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Employees returns employees in hire order.
func (c *Company) Employees() []*Employee {
	out := make([]*Employee, len(c.employees))
	copy(out, c.employees)
	return out
}

// UpdateHoursForAllPartTime asks src for the hours of every part-time
// employee in hire order. The first error aborts the run; updates already
// applied stay applied. It returns how many employees were updated.
func (c *Company) UpdateHoursForAllPartTime(ctx context.Context, src HoursSource) (int, error) {
	updated := 0
	for _, e := range c.employees {
		if e.Type() != TypePartTime {
			continue
		}
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		hours, err := src.HoursFor(ctx, *e)
		if err != nil {
			return updated, err
		}
		if err := e.SetHoursWorked(hours); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// PartTimeCount returns how many hourly employees are on the books.
func (c *Company) PartTimeCount() int {
	n := 0
	for _, e := range c.employees {
		if e.Type() == TypePartTime {
			n++
		}
	}
	return n
}
