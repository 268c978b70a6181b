package domain

import (
	"fmt"
	"strings"
)

// EmployeeType tags the compensation variant of an employee.
type EmployeeType string

const (
	TypeFullTime EmployeeType = "FULL_TIME_SALARIED"
	TypePartTime EmployeeType = "PART_TIME_HOURLY"
)

const (
	// BonusRate is the share of annual salary paid as the end-of-year bonus.
	BonusRate = 0.05

	// WeeksPerYear divides an annual salary into weekly pay.
	WeeksPerYear = 52.0

	fullTimePrefix = "F"
	partTimePrefix = "P"
)

// Compensation is the closed set of pay arrangements: Salaried or Hourly.
type Compensation interface {
	employeeType() EmployeeType
}

// Salaried is the full-time arrangement.
type Salaried struct {
	AnnualSalary float64
}

// Hourly is the part-time arrangement. HoursWorked covers the current
// payroll period and only changes through Employee.SetHoursWorked.
type Hourly struct {
	HourlyRate  float64
	HoursWorked int
}

func (Salaried) employeeType() EmployeeType { return TypeFullTime }
func (Hourly) employeeType() EmployeeType   { return TypePartTime }

// Employee is a hired person. Department points at the company's registered
// instance and is shared, never copied, between employees.
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Department   *Department
	Compensation Compensation
}

// NewFullTimeEmployee builds a salaried employee and draws its ID from seq.
// A negative salary is rejected before an ID is consumed.
func NewFullTimeEmployee(seq *IDSequence, firstName, lastName string, annualSalary float64, dept *Department) (*Employee, error) {
	if annualSalary < 0 {
		return nil, fmt.Errorf("annual salary %.2f: %w", annualSalary, ErrInvalidInput)
	}
	return &Employee{
		ID:           seq.Next(fullTimePrefix),
		FirstName:    firstName,
		LastName:     lastName,
		Department:   dept,
		Compensation: Salaried{AnnualSalary: annualSalary},
	}, nil
}

// NewPartTimeEmployee builds an hourly employee with zero hours recorded.
func NewPartTimeEmployee(seq *IDSequence, firstName, lastName string, hourlyRate float64, dept *Department) (*Employee, error) {
	if hourlyRate < 0 {
		return nil, fmt.Errorf("hourly rate %.2f: %w", hourlyRate, ErrInvalidInput)
	}
	return &Employee{
		ID:           seq.Next(partTimePrefix),
		FirstName:    firstName,
		LastName:     lastName,
		Department:   dept,
		Compensation: Hourly{HourlyRate: hourlyRate},
	}, nil
}

func (e *Employee) Type() EmployeeType {
	return e.Compensation.employeeType()
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// DepartmentName returns the name of the employee's department, or "" when
// none is attached.
func (e *Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}

// WeeklyPay computes pay for one payroll period.
func (e *Employee) WeeklyPay() float64 {
	switch c := e.Compensation.(type) {
	case Salaried:
		return c.AnnualSalary / WeeksPerYear
	case Hourly:
		return c.HourlyRate * float64(c.HoursWorked)
	default:
		panic(fmt.Sprintf("domain: unknown compensation %T", c))
	}
}

// AnnualBonus returns the end-of-year bonus for bonus-payable employees.
func (e *Employee) AnnualBonus() (float64, bool) {
	c, ok := e.Compensation.(Salaried)
	if !ok {
		return 0, false
	}
	return c.AnnualSalary * BonusRate, true
}

// TrainingNotice returns the mandatory-training log line for employees that
// must attend training.
func (e *Employee) TrainingNotice() (string, bool) {
	if _, ok := e.Compensation.(Hourly); !ok {
		return "", false
	}
	return fmt.Sprintf("TRAINING LOGGED: %s has attended mandatory training.", e.FullName()), true
}

// SetHoursWorked replaces the hours recorded for the current period.
func (e *Employee) SetHoursWorked(hours int) error {
	c, ok := e.Compensation.(Hourly)
	if !ok {
		return fmt.Errorf("set hours for %s: %w", e.ID, ErrNotPartTime)
	}
	if hours < 0 {
		return fmt.Errorf("set hours for %s to %d: %w", e.ID, hours, ErrInvalidInput)
	}
	c.HoursWorked = hours
	e.Compensation = c
	return nil
}

func (e *Employee) AnnualSalary() (float64, bool) {
	c, ok := e.Compensation.(Salaried)
	return c.AnnualSalary, ok
}

func (e *Employee) HourlyRate() (float64, bool) {
	c, ok := e.Compensation.(Hourly)
	return c.HourlyRate, ok
}

func (e *Employee) HoursWorked() (int, bool) {
	c, ok := e.Compensation.(Hourly)
	return c.HoursWorked, ok
}

// HasID reports whether id names this employee, ignoring case.
func (e *Employee) HasID(id string) bool {
	return strings.EqualFold(e.ID, id)
}

// Snapshot returns a detached copy of e, department included, for callers
// outside the company.
func (e *Employee) Snapshot() Employee {
	c := *e
	if e.Department != nil {
		d := *e.Department
		c.Department = &d
	}
	return c
}
