package domain

import "github.com/shopspring/decimal"

// PayrollLine is one employee's weekly pay.
type PayrollLine struct {
	EmployeeID     string
	FullName       string
	Type           EmployeeType
	DepartmentName string
	WeeklyPay      float64
}

// PayrollReport is the company-wide weekly payroll.
type PayrollReport struct {
	Lines []PayrollLine
	Total decimal.Decimal
}

// DepartmentSection groups the payroll lines of one registered department.
type DepartmentSection struct {
	Department Department
	Lines      []PayrollLine
	Subtotal   decimal.Decimal
}

// Empty reports whether no employee was paid under this department.
func (s DepartmentSection) Empty() bool {
	return len(s.Lines) == 0
}

// DepartmentPayrollReport is the weekly payroll grouped by department.
type DepartmentPayrollReport struct {
	Sections   []DepartmentSection
	GrandTotal decimal.Decimal
}

// EndOfYearEntryKind distinguishes bonus lines from training lines.
type EndOfYearEntryKind string

const (
	EntryBonus    EndOfYearEntryKind = "bonus"
	EntryTraining EndOfYearEntryKind = "training"
)

// EndOfYearEntry is one bonus payment or one training record.
type EndOfYearEntry struct {
	Kind           EndOfYearEntryKind
	EmployeeID     string
	FullName       string
	DepartmentName string
	Bonus          float64 // EntryBonus only
	Notice         string  // EntryTraining only
}

// EndOfYearReport lists bonus and training entries in hire order.
type EndOfYearReport struct {
	Entries []EndOfYearEntry
}

// cents is the amount a payroll line contributes to a total. Lines are
// rounded before they are summed so printed subtotals add up to the printed
// total.
func cents(pay float64) decimal.Decimal {
	return decimal.NewFromFloat(pay).Round(2)
}

func payrollLine(e *Employee) PayrollLine {
	return PayrollLine{
		EmployeeID:     e.ID,
		FullName:       e.FullName(),
		Type:           e.Type(),
		DepartmentName: e.DepartmentName(),
		WeeklyPay:      e.WeeklyPay(),
	}
}

// GeneratePayrollReport computes every employee's weekly pay in hire order.
func (c *Company) GeneratePayrollReport() PayrollReport {
	r := PayrollReport{Lines: make([]PayrollLine, 0, len(c.employees)), Total: decimal.Zero}
	for _, e := range c.employees {
		line := payrollLine(e)
		r.Lines = append(r.Lines, line)
		r.Total = r.Total.Add(cents(line.WeeklyPay))
	}
	return r
}

// GenerateDepartmentPayrollReport walks registered departments in order and
// pays the employees that belong to each. Departments without employees are
// kept with a zero subtotal. Employees whose department is not registered
// appear in no section.
func (c *Company) GenerateDepartmentPayrollReport() DepartmentPayrollReport {
	r := DepartmentPayrollReport{Sections: make([]DepartmentSection, 0, len(c.departments)), GrandTotal: decimal.Zero}
	for _, d := range c.departments {
		section := DepartmentSection{Department: *d, Subtotal: decimal.Zero}
		for _, e := range c.employees {
			if !e.Department.Equal(d) {
				continue
			}
			line := payrollLine(e)
			section.Lines = append(section.Lines, line)
			section.Subtotal = section.Subtotal.Add(cents(line.WeeklyPay))
		}
		r.GrandTotal = r.GrandTotal.Add(section.Subtotal)
		r.Sections = append(r.Sections, section)
	}
	return r
}

// RunEndOfYearReport checks bonus eligibility and training independently for
// each employee.
func (c *Company) RunEndOfYearReport() EndOfYearReport {
	var r EndOfYearReport
	for _, e := range c.employees {
		if bonus, ok := e.AnnualBonus(); ok {
			r.Entries = append(r.Entries, EndOfYearEntry{
				Kind:           EntryBonus,
				EmployeeID:     e.ID,
				FullName:       e.FullName(),
				DepartmentName: e.DepartmentName(),
				Bonus:          bonus,
			})
		}
		if notice, ok := e.TrainingNotice(); ok {
			r.Entries = append(r.Entries, EndOfYearEntry{
				Kind:           EntryTraining,
				EmployeeID:     e.ID,
				FullName:       e.FullName(),
				DepartmentName: e.DepartmentName(),
				Notice:         notice,
			})
		}
	}
	return r
}
