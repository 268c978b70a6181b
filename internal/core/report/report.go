// Package report renders payroll reports and employee records as the plain
// text blocks shown by the console and by text-format API responses.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

const (
	cardRule    = "------------------------------\n"
	payrollRule = "---------------------------------------------------------------------\n"
	grandRule   = "=============================================\n"
)

// printer groups thousands the way the reports have always shown money,
// e.g. 1538.4615 becomes "1,538.46".
var printer = message.NewPrinter(language.English)

// Money formats v as dollars with thousands grouping and two decimals.
func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// MoneyDecimal formats an exact total.
func MoneyDecimal(d decimal.Decimal) string {
	return Money(d.Round(2).InexactFloat64())
}

// Payroll renders the company-wide weekly payroll.
func Payroll(r domain.PayrollReport) string {
	var b strings.Builder
	b.WriteString("--- WEEKLY COMPANY-WIDE PAYROLL REPORT ---\n\n")
	for _, l := range r.Lines {
		b.WriteString(printer.Sprintf("PAYING: %-20s (%s, %-12s) --- %s\n", l.FullName, l.EmployeeID, l.DepartmentName, Money(l.WeeklyPay)))
	}
	b.WriteString("\n")
	b.WriteString(payrollRule)
	b.WriteString("TOTAL COMPANY PAYROLL: " + MoneyDecimal(r.Total) + "\n")
	return b.String()
}

// DepartmentPayroll renders one block per registered department followed by
// the grand total. Empty departments get a notice instead of a subtotal.
func DepartmentPayroll(r domain.DepartmentPayrollReport) string {
	var b strings.Builder
	b.WriteString("--- WEEKLY PAYROLL REPORT BY DEPARTMENT ---\n")
	for _, s := range r.Sections {
		b.WriteString("\n=== DEPARTMENT: " + strings.ToUpper(s.Department.Name) + " ===\n")
		if s.Empty() {
			b.WriteString("  No employees processed for this department.\n")
			continue
		}
		for _, l := range s.Lines {
			b.WriteString(printer.Sprintf("  PAYING: %-20s (%s) --- %s\n", l.FullName, l.EmployeeID, Money(l.WeeklyPay)))
		}
		b.WriteString("  --- DEPARTMENT SUBTOTAL: " + MoneyDecimal(s.Subtotal) + " ---\n")
	}
	b.WriteString("\n")
	b.WriteString(grandRule)
	b.WriteString("GRAND TOTAL (ALL DEPTS): " + MoneyDecimal(r.GrandTotal) + "\n")
	return b.String()
}

// EndOfYear renders bonus payments and training records in hire order.
func EndOfYear(r domain.EndOfYearReport) string {
	var b strings.Builder
	b.WriteString("--- END-OF-YEAR BONUS & TRAINING REPORT ---\n\n")
	for _, e := range r.Entries {
		switch e.Kind {
		case domain.EntryBonus:
			b.WriteString(printer.Sprintf("BONUS: %s (%s, %s) earned %s\n", e.FullName, e.EmployeeID, e.DepartmentName, Money(e.Bonus)))
		case domain.EntryTraining:
			b.WriteString(e.Notice + "\n")
		}
	}
	return b.String()
}

// EmployeeDetails renders the record card of a single employee.
func EmployeeDetails(e domain.Employee) string {
	var b strings.Builder
	b.WriteString(cardRule)
	b.WriteString(" ID:         " + e.ID + "\n")
	b.WriteString(" Name:       " + e.FullName() + "\n")
	b.WriteString(" Type:       " + string(e.Type()) + "\n")
	if e.Department != nil {
		b.WriteString(" Department: " + e.Department.Name + " (ID: " + e.Department.ID + ")\n")
	}

	switch c := e.Compensation.(type) {
	case domain.Salaried:
		bonus, _ := e.AnnualBonus()
		b.WriteString(" Annual Salary: " + Money(c.AnnualSalary) + "\n")
		b.WriteString(" Weekly Pay:    " + Money(e.WeeklyPay()) + "\n")
		b.WriteString(" Annual Bonus:  " + Money(bonus) + "\n")
	case domain.Hourly:
		b.WriteString(" Hourly Rate:   " + Money(c.HourlyRate) + "\n")
		if c.HoursWorked > 0 {
			b.WriteString(printer.Sprintf(" Last Pay Calc: %s (%d hours)\n", Money(e.WeeklyPay()), c.HoursWorked))
		}
	}
	b.WriteString(cardRule)
	return b.String()
}

// EmployeeList renders every employee's card in hire order.
func EmployeeList(es []domain.Employee) string {
	if len(es) == 0 {
		return "No employees have been hired yet.\n"
	}
	var b strings.Builder
	b.WriteString("--- ALL EMPLOYEES IN COMPANY ---\n\n")
	for _, e := range es {
		b.WriteString(EmployeeDetails(e))
		b.WriteString("\n")
	}
	b.WriteString("--- END OF LIST ---\n")
	return b.String()
}
