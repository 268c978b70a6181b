package handler

import (
	"github.com/shopspring/decimal"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// Request type values accepted on hire.
const (
	hireTypeFullTime = "full_time"
	hireTypePartTime = "part_time"
)

func toEmployeeType(t string) domain.EmployeeType {
	switch t {
	case hireTypeFullTime:
		return domain.TypeFullTime
	case hireTypePartTime:
		return domain.TypePartTime
	default:
		return domain.EmployeeType(t)
	}
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func moneyPtr(v float64) *string {
	s := money(v)
	return &s
}

func toDepartmentResponse(d domain.Department) departmentResponse {
	return departmentResponse{ID: d.ID, Name: d.Name}
}

func toEmployeeResponse(e domain.Employee) employeeResponse {
	resp := employeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Type:      string(e.Type()),
		WeeklyPay: money(e.WeeklyPay()),
		Links:     employeeLinks{Self: "/v1/employees/" + e.ID},
	}
	if e.Department != nil {
		d := toDepartmentResponse(*e.Department)
		resp.Department = &d
	}
	if salary, ok := e.AnnualSalary(); ok {
		resp.AnnualSalary = moneyPtr(salary)
	}
	if bonus, ok := e.AnnualBonus(); ok {
		resp.AnnualBonus = moneyPtr(bonus)
	}
	if rate, ok := e.HourlyRate(); ok {
		resp.HourlyRate = moneyPtr(rate)
		resp.Links.Hours = "/v1/employees/" + e.ID + "/hours"
	}
	if hours, ok := e.HoursWorked(); ok {
		resp.HoursWorked = &hours
	}
	return resp
}

func toPayrollLines(lines []domain.PayrollLine) []payrollLineResponse {
	out := make([]payrollLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, payrollLineResponse{
			EmployeeID: l.EmployeeID,
			FullName:   l.FullName,
			Type:       string(l.Type),
			Department: l.DepartmentName,
			WeeklyPay:  money(l.WeeklyPay),
		})
	}
	return out
}

func toPayrollReportResponse(r domain.PayrollReport) payrollReportResponse {
	return payrollReportResponse{
		Lines: toPayrollLines(r.Lines),
		Total: r.Total.StringFixed(2),
	}
}

func toDepartmentPayrollResponse(r domain.DepartmentPayrollReport) departmentPayrollResponse {
	resp := departmentPayrollResponse{
		Sections:   make([]departmentSectionResponse, 0, len(r.Sections)),
		GrandTotal: r.GrandTotal.StringFixed(2),
	}
	for _, s := range r.Sections {
		resp.Sections = append(resp.Sections, departmentSectionResponse{
			Department: toDepartmentResponse(s.Department),
			Lines:      toPayrollLines(s.Lines),
			Subtotal:   s.Subtotal.StringFixed(2),
			Empty:      s.Empty(),
		})
	}
	return resp
}

func toEndOfYearResponse(r domain.EndOfYearReport) endOfYearResponse {
	resp := endOfYearResponse{Entries: make([]endOfYearEntryResponse, 0, len(r.Entries))}
	for _, e := range r.Entries {
		entry := endOfYearEntryResponse{
			Kind:       string(e.Kind),
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Department: e.DepartmentName,
		}
		switch e.Kind {
		case domain.EntryBonus:
			entry.Bonus = moneyPtr(e.Bonus)
		case domain.EntryTraining:
			entry.Notice = e.Notice
		}
		resp.Entries = append(resp.Entries, entry)
	}
	return resp
}
