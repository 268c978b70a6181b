package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type fixture struct {
	company     *Company
	sales       *Department
	engineering *Department
	marketing   *Department
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		company:     NewCompany(),
		sales:       NewDepartment("S1", "Sales"),
		engineering: NewDepartment("E1", "Engineering"),
		marketing:   NewDepartment("M1", "Marketing"),
	}
	f.company.AddDepartment(f.sales)
	f.company.AddDepartment(f.engineering)
	f.company.AddDepartment(f.marketing)
	return f
}

func (f fixture) hireFullTime(t *testing.T, first, last string, salary float64, d *Department) *Employee {
	t.Helper()
	e, err := NewFullTimeEmployee(f.company.IDs(), first, last, salary, d)
	if err != nil {
		t.Fatalf("new full-time: %v", err)
	}
	f.company.HireEmployee(e)
	return e
}

func (f fixture) hirePartTime(t *testing.T, first, last string, rate float64, d *Department) *Employee {
	t.Helper()
	e, err := NewPartTimeEmployee(f.company.IDs(), first, last, rate, d)
	if err != nil {
		t.Fatalf("new part-time: %v", err)
	}
	f.company.HireEmployee(e)
	return e
}

func fixedHours(h int) HoursSource {
	return HoursSourceFunc(func(context.Context, Employee) (int, error) { return h, nil })
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func TestCompany_HireEmployee_Message(t *testing.T) {
	f := newFixture(t)
	e, _ := NewFullTimeEmployee(f.company.IDs(), "Ana", "Smith", 80000, f.sales)

	msg := f.company.HireEmployee(e)

	if msg != "HIRE SUCCESS: Ana Smith (F101) has been hired into Sales." {
		t.Errorf("unexpected message: %q", msg)
	}
	if len(f.company.Employees()) != 1 {
		t.Errorf("expected 1 employee, got %d", len(f.company.Employees()))
	}
}

func TestCompany_IDsIncreaseAcrossHires(t *testing.T) {
	f := newFixture(t)
	var prev int
	for i := 0; i < 10; i++ {
		var e *Employee
		if i%2 == 0 {
			e = f.hireFullTime(t, "A", "B", 1000, f.sales)
		} else {
			e = f.hirePartTime(t, "C", "D", 10, f.sales)
		}
		var n int
		for _, r := range e.ID[1:] {
			n = n*10 + int(r-'0')
		}
		if i > 0 && n <= prev {
			t.Fatalf("id %s not greater than previous %d", e.ID, prev)
		}
		prev = n
	}
}

func TestCompany_FindEmployeeByID_CaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ana := f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)

	got, ok := f.company.FindEmployeeByID("f101")
	if !ok {
		t.Fatal("expected f101 to match F101")
	}
	if got != ana {
		t.Errorf("expected the hired record, got %+v", got)
	}

	if _, ok := f.company.FindEmployeeByID("F999"); ok {
		t.Error("expected no match for F999")
	}
}

func TestCompany_FindEmployeeByID_FirstMatchWins(t *testing.T) {
	c := NewCompany()
	d := NewDepartment("S1", "Sales")
	c.AddDepartment(d)
	first := &Employee{ID: "X1", FirstName: "First", Compensation: Salaried{}, Department: d}
	second := &Employee{ID: "x1", FirstName: "Second", Compensation: Salaried{}, Department: d}
	c.HireEmployee(first)
	c.HireEmployee(second)

	got, _ := c.FindEmployeeByID("X1")
	if got != first {
		t.Errorf("expected first hire to win, got %s", got.FirstName)
	}
}

func TestCompany_AvailableDepartments(t *testing.T) {
	c := NewCompany()
	if len(c.AvailableDepartments()) != 0 {
		t.Fatal("expected no departments on a new company")
	}

	c.AddDepartment(NewDepartment("S1", "Sales"))
	c.AddDepartment(NewDepartment("S1", "Sales again"))

	depts := c.AvailableDepartments()
	if len(depts) != 2 {
		t.Fatalf("duplicate ids are not rejected, expected 2, got %d", len(depts))
	}
	if depts[0].Name != "Sales" || depts[1].Name != "Sales again" {
		t.Errorf("expected insertion order, got %v", depts)
	}

	if d, ok := c.DepartmentByID("S1"); !ok || d.Name != "Sales" {
		t.Errorf("expected DepartmentByID to return the first registration, got %+v", d)
	}
}

// ---------------------------------------------------------------------------
// Hour updates
// ---------------------------------------------------------------------------

func TestCompany_UpdateHoursForAllPartTime(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)
	bob := f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)
	eve := f.hirePartTime(t, "Eve", "Brown", 25, f.marketing)

	var asked []string
	src := HoursSourceFunc(func(_ context.Context, e Employee) (int, error) {
		asked = append(asked, e.ID)
		return 10, nil
	})

	n, err := f.company.UpdateHoursForAllPartTime(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 updates, got %d", n)
	}
	if len(asked) != 2 || asked[0] != bob.ID || asked[1] != eve.ID {
		t.Errorf("expected part-timers in hire order, got %v", asked)
	}
	if bob.WeeklyPay() != 225 || eve.WeeklyPay() != 250 {
		t.Errorf("unexpected pay: bob=%v eve=%v", bob.WeeklyPay(), eve.WeeklyPay())
	}
}

func TestCompany_UpdateHours_CancelKeepsAppliedUpdates(t *testing.T) {
	f := newFixture(t)
	bob := f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)
	eve := f.hirePartTime(t, "Eve", "Brown", 25, f.marketing)
	_ = eve.SetHoursWorked(3)

	calls := 0
	src := HoursSourceFunc(func(context.Context, Employee) (int, error) {
		calls++
		if calls == 2 {
			return 0, ErrInputCancelled
		}
		return 8, nil
	})

	n, err := f.company.UpdateHoursForAllPartTime(context.Background(), src)
	if !errors.Is(err, ErrInputCancelled) {
		t.Fatalf("expected ErrInputCancelled, got %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 applied update, got %d", n)
	}
	if h, _ := bob.HoursWorked(); h != 8 {
		t.Errorf("expected bob's update to remain applied, got %d", h)
	}
	if h, _ := eve.HoursWorked(); h != 3 {
		t.Errorf("expected eve untouched, got %d", h)
	}
}

func TestCompany_UpdateHours_NegativeFromSourceAborts(t *testing.T) {
	f := newFixture(t)
	bob := f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)
	_ = bob.SetHoursWorked(5)

	_, err := f.company.UpdateHoursForAllPartTime(context.Background(), fixedHours(-2))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if h, _ := bob.HoursWorked(); h != 5 {
		t.Errorf("expected hours unchanged, got %d", h)
	}
}

func TestCompany_UpdateHours_NoPartTimers(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)

	n, err := f.company.UpdateHoursForAllPartTime(context.Background(), fixedHours(1))
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
	if f.company.PartTimeCount() != 0 {
		t.Errorf("expected no part-timers")
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

func TestCompany_PayrollReport(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)
	bob := f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)
	_ = bob.SetHoursWorked(10)

	r := f.company.GeneratePayrollReport()

	if len(r.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(r.Lines))
	}
	if r.Lines[0].FullName != "Ana Smith" || r.Lines[0].WeeklyPay != 80000/52.0 {
		t.Errorf("unexpected first line: %+v", r.Lines[0])
	}
	if r.Lines[1].WeeklyPay != 225 || r.Lines[1].DepartmentName != "Engineering" {
		t.Errorf("unexpected second line: %+v", r.Lines[1])
	}
	want := decimal.NewFromFloat(80000 / 52.0).Add(decimal.NewFromInt(225))
	if !r.Total.Equal(want) {
		t.Errorf("expected total %s, got %s", want, r.Total)
	}
}

func TestCompany_DepartmentReport_GroupsAndIncludesEmpty(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)
	bob := f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)
	_ = bob.SetHoursWorked(10)

	r := f.company.GenerateDepartmentPayrollReport()

	if len(r.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(r.Sections))
	}
	eng := r.Sections[1]
	if eng.Department.ID != "E1" || len(eng.Lines) != 1 || eng.Lines[0].FullName != "Bob Johnson" {
		t.Errorf("expected Bob alone under Engineering, got %+v", eng)
	}
	if !eng.Subtotal.Equal(decimal.NewFromInt(225)) {
		t.Errorf("expected engineering subtotal 225, got %s", eng.Subtotal)
	}
	for _, l := range r.Sections[0].Lines {
		if l.FullName == "Bob Johnson" {
			t.Error("Bob must not appear under Sales")
		}
	}
	mkt := r.Sections[2]
	if !mkt.Empty() || !mkt.Subtotal.IsZero() {
		t.Errorf("expected empty marketing section with zero subtotal, got %+v", mkt)
	}
}

func TestCompany_DepartmentSubtotalsSumToCompanyTotal(t *testing.T) {
	f := newFixture(t)
	depts := []*Department{f.sales, f.engineering, f.marketing}
	salaries := []float64{80000, 95000, 78000, 61234.57, 43210.99, 120000.01, 33333.33}
	for i, s := range salaries {
		f.hireFullTime(t, "FT", "Worker", s, depts[i%len(depts)])
	}
	rates := []float64{22.50, 25, 17.35, 19.99}
	for i, r := range rates {
		f.hirePartTime(t, "PT", "Worker", r, depts[(i+1)%len(depts)])
	}
	_, _ = f.company.UpdateHoursForAllPartTime(context.Background(), HoursSourceFunc(
		func(_ context.Context, e Employee) (int, error) { return len(e.ID) * 7, nil },
	))

	company := f.company.GeneratePayrollReport()
	byDept := f.company.GenerateDepartmentPayrollReport()

	sum := decimal.Zero
	for _, s := range byDept.Sections {
		if !s.Subtotal.Equal(s.Subtotal.Round(2)) {
			t.Errorf("subtotal %s of %s is not in whole cents", s.Subtotal, s.Department.Name)
		}
		sum = sum.Add(s.Subtotal)
	}
	if !sum.Equal(byDept.GrandTotal) {
		t.Errorf("subtotals %s do not sum to grand total %s", sum, byDept.GrandTotal)
	}
	if !byDept.GrandTotal.Equal(company.Total) {
		t.Errorf("department grand total %s differs from company total %s", byDept.GrandTotal, company.Total)
	}
}

func TestCompany_DepartmentReport_UntrackedDepartmentExcluded(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)
	ghost := NewDepartment("X9", "Skunkworks")
	f.hireFullTime(t, "Zed", "Ghost", 52000, ghost)

	byDept := f.company.GenerateDepartmentPayrollReport()
	for _, s := range byDept.Sections {
		for _, l := range s.Lines {
			if l.FullName == "Zed Ghost" {
				t.Fatalf("employee in an unregistered department appeared under %s", s.Department.Name)
			}
		}
	}

	company := f.company.GeneratePayrollReport()
	if len(company.Lines) != 2 {
		t.Errorf("expected the company report to still include both employees")
	}
}

func TestCompany_EndOfYearReport(t *testing.T) {
	f := newFixture(t)
	f.hireFullTime(t, "Ana", "Smith", 80000, f.sales)
	f.hirePartTime(t, "Bob", "Johnson", 22.50, f.engineering)

	r := f.company.RunEndOfYearReport()

	if len(r.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(r.Entries))
	}
	if r.Entries[0].Kind != EntryBonus || r.Entries[0].Bonus != 4000 {
		t.Errorf("unexpected bonus entry: %+v", r.Entries[0])
	}
	if r.Entries[1].Kind != EntryTraining || r.Entries[1].EmployeeID != "P102" {
		t.Errorf("unexpected training entry: %+v", r.Entries[1])
	}
}
