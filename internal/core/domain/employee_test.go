package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestIDSequence_StrictlyIncreasing(t *testing.T) {
	seq := NewIDSequence(FirstEmployeeNumber)

	got := []string{seq.Next("F"), seq.Next("P"), seq.Next("F")}
	want := []string{"F101", "P102", "F103"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id[%d]: expected %s, got %s", i, want[i], got[i])
		}
	}
	if seq.Peek() != 104 {
		t.Errorf("expected next number 104, got %d", seq.Peek())
	}
}

func TestIDSequence_IndependentPerCompany(t *testing.T) {
	a := NewCompany()
	b := NewCompany()
	dept := NewDepartment("S1", "Sales")

	ea, _ := NewFullTimeEmployee(a.IDs(), "Ana", "Smith", 1, dept)
	eb, _ := NewFullTimeEmployee(b.IDs(), "Bob", "Lee", 1, dept)

	if ea.ID != "F101" || eb.ID != "F101" {
		t.Fatalf("expected both companies to start at F101, got %s and %s", ea.ID, eb.ID)
	}
}

func TestFullTimeEmployee_WeeklyPayAndBonus(t *testing.T) {
	seq := NewIDSequence(FirstEmployeeNumber)
	salaries := []float64{0, 1, 52, 80000, 95000.55, 1e9}

	for _, s := range salaries {
		e, err := NewFullTimeEmployee(seq, "Ana", "Smith", s, nil)
		if err != nil {
			t.Fatalf("salary %v: unexpected error: %v", s, err)
		}
		if got := e.WeeklyPay(); got != s/52.0 {
			t.Errorf("salary %v: weekly pay expected %v, got %v", s, s/52.0, got)
		}
		bonus, ok := e.AnnualBonus()
		if !ok {
			t.Fatalf("salary %v: full-time employee must be bonus-payable", s)
		}
		if bonus != s*0.05 {
			t.Errorf("salary %v: bonus expected %v, got %v", s, s*0.05, bonus)
		}
		if _, ok := e.TrainingNotice(); ok {
			t.Errorf("full-time employee must not require training")
		}
	}
}

func TestFullTimeEmployee_IgnoresHours(t *testing.T) {
	e, _ := NewFullTimeEmployee(NewIDSequence(1), "Ana", "Smith", 80000, nil)

	err := e.SetHoursWorked(40)
	if !errors.Is(err, ErrNotPartTime) {
		t.Fatalf("expected ErrNotPartTime, got %v", err)
	}
	if e.WeeklyPay() != 80000/52.0 {
		t.Errorf("weekly pay changed after hours update attempt")
	}
	if _, ok := e.HoursWorked(); ok {
		t.Errorf("full-time employee must not report hours")
	}
}

func TestPartTimeEmployee_WeeklyPay(t *testing.T) {
	e, err := NewPartTimeEmployee(NewIDSequence(FirstEmployeeNumber), "Bob", "Johnson", 22.50, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(e.ID, "P") {
		t.Errorf("expected P prefix, got %s", e.ID)
	}
	if e.WeeklyPay() != 0 {
		t.Errorf("expected 0 pay before any hours, got %v", e.WeeklyPay())
	}

	if err := e.SetHoursWorked(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.WeeklyPay() != 225.0 {
		t.Errorf("expected 225.00, got %v", e.WeeklyPay())
	}

	// Hours replace, they do not accumulate.
	if err := e.SetHoursWorked(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.WeeklyPay() != 90.0 {
		t.Errorf("expected 90.00 after replacing hours, got %v", e.WeeklyPay())
	}
}

func TestPartTimeEmployee_NegativeHoursRejected(t *testing.T) {
	e, _ := NewPartTimeEmployee(NewIDSequence(FirstEmployeeNumber), "Bob", "Johnson", 22.50, nil)
	_ = e.SetHoursWorked(12)

	err := e.SetHoursWorked(-1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if hours, _ := e.HoursWorked(); hours != 12 {
		t.Errorf("expected hours to stay 12, got %d", hours)
	}
}

func TestPartTimeEmployee_Capabilities(t *testing.T) {
	e, _ := NewPartTimeEmployee(NewIDSequence(FirstEmployeeNumber), "Eve", "Brown", 25, nil)

	if _, ok := e.AnnualBonus(); ok {
		t.Errorf("part-time employee must not be bonus-payable")
	}
	notice, ok := e.TrainingNotice()
	if !ok {
		t.Fatal("part-time employee must require training")
	}
	if notice != "TRAINING LOGGED: Eve Brown has attended mandatory training." {
		t.Errorf("unexpected notice: %q", notice)
	}
}

func TestNewEmployee_NegativeRateDoesNotConsumeID(t *testing.T) {
	seq := NewIDSequence(FirstEmployeeNumber)

	if _, err := NewFullTimeEmployee(seq, "A", "B", -1, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative salary, got %v", err)
	}
	if _, err := NewPartTimeEmployee(seq, "A", "B", -0.01, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative rate, got %v", err)
	}
	if seq.Peek() != FirstEmployeeNumber {
		t.Errorf("expected counter untouched, got %d", seq.Peek())
	}
}

func TestEmployee_TypeTags(t *testing.T) {
	seq := NewIDSequence(FirstEmployeeNumber)
	ft, _ := NewFullTimeEmployee(seq, "A", "B", 1, nil)
	pt, _ := NewPartTimeEmployee(seq, "C", "D", 1, nil)

	if ft.Type() != TypeFullTime {
		t.Errorf("expected %s, got %s", TypeFullTime, ft.Type())
	}
	if pt.Type() != TypePartTime {
		t.Errorf("expected %s, got %s", TypePartTime, pt.Type())
	}
}

func TestDepartment_EqualByID(t *testing.T) {
	a := NewDepartment("E1", "Engineering")
	b := NewDepartment("E1", "Eng (renamed)")
	c := NewDepartment("S1", "Engineering")

	if !a.Equal(b) {
		t.Error("departments with the same id must be equal")
	}
	if a.Equal(c) {
		t.Error("departments with different ids must not be equal")
	}
	if a.Equal(nil) {
		t.Error("department must not equal nil")
	}
	if a.String() != "Engineering" {
		t.Errorf("expected name from String(), got %q", a.String())
	}
}
