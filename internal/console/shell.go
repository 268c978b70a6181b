// Package console implements the interactive, line-oriented shell over the
// company service.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
	"github.com/hrledger/payroll-system/internal/core/report"
)

// errExit is returned by the exit menu entry.
var errExit = errors.New("exit requested")

// Shell reads whole lines from in and writes menus, prompts and reports to
// out. It drives the service from a single goroutine.
type Shell struct {
	svc    ports.CompanyService
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func NewShell(svc ports.CompanyService, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits, the input ends, or ctx is
// cancelled. Failed actions are reported and the menu is shown again.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Welcome to the HR Payroll Management System v3.0.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		err = s.dispatch(ctx, strings.TrimSpace(choice))
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logger.Warn().Err(err).Str("choice", choice).Msg("menu action failed")
			s.printf("ERROR: %v\n", err)
		}
	}

	s.println("Thank you for using the system. Goodbye.")
	return nil
}

func (s *Shell) printMenu() {
	s.println("\n--- MAIN MENU ---")
	s.println("1. Hire Full-Time Employee")
	s.println("2. Hire Part-Time Employee")
	s.println("3. Search for Employee (by ID)")
	s.println("4. Run Weekly Payroll Report (Updates hours first)")
	s.println("5. Run End-of-Year Reports (Bonus/Training)")
	s.println("6. View All Employees List")
	s.println("7. Run Department Payroll Report (Updates hours first)")
	s.println("8. Add Department")
	s.println("9. Exit")
}

func (s *Shell) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return s.hire(ctx, domain.TypeFullTime)
	case "2":
		return s.hire(ctx, domain.TypePartTime)
	case "3":
		return s.search(ctx)
	case "4":
		return s.runPayroll(ctx)
	case "5":
		return s.runEndOfYear(ctx)
	case "6":
		return s.listEmployees(ctx)
	case "7":
		return s.runDepartmentPayroll(ctx)
	case "8":
		return s.addDepartment(ctx)
	case "9":
		return errExit
	default:
		s.println("Invalid choice. Please select 1-9.")
		return nil
	}
}

func (s *Shell) hire(ctx context.Context, t domain.EmployeeType) error {
	depts, err := s.svc.ListDepartments(ctx)
	if err != nil {
		return err
	}
	if len(depts) == 0 {
		s.println("ERROR: No departments exist. Please create a department first.")
		return nil
	}

	title, rateLabel := "--- Hire Full-Time ---", "Enter Annual Salary: "
	if t == domain.TypePartTime {
		title, rateLabel = "--- Hire Part-Time ---", "Enter Hourly Rate: "
	}
	s.println(title)

	dept, err := s.chooseDepartment(depts)
	if err != nil {
		return err
	}
	first, err := s.promptText("Enter First Name: ")
	if err != nil {
		return err
	}
	last, err := s.promptText("Enter Last Name: ")
	if err != nil {
		return err
	}
	rate, err := s.promptFloat(rateLabel)
	if err != nil {
		return err
	}

	res, err := s.svc.Hire(ctx, ports.HireInput{
		Type:         t,
		FirstName:    first,
		LastName:     last,
		DepartmentID: dept.ID,
		Rate:         rate,
	})
	if err != nil {
		return err
	}

	s.println(res.Message)
	s.println()
	s.print(report.EmployeeDetails(res.Employee))
	return nil
}

func (s *Shell) search(ctx context.Context) error {
	s.println("--- Search Employee ---")
	id, err := s.readLine("Enter Employee ID to search (e.g., F101): ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}

	e, err := s.svc.FindEmployee(ctx, id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		s.printf("ERROR: No employee found with ID '%s'\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	s.println("--- Employee Found ---")
	s.print(report.EmployeeDetails(e))
	return nil
}

func (s *Shell) runPayroll(ctx context.Context) error {
	ok, err := s.updateHours(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.println("Company payroll run cancelled during hour update.")
		return nil
	}

	r, err := s.svc.PayrollReport(ctx)
	if err != nil {
		return err
	}
	s.println()
	s.print(report.Payroll(r))
	return nil
}

func (s *Shell) runDepartmentPayroll(ctx context.Context) error {
	ok, err := s.updateHours(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.println("Department payroll run cancelled during hour update.")
		return nil
	}

	r, err := s.svc.DepartmentPayrollReport(ctx)
	if err != nil {
		return err
	}
	s.println()
	s.print(report.DepartmentPayroll(r))
	return nil
}

// updateHours collects hours for every part-timer. It reports false when the
// user cancelled part-way; hours entered before that stay recorded.
func (s *Shell) updateHours(ctx context.Context) (bool, error) {
	s.println("\n--- Updating Part-Time Hours for Payroll ---")

	res, err := s.svc.UpdatePartTimeHours(ctx, hoursPrompter{shell: s})
	if errors.Is(err, domain.ErrInputCancelled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if res.PartTimers == 0 {
		s.println("No part-time employees found to update.")
	}
	return true, nil
}

func (s *Shell) runEndOfYear(ctx context.Context) error {
	r, err := s.svc.EndOfYearReport(ctx)
	if err != nil {
		return err
	}
	s.println()
	s.print(report.EndOfYear(r))
	return nil
}

func (s *Shell) listEmployees(ctx context.Context) error {
	es, err := s.svc.ListEmployees(ctx)
	if err != nil {
		return err
	}
	s.println()
	s.print(report.EmployeeList(es))
	return nil
}

func (s *Shell) addDepartment(ctx context.Context) error {
	s.println("--- Add Department ---")
	id, err := s.promptText("Enter Department ID: ")
	if err != nil {
		return err
	}
	name, err := s.promptText("Enter Department Name: ")
	if err != nil {
		return err
	}

	d, err := s.svc.AddDepartment(ctx, ports.AddDepartmentInput{ID: id, Name: name})
	if err != nil {
		return err
	}
	s.printf("DEPARTMENT ADDED: %s (%s)\n", d.Name, d.ID)
	return nil
}

func (s *Shell) print(a ...any) {
	fmt.Fprint(s.out, a...)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
