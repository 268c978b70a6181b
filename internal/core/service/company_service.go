package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
)

// CompanyService runs the HR use cases against a single in-memory company.
// Like the company itself it expects one caller at a time; concurrent shells
// put a queue.Serializer in front of it.
type CompanyService struct {
	company *domain.Company
	idem    ports.IdempotencyStore
	logger  zerolog.Logger
}

// NewCompanyService wraps company. idem may be nil, in which case idempotency
// keys are ignored.
func NewCompanyService(company *domain.Company, idem ports.IdempotencyStore, logger zerolog.Logger) *CompanyService {
	return &CompanyService{company: company, idem: idem, logger: logger}
}

func (s *CompanyService) AddDepartment(_ context.Context, in ports.AddDepartmentInput) (domain.Department, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return domain.Department{}, fmt.Errorf("add department: id and name are required: %w", domain.ErrInvalidInput)
	}

	d := domain.NewDepartment(id, name)
	s.company.AddDepartment(d)
	s.logger.Info().Str("department_id", id).Str("name", name).Msg("department added")
	return *d, nil
}

func (s *CompanyService) ListDepartments(_ context.Context) ([]domain.Department, error) {
	depts := s.company.AvailableDepartments()
	out := make([]domain.Department, 0, len(depts))
	for _, d := range depts {
		out = append(out, *d)
	}
	return out, nil
}

// Hire validates the input and adds a new employee to the company. Hiring
// needs at least one registered department and the chosen department must be
// one of them. When an idempotency key has already hired this same request,
// that employee is returned and nothing is hired. Reusing a key for a
// different request fails with ErrInvalidInput.
func (s *CompanyService) Hire(ctx context.Context, in ports.HireInput) (*ports.HireResult, error) {
	if len(s.company.AvailableDepartments()) == 0 {
		return nil, fmt.Errorf("hire: %w", domain.ErrNoDepartments)
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	fp := fingerprint(in.Type, first, last, in.DepartmentID, in.Rate)

	prior, err := s.replay(ctx, in.IdempotencyKey, fp)
	if err != nil {
		return nil, err
	}
	if prior.result != nil {
		return prior.result, nil
	}

	if first == "" || last == "" {
		return nil, fmt.Errorf("hire: first and last name are required: %w", domain.ErrInvalidInput)
	}

	dept, ok := s.company.DepartmentByID(in.DepartmentID)
	if !ok {
		return nil, fmt.Errorf("hire into %q: %w", in.DepartmentID, domain.ErrDepartmentNotFound)
	}

	var e *domain.Employee
	switch in.Type {
	case domain.TypeFullTime:
		e, err = domain.NewFullTimeEmployee(s.company.IDs(), first, last, in.Rate, dept)
	case domain.TypePartTime:
		e, err = domain.NewPartTimeEmployee(s.company.IDs(), first, last, in.Rate, dept)
	default:
		err = fmt.Errorf("employee type %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("hire: %w", err)
	}

	msg := s.company.HireEmployee(e)
	s.record(ctx, in.IdempotencyKey, ports.HireRecord{EmployeeID: e.ID, Fingerprint: fp}, prior.stale)

	s.logger.Info().
		Str("employee_id", e.ID).
		Str("type", string(e.Type())).
		Str("department_id", dept.ID).
		Msg("employee hired")

	return &ports.HireResult{Message: msg, Employee: e.Snapshot()}, nil
}

// priorHire is what an idempotency lookup found. result is set for a genuine
// replay. stale means the key exists but no longer names this hire, so the
// new hire must overwrite it.
type priorHire struct {
	result *ports.HireResult
	stale  bool
}

func (s *CompanyService) replay(ctx context.Context, key, fp string) (priorHire, error) {
	if key == "" || s.idem == nil {
		return priorHire{}, nil
	}
	rec, found, err := s.idem.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, hiring anyway")
		return priorHire{stale: true}, nil
	}
	if !found {
		return priorHire{}, nil
	}
	if rec.Fingerprint != fp {
		return priorHire{}, fmt.Errorf("hire: idempotency key %q was used for a different request: %w", key, domain.ErrInvalidInput)
	}

	e, ok := s.company.FindEmployeeByID(rec.EmployeeID)
	if !ok || employeeFingerprint(e) != fp {
		s.logger.Info().Str("idempotency_key", key).Str("employee_id", rec.EmployeeID).Msg("idempotency key is stale, hiring again")
		return priorHire{stale: true}, nil
	}

	s.logger.Info().Str("idempotency_key", key).Str("employee_id", e.ID).Msg("idempotent replay")
	return priorHire{result: &ports.HireResult{
		Message:        domain.HireConfirmation(e),
		Employee:       e.Snapshot(),
		AlreadyExisted: true,
	}}, nil
}

func (s *CompanyService) record(ctx context.Context, key string, rec ports.HireRecord, overwrite bool) {
	if key == "" || s.idem == nil {
		return
	}
	save := s.idem.Remember
	if overwrite {
		save = s.idem.Replace
	}
	if err := save(ctx, key, rec); err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
	}
}

// fingerprint identifies a hire request by everything that shapes the
// resulting employee.
func fingerprint(t domain.EmployeeType, first, last, deptID string, rate float64) string {
	h := sha256.New()
	for _, part := range []string{string(t), first, last, deptID, strconv.FormatFloat(rate, 'g', -1, 64)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func employeeFingerprint(e *domain.Employee) string {
	rate, ok := e.AnnualSalary()
	if !ok {
		rate, _ = e.HourlyRate()
	}
	var deptID string
	if e.Department != nil {
		deptID = e.Department.ID
	}
	return fingerprint(e.Type(), e.FirstName, e.LastName, deptID, rate)
}

func (s *CompanyService) FindEmployee(_ context.Context, id string) (domain.Employee, error) {
	e, ok := s.company.FindEmployeeByID(strings.TrimSpace(id))
	if !ok {
		return domain.Employee{}, fmt.Errorf("find %q: %w", id, domain.ErrEmployeeNotFound)
	}
	return e.Snapshot(), nil
}

func (s *CompanyService) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	all := s.company.Employees()
	out := make([]domain.Employee, 0, len(all))
	for _, e := range all {
		out = append(out, e.Snapshot())
	}
	return out, nil
}

// SetHours records the hours of a single part-time employee.
func (s *CompanyService) SetHours(_ context.Context, employeeID string, hours int) (domain.Employee, error) {
	e, ok := s.company.FindEmployeeByID(strings.TrimSpace(employeeID))
	if !ok {
		return domain.Employee{}, fmt.Errorf("set hours for %q: %w", employeeID, domain.ErrEmployeeNotFound)
	}
	if err := e.SetHoursWorked(hours); err != nil {
		return domain.Employee{}, err
	}
	s.logger.Info().Str("employee_id", e.ID).Int("hours", hours).Msg("hours recorded")
	return e.Snapshot(), nil
}

// UpdatePartTimeHours asks src for every part-timer's hours. A cancelled
// source aborts the run; updates applied before the cancellation remain.
func (s *CompanyService) UpdatePartTimeHours(ctx context.Context, src domain.HoursSource) (ports.HoursUpdateResult, error) {
	res := ports.HoursUpdateResult{PartTimers: s.company.PartTimeCount()}

	n, err := s.company.UpdateHoursForAllPartTime(ctx, src)
	res.Updated = n
	if err != nil {
		s.logger.Warn().Err(err).Int("updated", n).Int("part_timers", res.PartTimers).Msg("hour update aborted")
		return res, fmt.Errorf("update part-time hours: %w", err)
	}

	s.logger.Info().Int("updated", n).Msg("part-time hours updated")
	return res, nil
}

func (s *CompanyService) PayrollReport(_ context.Context) (domain.PayrollReport, error) {
	r := s.company.GeneratePayrollReport()
	s.logger.Debug().Int("lines", len(r.Lines)).Str("total", r.Total.StringFixed(2)).Msg("payroll report generated")
	return r, nil
}

func (s *CompanyService) DepartmentPayrollReport(_ context.Context) (domain.DepartmentPayrollReport, error) {
	r := s.company.GenerateDepartmentPayrollReport()
	s.logger.Debug().Int("sections", len(r.Sections)).Str("total", r.GrandTotal.StringFixed(2)).Msg("department payroll report generated")
	return r, nil
}

func (s *CompanyService) EndOfYearReport(_ context.Context) (domain.EndOfYearReport, error) {
	r := s.company.RunEndOfYearReport()
	s.logger.Debug().Int("entries", len(r.Entries)).Msg("end-of-year report generated")
	return r, nil
}
