package domain

import "errors"

var (
	// ErrInvalidInput covers non-numeric, negative, or blank values where a
	// usable value is required.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrNoDepartments is returned when hiring is attempted before any
	// department has been registered.
	ErrNoDepartments = errors.New("no departments exist, create a department first")

	// ErrNotPartTime is returned when hours are set on a salaried employee.
	ErrNotPartTime = errors.New("employee is not part-time")

	// ErrInputCancelled aborts a batch operation driven by an input source.
	ErrInputCancelled = errors.New("input cancelled")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
