package console

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// readLine prints prompt and returns the next input line without its line
// ending. A final line with no newline is still returned; io.EOF follows once
// the input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	s.print(prompt)
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptText re-prompts until a non-blank line is entered.
func (s *Shell) promptText(prompt string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		s.println("Input cannot be blank.")
	}
}

func (s *Shell) promptFloat(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			s.println("INVALID INPUT: Please enter a valid number (e.g., 50000.0 or 22.50).")
			continue
		}
		if v < 0 {
			s.println("Input cannot be negative.")
			continue
		}
		return v, nil
	}
}

func (s *Shell) promptInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println("INVALID INPUT: Please enter a valid whole number (e.g., 1 or 40).")
			continue
		}
		if v < 0 {
			s.println("Input cannot be negative.")
			continue
		}
		return v, nil
	}
}

// chooseDepartment lists depts by number and re-prompts until one of them
// is picked.
func (s *Shell) chooseDepartment(depts []domain.Department) (domain.Department, error) {
	s.println("Available departments:")
	for i, d := range depts {
		s.printf("  %d. %s (%s)\n", i+1, d.Name, d.ID)
	}
	for {
		n, err := s.promptInt("Select department number: ")
		if err != nil {
			return domain.Department{}, err
		}
		if n >= 1 && n <= len(depts) {
			return depts[n-1], nil
		}
		s.printf("Please choose a number between 1 and %d.\n", len(depts))
	}
}

// hoursPrompter asks the user for each part-timer's hours. Entering "c" or
// reaching the end of input cancels the whole batch.
type hoursPrompter struct {
	shell *Shell
}

func (p hoursPrompter) HoursFor(ctx context.Context, e domain.Employee) (int, error) {
	s := p.shell
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := s.readLine("Enter hours worked for " + e.FullName() + " (or 'c' to cancel): ")
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrInputCancelled
		}
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "c") {
			return 0, domain.ErrInputCancelled
		}
		hours, err := strconv.Atoi(line)
		if err != nil {
			s.println("Invalid number. Please try again.")
			continue
		}
		if hours < 0 {
			s.println("Hours cannot be negative.")
			continue
		}
		return hours, nil
	}
}
