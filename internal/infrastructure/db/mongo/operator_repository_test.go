package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

func TestConnect_RequiresURIAndDatabase(t *testing.T) {
	for _, cfg := range []Config{{}, {URI: "mongodb://localhost:27017"}, {Database: "payroll"}} {
		if _, _, err := Connect(context.Background(), cfg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestOperatorRepository_SaveRejectsInvalidOperators(t *testing.T) {
	r := &OperatorRepository{}

	cases := map[string]domain.User{
		"no username":  {PasswordHash: "h", Role: domain.RoleAdmin},
		"no hash":      {Username: "ana", Role: domain.RoleAdmin},
		"unknown role": {Username: "ana", PasswordHash: "h", Role: "owner"},
	}
	for name, u := range cases {
		t.Run(name, func(t *testing.T) {
			if err := r.Save(context.Background(), u); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
