package ports

import (
	"context"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// AuthRepository looks up operators of the HTTP shell.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
