package memory

import (
	"context"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

// UserRepository serves a fixed set of operators loaded from configuration.
type UserRepository struct {
	users map[string]domain.User
}

// NewUserRepository indexes users by username. Users without a username or
// password hash are skipped, so an unset account cannot log in.
func NewUserRepository(users ...domain.User) *UserRepository {
	r := &UserRepository{users: make(map[string]domain.User, len(users))}
	for _, u := range users {
		if u.Username == "" || u.PasswordHash == "" {
			continue
		}
		r.users[u.Username] = u
	}
	return r
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Len returns the number of loaded users.
func (r *UserRepository) Len() int {
	return len(r.users)
}
