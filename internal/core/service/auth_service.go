package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
	"github.com/hrledger/payroll-system/internal/pkg/token"
)

// AuthService authenticates operators of the HTTP shell.
type AuthService struct {
	repo   ports.AuthRepository
	signer *token.Signer
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, signer: token.NewSigner(jwtSecret, tokenTTL)}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token. Unknown users and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "", nil, domain.ErrInvalidCredentials
	case err != nil:
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.signer.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
