package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

type stubAuthRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubAuthRepo(t *testing.T, users ...domain.User) *stubAuthRepo {
	t.Helper()
	r := &stubAuthRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		u.PasswordHash = string(hash)
		clone := u
		r.users[u.Username] = &clone
	}
	return r
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo(t, domain.User{Username: "carol", PasswordHash: "s3cret", Role: domain.RoleAdmin})
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo(t, domain.User{Username: "dave", PasswordHash: "goodpass", Role: domain.RoleViewer})
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(t), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(t), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := newStubAuthRepo(t)
	repo.findErr = errors.New("boom")
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "bob", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected repository error to pass through, got %v", err)
	}
}
