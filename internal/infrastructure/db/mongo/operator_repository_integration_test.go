//go:build integration

package mongo

import (
	"context"
	"errors"
	"testing"

	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/hrledger/payroll-system/internal/core/domain"
)

func newTestRepository(t *testing.T) *OperatorRepository {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get mongo connection string: %v", err)
	}

	client, db, err := Connect(ctx, Config{URI: uri, Database: "payroll_test"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	r := NewOperatorRepository(db)
	if err := r.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return r
}

func TestOperatorRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	if _, err := r.FindByUsername(ctx, "ana"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := r.Save(ctx, domain.User{Username: "ana", PasswordHash: "h1", Role: domain.RoleViewer}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving again replaces the hash and role instead of adding a second account.
	if err := r.Save(ctx, domain.User{Username: "ana", PasswordHash: "h2", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("save: %v", err)
	}

	u, err := r.FindByUsername(ctx, "ana")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.PasswordHash != "h2" || u.Role != domain.RoleAdmin {
		t.Errorf("unexpected operator: %+v", u)
	}

	n, err := r.coll.CountDocuments(ctx, map[string]string{"username": "ana"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected one document, got %d", n)
	}
}

func TestOperatorRepository_EnsureIndexesIsRepeatable(t *testing.T) {
	r := newTestRepository(t)
	if err := r.EnsureIndexes(context.Background()); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
}
