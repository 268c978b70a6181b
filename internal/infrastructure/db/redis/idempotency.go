package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrledger/payroll-system/internal/core/ports"
)

// DefaultIdempotencyTTL bounds how long a hire can be replayed by key.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore maps client idempotency keys to the employee they hired.
//
// Key format:   idem:hire:<instance>:<idempotency_key>
// Value format: <fingerprint>|<employee_id>
//
// Employee IDs restart at 101 in every process, so keys are scoped to the
// process instance that hired.
type IdempotencyStore struct {
	client   *redis.Client
	instance string
	ttl      time.Duration
}

// NewIdempotencyStore wraps client. instance should be unique per process
// run. A non-positive ttl uses DefaultIdempotencyTTL.
func NewIdempotencyStore(client *redis.Client, instance string, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, instance: instance, ttl: ttl}
}

func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (ports.HireRecord, bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.HireRecord{}, false, nil
	}
	if err != nil {
		return ports.HireRecord{}, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	fp, id, ok := strings.Cut(raw, "|")
	if !ok || id == "" {
		return ports.HireRecord{}, false, fmt.Errorf("idempotency lookup: malformed record %q", raw)
	}
	return ports.HireRecord{EmployeeID: id, Fingerprint: fp}, true, nil
}

// Remember records rec under key unless the key is already taken.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, rec ports.HireRecord) error {
	if err := s.client.SetNX(ctx, s.key(key), encode(rec), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Replace(ctx context.Context, key string, rec ports.HireRecord) error {
	if err := s.client.Set(ctx, s.key(key), encode(rec), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency replace: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(k string) string {
	if s.instance == "" {
		return "idem:hire:" + k
	}
	return "idem:hire:" + s.instance + ":" + k
}

func encode(rec ports.HireRecord) string {
	return rec.Fingerprint + "|" + rec.EmployeeID
}
