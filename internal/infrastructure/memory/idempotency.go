// Package memory holds process-local implementations of the core ports, used
// when no external store is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrledger/payroll-system/internal/core/ports"
)

type idemEntry struct {
	rec       ports.HireRecord
	expiresAt time.Time
}

// IdempotencyStore keeps idempotency keys in a map. Expired keys are dropped
// lazily on lookup.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]idemEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		entries: make(map[string]idemEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *IdempotencyStore) Lookup(_ context.Context, key string) (ports.HireRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return ports.HireRecord{}, false, nil
	}
	if s.expired(e) {
		delete(s.entries, key)
		return ports.HireRecord{}, false, nil
	}
	return e.rec, true, nil
}

// Remember records rec under key. An unexpired key keeps its first value.
func (s *IdempotencyStore) Remember(_ context.Context, key string, rec ports.HireRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && !s.expired(e) {
		return nil
	}
	s.entries[key] = idemEntry{rec: rec, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *IdempotencyStore) Replace(_ context.Context, key string, rec ports.HireRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = idemEntry{rec: rec, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *IdempotencyStore) expired(e idemEntry) bool {
	return s.ttl > 0 && !s.now().Before(e.expiresAt)
}
