package ports

import "context"

// HireRecord is what an idempotency key remembers: the employee it hired and
// a fingerprint of the request that hired them.
type HireRecord struct {
	EmployeeID  string
	Fingerprint string
}

// IdempotencyStore remembers which employee a client-supplied idempotency key
// produced, so a retried hire returns the original record instead of hiring
// twice.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (rec HireRecord, found bool, err error)
	// Remember records rec unless key is already taken.
	Remember(ctx context.Context, key string, rec HireRecord) error
	// Replace overwrites whatever key holds. Used when the recorded hire no
	// longer resolves to the same employee.
	Replace(ctx context.Context, key string, rec HireRecord) error
}
