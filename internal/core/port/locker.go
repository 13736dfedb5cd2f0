package port

import (
	"context"
	"time"
)

// Locker provides a lease-based mutual exclusion shared across processes.
type Locker interface {
	// TryLock acquires key for ttl and returns the token needed to release it.
	TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	// Release frees key if it is still held with token.
	Release(ctx context.Context, key, token string) error
}

// CodeGenerator produces candidate referral codes.
type CodeGenerator interface {
	Generate() (string, error)
}
