package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token string
	until time.Time
}

// Locker is an in-process port.Locker.
type Locker struct {
	mu    sync.Mutex
	locks map[string]lease
	now   func() time.Time
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[string]lease), now: time.Now}
}

func (l *Locker) TryLock(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("lock key is empty")
	}
	if ttl <= 0 {
		return "", false, errors.New("lock ttl must be positive")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.until) {
		return "", false, nil
	}
	token := uuid.NewString()
	l.locks[key] = lease{token: token, until: now.Add(ttl)}
	return token, true, nil
}

func (l *Locker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held, ok := l.locks[key]; ok && held.token == token {
		delete(l.locks, key)
	}
	return nil
}
