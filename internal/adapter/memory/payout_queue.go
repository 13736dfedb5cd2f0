package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mesa-bounty/internal/core/domain"
)

type queued struct {
	job       domain.PayoutJob
	visibleAt time.Time
	attempts  int
	lastError string
}

// PayoutQueue is an in-process port.PayoutQueue with the same visibility
// semantics as the Redis queue. Jobs do not survive a restart.
type PayoutQueue struct {
	mu         sync.Mutex
	visibility time.Duration
	now        func() time.Time
	jobs       map[string]*queued
	dead       []domain.DeadPayout
}

// QueueOption configures a PayoutQueue.
type QueueOption func(*PayoutQueue)

// WithClock overrides the time source.
func WithClock(now func() time.Time) QueueOption {
	return func(q *PayoutQueue) {
		if now != nil {
			q.now = now
		}
	}
}

func NewPayoutQueue(visibility time.Duration, opts ...QueueOption) *PayoutQueue {
	q := &PayoutQueue{
		visibility: visibility,
		now:        time.Now,
		jobs:       make(map[string]*queued),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *PayoutQueue) Enqueue(_ context.Context, job domain.PayoutJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, exists := q.jobs[job.ID]; exists {
		return nil
	}
	q.jobs[job.ID] = &queued{job: job, visibleAt: q.now()}
	return nil
}

func (q *PayoutQueue) Dequeue(_ context.Context) (*domain.PayoutDelivery, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	var due *queued
	for _, j := range q.jobs {
		if j.visibleAt.After(now) {
			continue
		}
		if due == nil || j.visibleAt.Before(due.visibleAt) ||
			(j.visibleAt.Equal(due.visibleAt) && j.job.ID < due.job.ID) {
			due = j
		}
	}
	if due == nil {
		return nil, nil
	}
	due.attempts++
	due.visibleAt = now.Add(q.visibility)
	return &domain.PayoutDelivery{Job: due.job, Attempts: due.attempts, LastError: due.lastError}, nil
}

func (q *PayoutQueue) Ack(_ context.Context, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.jobs, jobID)
	return nil
}

func (q *PayoutQueue) Retry(_ context.Context, jobID string, delay time.Duration, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	j, ok := q.jobs[jobID]
	if !ok {
		return nil
	}
	j.visibleAt = q.now().Add(delay)
	j.lastError = reason
	return nil
}

func (q *PayoutQueue) Fail(_ context.Context, jobID string, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	j, ok := q.jobs[jobID]
	if !ok {
		return nil
	}
	delete(q.jobs, jobID)
	q.dead = append(q.dead, domain.DeadPayout{
		Job:      j.job,
		Attempts: j.attempts,
		Reason:   reason,
		FailedAt: q.now().UTC(),
	})
	return nil
}

func (q *PayoutQueue) Dead(_ context.Context, limit int) ([]domain.DeadPayout, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.DeadPayout, len(q.dead))
	copy(out, q.dead)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FailedAt.After(out[j].FailedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of live jobs, visible or leased.
func (q *PayoutQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
