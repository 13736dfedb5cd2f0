package port

import (
	"context"
	"time"

	"mesa-bounty/internal/core/domain"
)

// PayoutQueue is a durable at-least-once queue of payout jobs. A dequeued
// job stays invisible for a visibility timeout and is redelivered unless
// it is acked, retried or failed before then.
type PayoutQueue interface {
	// Enqueue adds job. Enqueueing a job id that is already queued is a no-op.
	Enqueue(ctx context.Context, job domain.PayoutJob) error
	// Dequeue leases the earliest due job. It returns nil when none is due.
	Dequeue(ctx context.Context) (*domain.PayoutDelivery, error)
	// Ack removes a job after it was handled.
	Ack(ctx context.Context, jobID string) error
	// Retry makes the job visible again after delay.
	Retry(ctx context.Context, jobID string, delay time.Duration, reason string) error
	// Fail moves the job to the dead set.
	Fail(ctx context.Context, jobID string, reason string) error
	// Dead returns up to limit dead jobs, newest first.
	Dead(ctx context.Context, limit int) ([]domain.DeadPayout, error)
}
