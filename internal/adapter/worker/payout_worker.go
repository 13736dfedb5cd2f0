package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/metrics"
)

// PayoutConfig tunes the payout consumers.
type PayoutConfig struct {
	Concurrency    int
	PollInterval   time.Duration
	MaxAttempts    int
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

func (c PayoutConfig) withDefaults() PayoutConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.BackoffInitial <= 0 {
		c.BackoffInitial = 2 * time.Second
	}
	if c.BackoffMax < c.BackoffInitial {
		c.BackoffMax = c.BackoffInitial
	}
	return c
}

// PayoutWorker consumes payout jobs and hands them to the settlement
// usecase. Transient failures are retried with exponential backoff until
// MaxAttempts, terminal ones go to the dead set right away.
type PayoutWorker struct {
	queue   port.PayoutQueue
	settle  port.SettlementUseCase
	events  port.EventPublisher
	metrics *metrics.Metrics
	log     *slog.Logger
	cfg     PayoutConfig
	now     func() time.Time
}

func NewPayoutWorker(queue port.PayoutQueue, settle port.SettlementUseCase, events port.EventPublisher, m *metrics.Metrics, log *slog.Logger, cfg PayoutConfig) *PayoutWorker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PayoutWorker{
		queue:   queue,
		settle:  settle,
		events:  events,
		metrics: m,
		log:     log.With(slog.String("component", "payout_worker")),
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

// Run starts the consumers and blocks until ctx is done.
func (w *PayoutWorker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.cfg.Concurrency; i++ {
		g.Go(func() error {
			w.consume(ctx)
			return nil
		})
	}
	w.log.InfoContext(ctx, "payout worker started", slog.Int("concurrency", w.cfg.Concurrency))
	return g.Wait()
}

func (w *PayoutWorker) consume(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		// Drain everything due before sleeping again.
		for ctx.Err() == nil {
			handled, err := w.ProcessOnce(ctx)
			if err != nil {
				w.log.WarnContext(ctx, "payout poll failed", slog.Any("error", err))
				break
			}
			if !handled {
				break
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce handles at most one due job. It reports whether a job was
// dequeued.
func (w *PayoutWorker) ProcessOnce(ctx context.Context) (bool, error) {
	delivery, err := w.queue.Dequeue(ctx)
	if err != nil {
		return false, fmt.Errorf("dequeue payout: %w", err)
	}
	if delivery == nil {
		return false, nil
	}
	job := delivery.Job
	log := w.log.With(
		slog.String("job_id", job.ID),
		slog.Int64("campaign_id", job.CampaignID),
		slog.String("referral_code", job.ReferralCode),
		slog.Int("attempt", delivery.Attempts),
	)

	outcome, err := w.settle.Settle(ctx, job)
	switch {
	case err == nil:
		w.metrics.Payout(string(outcome))
		if aerr := w.queue.Ack(ctx, job.ID); aerr != nil {
			// The job is redelivered after the visibility timeout and
			// settles as a duplicate.
			log.WarnContext(ctx, "ack payout failed", slog.Any("error", aerr))
		}
		return true, nil

	case domain.IsRetryable(err) && delivery.Attempts < w.cfg.MaxAttempts:
		delay := w.delay(delivery.Attempts)
		w.metrics.Payout("retry")
		log.WarnContext(ctx, "payout attempt failed, retrying",
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
		if rerr := w.queue.Retry(ctx, job.ID, delay, err.Error()); rerr != nil {
			return true, fmt.Errorf("retry payout %s: %w", job.ID, rerr)
		}
		return true, nil
	}

	w.metrics.Payout("dead")
	log.ErrorContext(ctx, "payout dead lettered", slog.Any("error", err))
	if ferr := w.queue.Fail(ctx, job.ID, err.Error()); ferr != nil {
		return true, fmt.Errorf("dead letter payout %s: %w", job.ID, ferr)
	}
	// A dead job never resumes its claim, so the reservation goes back.
	if aerr := w.settle.Abandon(ctx, job); aerr != nil {
		log.WarnContext(ctx, "abandon settlement claim failed", slog.Any("error", aerr))
	}
	w.publishDead(ctx, delivery, err)
	return true, nil
}

// delay returns the backoff before the next delivery after attempts
// failed deliveries.
func (w *PayoutWorker) delay(attempts int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.cfg.BackoffInitial
	b.MaxInterval = w.cfg.BackoffMax
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	d := b.NextBackOff()
	for i := 1; i < attempts; i++ {
		d = b.NextBackOff()
	}
	return d
}

func (w *PayoutWorker) publishDead(ctx context.Context, d *domain.PayoutDelivery, cause error) {
	if w.events == nil {
		return
	}
	reason := "retries_exhausted"
	if !domain.IsRetryable(cause) {
		reason = "terminal"
	}
	if errors.Is(cause, domain.ErrBudgetExhausted) {
		reason = "budget_exhausted"
	}
	event := domain.Event{
		Type:       domain.EventPayoutDeadLettered,
		CampaignID: d.Job.CampaignID,
		Payload: map[string]any{
			"jobId":        d.Job.ID,
			"referralCode": d.Job.ReferralCode,
			"attempts":     d.Attempts,
			"reason":       reason,
			"error":        cause.Error(),
		},
		OccurredAt: w.now().UTC(),
	}
	if err := w.events.Publish(ctx, event); err != nil {
		w.log.WarnContext(ctx, "publish dead letter event failed", slog.Any("error", err))
	}
}
