package usecase

import (
	"context"
	"log/slog"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/metrics"
)

// RetryPolicy bounds the re-evaluation of a campaign mutation after a
// version conflict.
type RetryPolicy struct {
	Initial    time.Duration
	Max        time.Duration
	MaxRetries uint64
}

// DefaultRetryPolicy suits a handful of concurrent writers per campaign.
var DefaultRetryPolicy = RetryPolicy{
	Initial:    5 * time.Millisecond,
	Max:        100 * time.Millisecond,
	MaxRetries: 32,
}

// base carries the collaborators shared by every usecase.
type base struct {
	repo    port.CampaignRepository
	events  port.EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
	retry   RetryPolicy
}

// Option configures a usecase.
type Option func(*base)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *base) {
		if now != nil {
			b.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) { b.metrics = m }
}

// WithEvents sets the publisher receiving domain events.
func WithEvents(p port.EventPublisher) Option {
	return func(b *base) {
		if p != nil {
			b.events = p
		}
	}
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(b *base) { b.retry = p }
}

func newBase(repo port.CampaignRepository, opts []Option) base {
	b := base{
		repo:   repo,
		events: nopPublisher{},
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		retry:  DefaultRetryPolicy,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// publish delivers event on a best effort basis.
func (b *base) publish(ctx context.Context, event domain.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = b.now().UTC()
	}
	if err := b.events.Publish(ctx, event); err != nil {
		b.logger.WarnContext(ctx, "publish event failed",
			slog.String("event_type", event.Type),
			slog.Int64("campaign_id", event.CampaignID),
			slog.Any("error", err),
		)
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }
