package worker

import (
	"context"
	"log/slog"
	"time"

	"mesa-bounty/internal/core/port"
)

// OutboxWorker periodically moves payout jobs committed with campaign
// writes into the payout queue. It picks up whatever the request path
// failed to flush.
type OutboxWorker struct {
	relay    port.OutboxRelay
	interval time.Duration
	log      *slog.Logger
}

func NewOutboxWorker(relay port.OutboxRelay, interval time.Duration, log *slog.Logger) *OutboxWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &OutboxWorker{relay: relay, interval: interval, log: log.With(slog.String("component", "outbox_worker"))}
}

// Run flushes on every tick until ctx is done.
func (w *OutboxWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *OutboxWorker) RunOnce(ctx context.Context) int {
	n, err := w.relay.FlushPending(ctx)
	if err != nil && ctx.Err() == nil {
		w.log.WarnContext(ctx, "outbox flush failed", slog.Int("relayed", n), slog.Any("error", err))
	}
	if n > 0 {
		w.log.DebugContext(ctx, "outbox flushed", slog.Int("relayed", n))
	}
	return n
}
