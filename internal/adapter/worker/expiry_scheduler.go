package worker

import (
	"context"
	"log/slog"
	"time"

	"mesa-bounty/internal/core/port"
)

// ExpiryScheduler runs the expiry sweep once a day at a fixed wall clock
// time in its location.
type ExpiryScheduler struct {
	sweep  port.ExpiryUseCase
	loc    *time.Location
	hour   int
	minute int
	log    *slog.Logger
	now    func() time.Time
}

func NewExpiryScheduler(sweep port.ExpiryUseCase, loc *time.Location, hour, minute int, log *slog.Logger) *ExpiryScheduler {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ExpiryScheduler{
		sweep:  sweep,
		loc:    loc,
		hour:   hour,
		minute: minute,
		log:    log.With(slog.String("component", "expiry_scheduler")),
		now:    time.Now,
	}
}

// NextRun returns the first scheduled instant strictly after after.
// Days are stepped on the calendar so DST shifts keep the wall clock time.
func (s *ExpiryScheduler) NextRun(after time.Time) time.Time {
	local := after.In(s.loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.hour, s.minute, 0, 0, s.loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, s.hour, s.minute, 0, 0, s.loc)
	}
	return next
}

// Run sleeps until each scheduled instant and sweeps. Failed sweeps are
// logged and retried at the next instant; the sweep is idempotent.
func (s *ExpiryScheduler) Run(ctx context.Context) error {
	for {
		next := s.NextRun(s.now())
		s.log.InfoContext(ctx, "expiry sweep scheduled", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		report, err := s.sweep.Sweep(ctx)
		if err != nil {
			s.log.ErrorContext(ctx, "expiry sweep failed", slog.Any("error", err))
			continue
		}
		if report.Skipped {
			continue
		}
		s.log.InfoContext(ctx, "expiry sweep completed",
			slog.Int("processed", report.Processed),
			slog.Any("campaign_names", report.CampaignNames),
		)
	}
}
