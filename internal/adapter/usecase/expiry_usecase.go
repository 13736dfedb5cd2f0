package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

const sweepLockKey = "sweep:expiry"

// ExpiryUseCase closes active campaigns whose end date lies before the
// start of the current day. Runs are serialised across replicas through
// the locker.
type ExpiryUseCase struct {
	base
	locker  port.Locker
	loc     *time.Location
	lockTTL time.Duration
}

// NewExpiryUseCase creates the sweep. locker may be nil for a single
// replica deployment.
func NewExpiryUseCase(repo port.CampaignRepository, locker port.Locker, loc *time.Location, lockTTL time.Duration, opts ...Option) *ExpiryUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return &ExpiryUseCase{base: newBase(repo, opts), locker: locker, loc: loc, lockTTL: lockTTL}
}

// Cutoff returns the start of the day containing now in the sweep location.
func (u *ExpiryUseCase) Cutoff(now time.Time) time.Time {
	local := now.In(u.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, u.loc)
}

// Sweep expires campaigns in a single conditional statement. Running it
// again the same day is a no-op.
func (u *ExpiryUseCase) Sweep(ctx context.Context) (*port.SweepReport, error) {
	report := &port.SweepReport{Cutoff: u.Cutoff(u.now())}

	if u.locker != nil {
		token, ok, err := u.locker.TryLock(ctx, sweepLockKey, u.lockTTL)
		if err != nil {
			u.metrics.Sweep("error", 0)
			return nil, fmt.Errorf("acquire sweep lock: %w", err)
		}
		if !ok {
			report.Skipped = true
			u.metrics.Sweep("skipped", 0)
			u.logger.InfoContext(ctx, "expiry sweep skipped, lock held elsewhere")
			return report, nil
		}
		defer func() {
			if err := u.locker.Release(context.WithoutCancel(ctx), sweepLockKey, token); err != nil {
				u.logger.WarnContext(ctx, "release sweep lock failed", slog.Any("error", err))
			}
		}()
	}

	to, err := domain.Transition(domain.StatusActive, domain.TriggerExpired)
	if err != nil {
		return nil, err
	}
	expired, err := u.repo.TransitionExpired(ctx, report.Cutoff, domain.StatusActive, to)
	if err != nil {
		u.metrics.Sweep("error", 0)
		return nil, fmt.Errorf("expire campaigns: %w", err)
	}

	report.Processed = len(expired)
	report.CampaignIDs = make([]int64, 0, len(expired))
	report.CampaignNames = make([]string, 0, len(expired))
	for _, e := range expired {
		report.CampaignIDs = append(report.CampaignIDs, e.CampaignID)
		report.CampaignNames = append(report.CampaignNames, e.Name)
		u.metrics.Transition(string(domain.StatusActive), string(to))
		u.publish(ctx, domain.Event{
			Type:       domain.EventCampaignStatusChanged,
			CampaignID: e.CampaignID,
			Payload: map[string]any{
				"from":   string(domain.StatusActive),
				"to":     string(to),
				"reason": string(domain.TriggerExpired),
			},
		})
	}
	u.metrics.Sweep("ok", report.Processed)
	u.logger.InfoContext(ctx, "expiry sweep finished",
		slog.Time("cutoff", report.Cutoff),
		slog.Int("processed", report.Processed),
		slog.Any("campaign_ids", report.CampaignIDs),
	)
	return report, nil
}
