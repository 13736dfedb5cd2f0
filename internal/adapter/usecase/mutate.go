package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// mutateFunc changes c in place. persist reports whether c must be written
// back; err is returned to the caller after the write, which lets guards
// persist a status transition and still reject the request.
type mutateFunc func(c *domain.Campaign) (persist bool, err error)

// mutate runs fn against the freshest copy of a campaign and stores the
// result with a conditional write. On a version conflict the campaign is
// reloaded and fn runs again, so every decision fn takes is made on the
// state that is actually written over.
func (b *base) mutate(ctx context.Context, op string, campaignID int64, fn mutateFunc) (*domain.Campaign, error) {
	var (
		result *domain.Campaign
		fnErr  error
	)
	attempt := func() error {
		current, err := b.repo.Get(ctx, campaignID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("load campaign %d: %w", campaignID, err))
		}
		if current == nil {
			return backoff.Permanent(fmt.Errorf("%w: %d", domain.ErrCampaignNotFound, campaignID))
		}
		next := current.Clone()
		persist, err := fn(next)
		if !persist {
			result, fnErr = next, err
			return nil
		}
		if ierr := next.CheckInvariants(); ierr != nil {
			return backoff.Permanent(ierr)
		}
		if serr := b.repo.Save(ctx, next, current.Version); serr != nil {
			if errors.Is(serr, port.ErrVersionConflict) {
				b.metrics.Conflict(op)
				return serr
			}
			return backoff.Permanent(fmt.Errorf("save campaign %d: %w", campaignID, serr))
		}
		if next.Status != current.Status {
			b.statusChanged(ctx, next, current.Status)
		}
		result, fnErr = next, err
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = b.retry.Initial
	policy.MaxInterval = b.retry.Max
	policy.MaxElapsedTime = 0
	policy.Reset()

	err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, b.retry.MaxRetries), ctx))
	if err != nil {
		if errors.Is(err, port.ErrVersionConflict) {
			return nil, fmt.Errorf("%s campaign %d: %w", op, campaignID, domain.ErrConcurrentUpdate)
		}
		return nil, err
	}
	return result, fnErr
}

func (b *base) statusChanged(ctx context.Context, c *domain.Campaign, from domain.CampaignStatus) {
	b.metrics.Transition(string(from), string(c.Status))
	b.logger.InfoContext(ctx, "campaign status changed",
		slog.Int64("campaign_id", c.CampaignID),
		slog.String("from", string(from)),
		slog.String("to", string(c.Status)),
	)
	b.publish(ctx, domain.StatusChanged(c, from, b.now().UTC()))
}
