package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// OutboxRelay moves payout jobs committed inside campaign documents onto
// the payout queue. Jobs are enqueued before they are removed from the
// outbox, so a crash in between yields a duplicate job rather than a lost
// one. The settlement gate absorbs duplicates.
type OutboxRelay struct {
	base
	queue port.PayoutQueue
	batch int
}

func NewOutboxRelay(repo port.CampaignRepository, queue port.PayoutQueue, batch int, opts ...Option) *OutboxRelay {
	if batch <= 0 {
		batch = 100
	}
	return &OutboxRelay{base: newBase(repo, opts), queue: queue, batch: batch}
}

// FlushCampaign relays the outbox of one campaign and returns the number of
// jobs enqueued.
func (r *OutboxRelay) FlushCampaign(ctx context.Context, campaignID int64) (int, error) {
	c, err := r.repo.Get(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if c == nil || len(c.Outbox) == 0 {
		return 0, nil
	}

	sent := make(map[string]struct{}, len(c.Outbox))
	for _, job := range c.Outbox {
		if err = r.queue.Enqueue(ctx, job); err != nil {
			break
		}
		sent[job.ID] = struct{}{}
	}
	if len(sent) > 0 {
		if _, merr := r.mutate(ctx, "outbox", campaignID, func(c *domain.Campaign) (bool, error) {
			kept := make([]domain.PayoutJob, 0, len(c.Outbox))
			for _, job := range c.Outbox {
				if _, ok := sent[job.ID]; !ok {
					kept = append(kept, job)
				}
			}
			if len(kept) == len(c.Outbox) {
				return false, nil
			}
			c.Outbox = kept
			return true, nil
		}); merr != nil {
			err = errors.Join(err, merr)
		}
		r.metrics.OutboxRelayed(len(sent))
	}
	if err != nil {
		return len(sent), fmt.Errorf("relay outbox of campaign %d: %w", campaignID, err)
	}
	return len(sent), nil
}

// FlushPending relays the outboxes of up to one batch of campaigns.
func (r *OutboxRelay) FlushPending(ctx context.Context) (int, error) {
	ids, err := r.repo.ListWithOutbox(ctx, r.batch)
	if err != nil {
		return 0, err
	}
	var (
		total int
		errs  []error
	)
	for _, id := range ids {
		n, err := r.FlushCampaign(ctx, id)
		total += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	if total > 0 {
		r.logger.InfoContext(ctx, "outbox relayed", slog.Int("jobs", total), slog.Int("campaigns", len(ids)))
	}
	return total, errors.Join(errs...)
}
