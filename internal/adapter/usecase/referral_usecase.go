package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/refcode"
)

// ReferralUseCase turns referral webhook events into counted referrals and
// payout jobs. It implements port.ReferralUseCase.
type ReferralUseCase struct {
	base
	relay port.OutboxRelay
}

// NewReferralUseCase creates the ingestor. relay may be nil, in which case
// jobs stay in the campaign outbox until the outbox worker moves them.
func NewReferralUseCase(repo port.CampaignRepository, relay port.OutboxRelay, opts ...Option) *ReferralUseCase {
	return &ReferralUseCase{base: newBase(repo, opts), relay: relay}
}

// Ingest counts one referral for the publisher holding the code. The
// target and budget guards, the counter increments, the resulting status
// transitions and the payout job are committed in one conditional write.
func (u *ReferralUseCase) Ingest(ctx context.Context, in port.ReferralInput) (*port.ReferralResult, error) {
	code := strings.TrimSpace(in.ReferralCode)
	if in.CampaignID <= 0 || code == "" {
		return nil, fmt.Errorf("%w: campaignId and referralCode are required", domain.ErrInvalidInput)
	}
	// A code no generator could produce matches no publisher.
	if err := refcode.Valid(code); err != nil {
		u.metrics.Referral(outcomeOf(domain.ErrReferralCodeNotFound))
		return nil, fmt.Errorf("%w: %w", domain.ErrReferralCodeNotFound, err)
	}

	var queued bool
	c, err := u.mutate(ctx, "ingest", in.CampaignID, func(c *domain.Campaign) (bool, error) {
		queued = false
		if c.Status != domain.StatusActive {
			if c.Status == domain.StatusCompleted && c.TargetReached() {
				return false, fmt.Errorf("%w: %w", domain.ErrCampaignNotActive, domain.ErrTargetReached)
			}
			return false, fmt.Errorf("%w: campaign %d is %s", domain.ErrCampaignNotActive, c.CampaignID, c.Status)
		}
		p := c.Publisher(code)
		if p == nil {
			return false, fmt.Errorf("%w: %s", domain.ErrReferralCodeNotFound, code)
		}
		if c.TargetReached() {
			if _, err := c.Apply(domain.TriggerTargetReached); err != nil {
				return false, err
			}
			return true, fmt.Errorf("%w: campaign %d", domain.ErrTargetReached, c.CampaignID)
		}
		if !c.BudgetFits() {
			if _, err := c.Apply(domain.TriggerBudgetExhausted); err != nil {
				return false, err
			}
			return true, fmt.Errorf("%w: campaign %d", domain.ErrBudgetInsufficient, c.CampaignID)
		}

		p.ReferralCount++
		c.PublisherCount++
		if c.TargetReached() {
			if _, err := c.Apply(domain.TriggerTargetReached); err != nil {
				return false, err
			}
		}
		if c.RemainingBudget() >= c.ValuePerUserAmount {
			c.Outbox = append(c.Outbox, domain.PayoutJob{
				ID:               uuid.NewString(),
				CampaignID:       c.CampaignID,
				ReferralCode:     p.ReferralCode,
				RecipientAddress: p.Address,
				EnqueuedAt:       u.now().UTC(),
			})
			queued = true
		} else if _, err := c.Apply(domain.TriggerBudgetExhausted); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		u.metrics.Referral(outcomeOf(err))
		if !errors.Is(err, domain.ErrCampaignNotFound) && !errors.Is(err, domain.ErrReferralCodeNotFound) {
			u.logger.InfoContext(ctx, "referral rejected",
				slog.Int64("campaign_id", in.CampaignID),
				slog.String("referral_code", code),
				slog.String("reason", outcomeOf(err)),
			)
		}
		return nil, err
	}

	u.metrics.Referral("counted")
	u.logger.InfoContext(ctx, "referral counted",
		slog.Int64("campaign_id", c.CampaignID),
		slog.String("referral_code", code),
		slog.Int64("publisher_count", c.PublisherCount),
		slog.Bool("payout_queued", queued),
	)

	if queued && u.relay != nil {
		if _, ferr := u.relay.FlushCampaign(ctx, c.CampaignID); ferr != nil {
			u.logger.WarnContext(ctx, "outbox flush deferred",
				slog.Int64("campaign_id", c.CampaignID),
				slog.Any("error", ferr),
			)
		}
	}

	return &port.ReferralResult{
		CampaignID:      c.CampaignID,
		ReferralCode:    code,
		PublisherCount:  c.PublisherCount,
		RemainingBudget: c.RemainingBudget(),
		CampaignStatus:  c.Status,
		PayoutQueued:    queued,
	}, nil
}
