package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

const commitTimeout = 10 * time.Second

// SettlementUseCase settles payout jobs. For each job it claims the next
// unpaid settlement unit of the publisher in the campaign document, moves
// value through the settlement network without holding any lock, then
// commits the payment against the claim. The claim pins both the budget
// reservation and the transfer reference, so at most one unit per
// publisher is in flight and a resumed claim reuses its reference.
type SettlementUseCase struct {
	base
	network port.SettlementNetwork
	lease   time.Duration
}

func NewSettlementUseCase(repo port.CampaignRepository, network port.SettlementNetwork, lease time.Duration, opts ...Option) *SettlementUseCase {
	if lease <= 0 {
		lease = 2 * time.Minute
	}
	return &SettlementUseCase{base: newBase(repo, opts), network: network, lease: lease}
}

// Settle handles one payout job. A nil error means the job can be acked.
// Errors are classified with domain.IsRetryable.
func (u *SettlementUseCase) Settle(ctx context.Context, job domain.PayoutJob) (port.SettlementOutcome, error) {
	claim, recipient, err := u.claim(ctx, job)
	if err != nil {
		return "", err
	}
	if claim == nil {
		u.logger.InfoContext(ctx, "payout already settled",
			slog.String("job_id", job.ID),
			slog.Int64("campaign_id", job.CampaignID),
			slog.String("referral_code", job.ReferralCode),
		)
		return port.OutcomeDuplicate, nil
	}

	started := u.now()
	callCtx, cancel := context.WithTimeout(ctx, claim.LeaseUntil.Sub(started))
	err = u.transfer(callCtx, port.TransferRequest{
		Reference:  claim.Reference,
		CampaignID: job.CampaignID,
		Recipient:  recipient,
		Amount:     claim.Amount,
	})
	cancel()

	// The outcome must be recorded even if the worker is shutting down.
	commitCtx, cancelCommit := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancelCommit()

	if err != nil {
		if errors.Is(err, domain.ErrTransferRejected) {
			u.release(commitCtx, job, claim.Reference, true)
			return "", err
		}
		u.release(commitCtx, job, claim.Reference, false)
		if !errors.Is(err, domain.ErrSettlementUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrSettlementUnavailable, err)
		}
		return "", err
	}

	settled, err := u.commit(commitCtx, job, claim)
	if err != nil {
		return "", err
	}
	if !settled {
		return port.OutcomeDuplicate, nil
	}
	u.metrics.Settled(claim.Amount, u.now().Sub(started))
	u.logger.InfoContext(ctx, "payout settled",
		slog.String("job_id", job.ID),
		slog.Int64("campaign_id", job.CampaignID),
		slog.String("referral_code", job.ReferralCode),
		slog.String("reference", claim.Reference),
		slog.Int64("amount", claim.Amount),
	)
	u.publish(ctx, domain.Event{
		Type:       domain.EventPayoutSettled,
		CampaignID: job.CampaignID,
		Payload: map[string]any{
			"referralCode": job.ReferralCode,
			"reference":    claim.Reference,
			"recipient":    recipient,
			"amount":       claim.Amount,
		},
	})
	return port.OutcomeSettled, nil
}

// claim reserves the next unpaid unit of the publisher, or resumes a claim
// whose lease expired. It returns a nil claim when nothing is owed.
func (u *SettlementUseCase) claim(ctx context.Context, job domain.PayoutJob) (*domain.Settlement, string, error) {
	var (
		claim     *domain.Settlement
		recipient string
	)
	_, err := u.mutate(ctx, "claim", job.CampaignID, func(c *domain.Campaign) (bool, error) {
		claim, recipient = nil, ""
		p := c.Publisher(job.ReferralCode)
		if p == nil {
			return false, fmt.Errorf("%w: %s", domain.ErrReferralCodeNotFound, job.ReferralCode)
		}
		if job.RecipientAddress != "" && job.RecipientAddress != p.Address {
			return false, fmt.Errorf("%w: job recipient does not match publisher %s", domain.ErrInvalidInput, p.ReferralCode)
		}
		now := u.now()
		if p.InFlight != nil {
			if p.InFlight.Leased(now) {
				return false, fmt.Errorf("%w: %s", domain.ErrSettlementBusy, p.InFlight.Reference)
			}
			p.InFlight.LeaseUntil = now.Add(u.lease)
			resumed := *p.InFlight
			claim, recipient = &resumed, p.Address
			return true, nil
		}

		value := c.ValuePerUserAmount
		paid := p.PaidReferrals(value)
		if p.ReferralCount <= paid {
			return false, nil
		}
		if !c.BudgetFits() {
			if _, err := c.Apply(domain.TriggerBudgetExhausted); err != nil {
				return false, err
			}
			return true, fmt.Errorf("%w: campaign %d", domain.ErrBudgetExhausted, c.CampaignID)
		}
		if !c.ClaimFits() {
			return false, fmt.Errorf("%w: campaign %d budget is reserved by settlements in flight", domain.ErrSettlementBusy, c.CampaignID)
		}

		unit := paid + 1
		p.InFlight = &domain.Settlement{
			Reference:  domain.SettlementReference(c.CampaignID, p.ReferralCode, unit),
			Unit:       unit,
			Amount:     value,
			ClaimedAt:  now.UTC(),
			LeaseUntil: now.Add(u.lease),
		}
		c.Reserved += value
		granted := *p.InFlight
		claim, recipient = &granted, p.Address
		return true, nil
	})
	if err != nil {
		return nil, "", err
	}
	return claim, recipient, nil
}

func (u *SettlementUseCase) transfer(ctx context.Context, req port.TransferRequest) error {
	receipt, err := u.network.Transfer(ctx, req)
	if err != nil {
		return err
	}
	switch receipt.Status {
	case port.TransferConfirmed:
		return nil
	case port.TransferFailed:
		return fmt.Errorf("transfer %s: %w", req.Reference, domain.ErrTransferRejected)
	}
	return u.network.WaitForConfirmation(ctx, receipt.ID)
}

// commit books a confirmed transfer. It reports false when the claim was
// already booked by another worker that resumed it.
func (u *SettlementUseCase) commit(ctx context.Context, job domain.PayoutJob, claim *domain.Settlement) (bool, error) {
	var booked bool
	_, err := u.mutate(ctx, "settle", job.CampaignID, func(c *domain.Campaign) (bool, error) {
		booked = false
		p := c.Publisher(job.ReferralCode)
		if p == nil || p.InFlight == nil || p.InFlight.Reference != claim.Reference {
			return false, nil
		}
		amount := p.InFlight.Amount
		c.Spent += amount
		c.Reserved -= amount
		p.PaidOut += amount
		p.InFlight = nil
		if c.Spent >= c.TotalLiquidity {
			if _, err := c.Apply(domain.TriggerFundsExhausted); err != nil {
				return false, err
			}
		}
		if c.TargetReached() {
			if _, err := c.Apply(domain.TriggerTargetReached); err != nil {
				return false, err
			}
		}
		booked = true
		return true, nil
	})
	if err != nil {
		return false, fmt.Errorf("commit settlement %s: %w", claim.Reference, err)
	}
	return booked, nil
}

// release gives up a claim after a failed transfer. A rejected transfer
// drops the claim and its reservation; any other failure only ends the
// lease so the next attempt resumes with the same reference.
func (u *SettlementUseCase) release(ctx context.Context, job domain.PayoutJob, reference string, rejected bool) {
	_, err := u.mutate(ctx, "release", job.CampaignID, func(c *domain.Campaign) (bool, error) {
		p := c.Publisher(job.ReferralCode)
		if p == nil || p.InFlight == nil || p.InFlight.Reference != reference {
			return false, nil
		}
		if rejected {
			c.Reserved -= p.InFlight.Amount
			p.InFlight = nil
		} else {
			p.InFlight.LeaseUntil = time.Time{}
		}
		return true, nil
	})
	if err != nil {
		u.logger.WarnContext(ctx, "release settlement claim failed",
			slog.String("reference", reference),
			slog.Bool("rejected", rejected),
			slog.Any("error", err),
		)
	}
}

// Abandon drops the claim a given-up job left behind so its reservation
// returns to the budget. A claim under a live lease belongs to a running
// attempt and is kept. A later claim of the same unit derives the same
// reference, so a transfer that did land is never paid twice.
func (u *SettlementUseCase) Abandon(ctx context.Context, job domain.PayoutJob) error {
	var dropped *domain.Settlement
	_, err := u.mutate(ctx, "abandon", job.CampaignID, func(c *domain.Campaign) (bool, error) {
		dropped = nil
		p := c.Publisher(job.ReferralCode)
		if p == nil || p.InFlight == nil || p.InFlight.Leased(u.now()) {
			return false, nil
		}
		claim := *p.InFlight
		c.Reserved -= claim.Amount
		p.InFlight = nil
		dropped = &claim
		return true, nil
	})
	if errors.Is(err, domain.ErrCampaignNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("abandon claim for %s: %w", job.ReferralCode, err)
	}
	if dropped != nil {
		u.logger.WarnContext(ctx, "settlement claim abandoned",
			slog.String("job_id", job.ID),
			slog.Int64("campaign_id", job.CampaignID),
			slog.String("reference", dropped.Reference),
			slog.Int64("amount", dropped.Amount),
		)
	}
	return nil
}
