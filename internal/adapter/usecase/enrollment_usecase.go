package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// EnrollmentUseCase enrolls publishers into active campaigns and hands out
// their referral codes. It implements port.EnrollmentUseCase.
type EnrollmentUseCase struct {
	base
	codes       port.CodeGenerator
	maxAttempts int
}

// NewEnrollmentUseCase creates the usecase. maxAttempts bounds code
// regeneration on collisions within one campaign.
func NewEnrollmentUseCase(repo port.CampaignRepository, codes port.CodeGenerator, maxAttempts int, opts ...Option) *EnrollmentUseCase {
	if maxAttempts <= 0 {
		maxAttempts = 16
	}
	return &EnrollmentUseCase{base: newBase(repo, opts), codes: codes, maxAttempts: maxAttempts}
}

// Join enrolls the identity into the campaign. Enrolling does not consume
// budget. A repeated join returns the code issued the first time.
func (u *EnrollmentUseCase) Join(ctx context.Context, in port.JoinInput) (*port.JoinResult, error) {
	identity := strings.TrimSpace(in.Identity)
	if identity == "" {
		return nil, fmt.Errorf("%w: identity is required", domain.ErrInvalidInput)
	}
	address := strings.TrimSpace(in.Address)
	if err := domain.ValidateAddress(address); err != nil {
		return nil, err
	}

	var (
		status port.JoinStatus
		code   string
	)
	c, err := u.mutate(ctx, "join", in.CampaignID, func(c *domain.Campaign) (bool, error) {
		switch {
		case c.Status != domain.StatusActive:
			return false, fmt.Errorf("%w: campaign %d is %s", domain.ErrCampaignNotActive, c.CampaignID, c.Status)
		case c.Ended(u.now()):
			return false, fmt.Errorf("%w: campaign %d", domain.ErrCampaignEnded, c.CampaignID)
		case c.TargetReached():
			return false, fmt.Errorf("%w: campaign %d", domain.ErrTargetReached, c.CampaignID)
		}
		if p := c.PublisherByIdentity(identity); p != nil {
			status, code = port.JoinStatusAlreadyJoined, p.ReferralCode
			return false, nil
		}

		fresh, err := u.uniqueCode(c)
		if err != nil {
			return false, err
		}
		if err = c.AddPublisher(domain.Publisher{
			Identity:     identity,
			Address:      address,
			ReferralCode: fresh,
			JoinedAt:     u.now().UTC(),
		}); err != nil {
			return false, err
		}
		status, code = port.JoinStatusJoined, fresh
		return true, nil
	})
	if err != nil {
		u.metrics.Enrollment(outcomeOf(err))
		return nil, err
	}

	u.metrics.Enrollment(string(status))
	if status == port.JoinStatusJoined {
		u.logger.InfoContext(ctx, "publisher enrolled",
			slog.Int64("campaign_id", c.CampaignID),
			slog.String("referral_code", code),
		)
	}
	return &port.JoinResult{
		Status:             status,
		ReferralCode:       code,
		CampaignName:       c.Name,
		ValuePerUserAmount: c.ValuePerUserAmount,
		TargetNumber:       c.TargetNumber,
		PublisherCount:     c.PublisherCount,
		RemainingBudget:    c.RemainingBudget(),
	}, nil
}

func (u *EnrollmentUseCase) uniqueCode(c *domain.Campaign) (string, error) {
	for i := 0; i < u.maxAttempts; i++ {
		code, err := u.codes.Generate()
		if err != nil {
			return "", err
		}
		if !c.HasReferralCode(code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: campaign %d after %d attempts", domain.ErrReferralCodeExhausted, c.CampaignID, u.maxAttempts)
}

// outcomeOf maps an error to a metric label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrTargetReached):
		return "target_reached"
	case errors.Is(err, domain.ErrBudgetInsufficient):
		return "budget_insufficient"
	case errors.Is(err, domain.ErrCampaignNotActive):
		return "not_active"
	case errors.Is(err, domain.ErrCampaignEnded):
		return "ended"
	case errors.Is(err, domain.ErrCampaignNotFound):
		return "campaign_not_found"
	case errors.Is(err, domain.ErrReferralCodeNotFound):
		return "code_not_found"
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAddress):
		return "invalid"
	}
	return "error"
}
