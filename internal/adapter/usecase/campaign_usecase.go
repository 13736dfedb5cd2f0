package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/snowflake"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// CampaignUseCase implements campaign administration and read access.
type CampaignUseCase struct {
	base
	queue port.PayoutQueue
	ids   *snowflake.Node
}

func NewCampaignUseCase(repo port.CampaignRepository, queue port.PayoutQueue, ids *snowflake.Node, opts ...Option) *CampaignUseCase {
	return &CampaignUseCase{base: newBase(repo, opts), queue: queue, ids: ids}
}

// Create registers a pending campaign. The funding transaction is assumed
// verified upstream; its amount must cover exactly the total liquidity.
func (u *CampaignUseCase) Create(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if strings.TrimSpace(in.FundingRef) == "" {
		return nil, fmt.Errorf("%w: funding reference is required", domain.ErrInvalidInput)
	}
	if in.FundingAmount != in.TotalLiquidity {
		return nil, fmt.Errorf("%w: funded %d, liquidity %d", domain.ErrFundingMismatch, in.FundingAmount, in.TotalLiquidity)
	}
	c := &domain.Campaign{
		CampaignID:         u.ids.Generate().Int64(),
		Name:               strings.TrimSpace(in.Name),
		OwnerID:            in.OwnerID,
		FundingRef:         in.FundingRef,
		TotalLiquidity:     in.TotalLiquidity,
		ValuePerUserAmount: in.ValuePerUserAmount,
		TargetNumber:       in.TargetNumber,
		Status:             domain.StatusPending,
		StartDate:          in.StartDate.UTC(),
		EndDate:            in.EndDate.UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "campaign created",
		slog.Int64("campaign_id", c.CampaignID),
		slog.String("owner_id", c.OwnerID),
		slog.Int64("total_liquidity", c.TotalLiquidity),
	)
	return c, nil
}

// Approve activates a pending campaign.
func (u *CampaignUseCase) Approve(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	c, err := u.mutate(ctx, "approve", campaignID, func(c *domain.Campaign) (bool, error) {
		if _, err := c.Apply(domain.TriggerApprove); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) Get(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrCampaignNotFound, campaignID)
	}
	return c, nil
}

func (u *CampaignUseCase) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, filter.Status)
	}
	return u.repo.List(ctx, filter)
}

func (u *CampaignUseCase) DeadPayouts(ctx context.Context, limit int) ([]domain.DeadPayout, error) {
	return u.queue.Dead(ctx, limit)
}
