package db

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// Seed inserts an active demo campaign when the store holds none. It
// returns the campaign id, or zero when nothing was inserted.
func Seed(ctx context.Context, repo port.CampaignRepository, ids *snowflake.Node, now time.Time) (int64, error) {
	existing, err := repo.List(ctx, port.CampaignFilter{Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	c := &domain.Campaign{
		CampaignID:         ids.Generate().Int64(),
		Name:               "Demo referral campaign",
		OwnerID:            "demo-advertiser",
		FundingRef:         fmt.Sprintf("seed-%d", now.Unix()),
		TotalLiquidity:     1_000_000, // 1000.00 units
		ValuePerUserAmount: 5_000,     // 5.00 per referral
		TargetNumber:       100,
		Status:             domain.StatusActive,
		StartDate:          now.AddDate(0, 0, -1).UTC(),
		EndDate:            now.AddDate(0, 1, 0).UTC(),
	}
	if err = c.Validate(); err != nil {
		return 0, err
	}
	if err = repo.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.CampaignID, nil
}
