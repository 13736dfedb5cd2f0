package db

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/adapter/memory"
	"mesa-bounty/internal/core/domain"
)

func TestSeedOnlyIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCampaignRepository()
	node, err := snowflake.NewNode(3)
	require.NoError(t, err)
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	id, err := Seed(ctx, repo, node, now)
	require.NoError(t, err)
	require.NotZero(t, id)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.NoError(t, c.CheckInvariants())

	again, err := Seed(ctx, repo, node, now)
	require.NoError(t, err)
	assert.Zero(t, again)
}
