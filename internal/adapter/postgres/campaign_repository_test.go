package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/db"
)

// testURLEnv names a disposable database. The tests in this file are
// skipped when it is unset.
const testURLEnv = "POSTGRES_TEST_URL"

func newTestRepository(t *testing.T) (*CampaignRepository, *pgxpool.Pool) {
	t.Helper()
	addr := os.Getenv(testURLEnv)
	if addr == "" {
		t.Skipf("%s not set", testURLEnv)
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewCampaignRepository(pool), pool
}

// nextCampaignID keeps rows of separate runs apart in a shared database.
func nextCampaignID(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	id := time.Now().UnixNano() / int64(time.Microsecond)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM campaigns WHERE campaign_id BETWEEN $1 AND $2`, id, id+100)
	})
	return id
}

func fixture(id int64, owner string, status domain.CampaignStatus) *domain.Campaign {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		CampaignID:         id,
		Name:               fmt.Sprintf("campaign %d", id),
		OwnerID:            owner,
		FundingRef:         "fund-1",
		TotalLiquidity:     100,
		ValuePerUserAmount: 10,
		TargetNumber:       5,
		Status:             status,
		StartDate:          start,
		EndDate:            start.AddDate(0, 1, 0),
	}
}

func TestPostgresDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, pool := newTestRepository(t)
	id := nextCampaignID(t, pool)

	claimed := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	c := fixture(id, "acme", domain.StatusActive)
	c.Spent, c.Reserved, c.PublisherCount = 10, 10, 2
	c.Publishers = []domain.Publisher{
		{Identity: "alice", Address: "addr-alice", ReferralCode: "AAAA2222", ReferralCount: 2, PaidOut: 10, JoinedAt: claimed,
			InFlight: &domain.Settlement{Reference: domain.SettlementReference(id, "AAAA2222", 2), Unit: 2, Amount: 10, ClaimedAt: claimed, LeaseUntil: claimed.Add(time.Minute)}},
	}
	c.Outbox = []domain.PayoutJob{{ID: "job-1", CampaignID: id, ReferralCode: "AAAA2222", RecipientAddress: "addr-alice", EnqueuedAt: claimed}}
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(1), c.Version)
	assert.NotZero(t, c.ID)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.OwnerID)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, int64(10), got.Reserved)
	assert.True(t, c.EndDate.Equal(got.EndDate))
	require.Len(t, got.Publishers, 1)
	require.NotNil(t, got.Publishers[0].InFlight)
	assert.Equal(t, c.Publishers[0].InFlight.Reference, got.Publishers[0].InFlight.Reference)
	assert.True(t, claimed.Add(time.Minute).Equal(got.Publishers[0].InFlight.LeaseUntil))
	require.Len(t, got.Outbox, 1)
	assert.Equal(t, "job-1", got.Outbox[0].ID)

	err = repo.Create(ctx, fixture(id, "acme", domain.StatusActive))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := repo.Get(ctx, id+99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgresConditionalSave(t *testing.T) {
	ctx := context.Background()
	repo, pool := newTestRepository(t)
	id := nextCampaignID(t, pool)
	require.NoError(t, repo.Create(ctx, fixture(id, "acme", domain.StatusActive)))

	a, err := repo.Get(ctx, id)
	require.NoError(t, err)
	b, err := repo.Get(ctx, id)
	require.NoError(t, err)

	a.PublisherCount = 1
	a.Outbox = []domain.PayoutJob{{ID: "job-1", CampaignID: id, ReferralCode: "AAAA2222"}}
	require.NoError(t, repo.Save(ctx, a, a.Version))
	assert.Equal(t, int64(2), a.Version)

	b.PublisherCount = 5
	assert.ErrorIs(t, repo.Save(ctx, b, b.Version), port.ErrVersionConflict)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.PublisherCount)
	assert.Equal(t, int64(2), got.Version)

	pending, err := repo.ListWithOutbox(ctx, 10000)
	require.NoError(t, err)
	assert.Contains(t, pending, id)

	got.Outbox = nil
	require.NoError(t, repo.Save(ctx, got, got.Version))
	pending, err = repo.ListWithOutbox(ctx, 10000)
	require.NoError(t, err)
	assert.NotContains(t, pending, id)
}

func TestPostgresListFilters(t *testing.T) {
	ctx := context.Background()
	repo, pool := newTestRepository(t)
	id := nextCampaignID(t, pool)
	owner := fmt.Sprintf("owner-%d", id)

	require.NoError(t, repo.Create(ctx, fixture(id, owner, domain.StatusActive)))
	require.NoError(t, repo.Create(ctx, fixture(id+1, owner, domain.StatusPending)))
	require.NoError(t, repo.Create(ctx, fixture(id+2, owner+"-other", domain.StatusActive)))

	ids := func(cs []domain.Campaign) []int64 {
		out := make([]int64, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.CampaignID)
		}
		return out
	}

	all, err := repo.List(ctx, port.CampaignFilter{OwnerID: owner})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{id, id + 1}, ids(all))

	active, err := repo.List(ctx, port.CampaignFilter{OwnerID: owner, Status: domain.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, []int64{id}, ids(active))

	limited, err := repo.List(ctx, port.CampaignFilter{OwnerID: owner, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPostgresTransitionExpired(t *testing.T) {
	ctx := context.Background()
	repo, pool := newTestRepository(t)
	id := nextCampaignID(t, pool)
	cutoff := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	old := fixture(id, "acme", domain.StatusActive)
	old.StartDate, old.EndDate = cutoff.AddDate(0, -1, 0), cutoff.Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, old))
	current := fixture(id+1, "acme", domain.StatusActive)
	current.StartDate, current.EndDate = cutoff.AddDate(0, -1, 0), cutoff.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, current))

	expired, err := repo.TransitionExpired(ctx, cutoff, domain.StatusActive, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Contains(t, expired, port.ExpiredCampaign{CampaignID: id, Name: old.Name})
	assert.NotContains(t, expired, port.ExpiredCampaign{CampaignID: id + 1, Name: current.Name})

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, int64(2), got.Version)

	again, err := repo.TransitionExpired(ctx, cutoff, domain.StatusActive, domain.StatusCompleted)
	require.NoError(t, err)
	assert.NotContains(t, again, port.ExpiredCampaign{CampaignID: id, Name: old.Name})
}
