package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/adapter/memory"
	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/refcode"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeNetwork is an idempotent settlement network keyed by reference.
type fakeNetwork struct {
	mu        sync.Mutex
	failNext  int
	reject    bool
	calls     int
	transfers map[string]int64
	refs      []string
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{transfers: make(map[string]int64)}
}

func (n *fakeNetwork) Transfer(_ context.Context, req port.TransferRequest) (*port.TransferReceipt, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.refs = append(n.refs, req.Reference)
	if n.failNext > 0 {
		n.failNext--
		return nil, fmt.Errorf("%w: connection reset", domain.ErrSettlementUnavailable)
	}
	if n.reject {
		return nil, fmt.Errorf("%w: recipient blocked", domain.ErrTransferRejected)
	}
	if _, done := n.transfers[req.Reference]; !done {
		n.transfers[req.Reference] = req.Amount
	}
	return &port.TransferReceipt{ID: "tx-" + req.Reference, Status: port.TransferConfirmed}, nil
}

func (n *fakeNetwork) WaitForConfirmation(context.Context, string) error { return nil }

func (n *fakeNetwork) moved() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	var total int64
	for _, amount := range n.transfers {
		total += amount
	}
	return total
}

type harness struct {
	repo      *memory.CampaignRepository
	queue     *memory.PayoutQueue
	network   *fakeNetwork
	clock     *fakeClock
	campaigns *CampaignUseCase
	enroll    *EnrollmentUseCase
	referrals *ReferralUseCase
	relay     *OutboxRelay
	settle    *SettlementUseCase
	expiry    *ExpiryUseCase
}

func newHarness(t *testing.T, extra ...Option) *harness {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	h := &harness{
		repo:    memory.NewCampaignRepository(),
		network: newFakeNetwork(),
		clock:   &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
	}
	h.queue = memory.NewPayoutQueue(time.Minute, memory.WithClock(h.clock.Now))
	opts := append([]Option{WithClock(h.clock.Now)}, extra...)

	h.campaigns = NewCampaignUseCase(h.repo, h.queue, node, opts...)
	h.enroll = NewEnrollmentUseCase(h.repo, refcode.New(8), 16, opts...)
	h.relay = NewOutboxRelay(h.repo, h.queue, 100, opts...)
	h.referrals = NewReferralUseCase(h.repo, h.relay, opts...)
	h.settle = NewSettlementUseCase(h.repo, h.network, time.Minute, opts...)
	h.expiry = NewExpiryUseCase(h.repo, memory.NewLocker(), time.UTC, time.Minute, opts...)
	return h
}

// activeCampaign creates and approves a campaign running for a month.
func (h *harness) activeCampaign(t *testing.T, total, value, target int64) *domain.Campaign {
	t.Helper()
	ctx := context.Background()
	now := h.clock.Now()
	c, err := h.campaigns.Create(ctx, port.CreateCampaignInput{
		Name:               "spring launch",
		OwnerID:            "advertiser-1",
		FundingRef:         "fund-" + now.Format(time.RFC3339Nano),
		FundingAmount:      total,
		TotalLiquidity:     total,
		ValuePerUserAmount: value,
		TargetNumber:       target,
		StartDate:          now.AddDate(0, 0, -1),
		EndDate:            now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	c, err = h.campaigns.Approve(ctx, c.CampaignID)
	require.NoError(t, err)
	return c
}

func addressOf(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return base58.Encode(sum[:])
}

func (h *harness) join(t *testing.T, campaignID int64, identity string) string {
	t.Helper()
	res, err := h.enroll.Join(context.Background(), port.JoinInput{
		CampaignID: campaignID,
		Identity:   identity,
		Address:    addressOf(identity),
	})
	require.NoError(t, err)
	return res.ReferralCode
}

func (h *harness) load(t *testing.T, campaignID int64) *domain.Campaign {
	t.Helper()
	c, err := h.repo.Get(context.Background(), campaignID)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NoError(t, c.CheckInvariants())
	return c
}

// drain settles every due job, dead-lettering failures the way the payout
// worker does once retries run out.
func (h *harness) drain(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		d, err := h.queue.Dequeue(ctx)
		require.NoError(t, err)
		if d == nil {
			return
		}
		if _, err = h.settle.Settle(ctx, d.Job); err != nil {
			require.NoError(t, h.queue.Fail(ctx, d.Job.ID, err.Error()))
			require.NoError(t, h.settle.Abandon(ctx, d.Job))
			continue
		}
		require.NoError(t, h.queue.Ack(ctx, d.Job.ID))
	}
	t.Fatal("queue did not drain")
}
