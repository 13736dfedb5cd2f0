package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// TestTargetReachedCompletesCampaign covers five referrals reaching the
// target and the rejection of every later attempt.
func TestTargetReachedCompletesCampaign(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)

	codes := make([]string, 6)
	for i := range codes {
		codes[i] = h.join(t, c.CampaignID, fmt.Sprintf("publisher-%d", i))
	}

	for i := 0; i < 5; i++ {
		res, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: codes[i]})
		require.NoError(t, err)
		assert.True(t, res.PayoutQueued)
		assert.Equal(t, int64(i+1), res.PublisherCount)
	}
	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(5), got.PublisherCount)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, 5, h.queue.Len())
	assert.Empty(t, got.Outbox)

	// Attempts after the target: the sixth publisher and repeats.
	for i := 0; i < 6; i++ {
		_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: codes[5-i%2]})
		require.ErrorIs(t, err, domain.ErrTargetReached)
	}
	assert.Equal(t, 5, h.queue.Len(), "no job may be issued after the target")

	h.drain(t)
	got = h.load(t, c.CampaignID)
	assert.Equal(t, int64(5), got.PublisherCount)
	assert.Equal(t, int64(50), got.Spent)
	assert.Equal(t, int64(0), got.Reserved)
	assert.Equal(t, int64(50), h.network.moved())
	for _, p := range got.Publishers[:5] {
		assert.Equal(t, int64(10), p.PaidOut)
		assert.Nil(t, p.InFlight)
	}
}

func TestBudgetGuardDeactivatesCampaign(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 25, 10, 10)
	alice := h.join(t, c.CampaignID, "alice")
	bob := h.join(t, c.CampaignID, "bob")

	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: alice})
	require.NoError(t, err)
	_, err = h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: bob})
	require.NoError(t, err)
	h.drain(t)
	assert.Equal(t, int64(20), h.load(t, c.CampaignID).Spent)

	_, err = h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: alice})
	require.ErrorIs(t, err, domain.ErrBudgetInsufficient)

	got := h.load(t, c.CampaignID)
	assert.Equal(t, domain.StatusInactive, got.Status)
	assert.Equal(t, int64(2), got.PublisherCount)
	assert.Equal(t, 0, h.queue.Len())

	_, err = h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: bob})
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestTransientFailureSettlesOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)
	code := h.join(t, c.CampaignID, "alice")
	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
	require.NoError(t, err)

	h.network.failNext = 1
	d, err := h.queue.Dequeue(ctx)
	require.NoError(t, err)
	_, err = h.settle.Settle(ctx, d.Job)
	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
	require.NoError(t, h.queue.Retry(ctx, d.Job.ID, 0, err.Error()))

	mid := h.load(t, c.CampaignID)
	assert.Equal(t, int64(0), mid.Spent)
	assert.Equal(t, int64(10), mid.Reserved)
	require.NotNil(t, mid.Publishers[0].InFlight)
	assert.True(t, mid.Publishers[0].InFlight.LeaseUntil.IsZero(), "lease must be released for the retry")

	d, err = h.queue.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	outcome, err := h.settle.Settle(ctx, d.Job)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSettled, outcome)
	require.NoError(t, h.queue.Ack(ctx, d.Job.ID))

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(10), got.Spent)
	assert.Equal(t, int64(0), got.Reserved)
	assert.Equal(t, int64(10), got.Publishers[0].PaidOut)
	ref := domain.SettlementReference(c.CampaignID, code, 1)
	assert.Equal(t, []string{ref, ref}, h.network.refs, "retry must reuse the reference")
	assert.Equal(t, int64(10), h.network.moved())
}

func TestDeadLetteredClaimReturnsReservation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 20, 10, 5)
	alice := h.join(t, c.CampaignID, "alice")
	bob := h.join(t, c.CampaignID, "bob")
	carol := h.join(t, c.CampaignID, "carol")

	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: alice})
	require.NoError(t, err)
	h.network.failNext = 1
	h.drain(t)

	mid := h.load(t, c.CampaignID)
	assert.Equal(t, int64(0), mid.Reserved)
	assert.Nil(t, mid.Publisher(alice).InFlight)
	dead, err := h.queue.Dead(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, dead, 1)

	for _, code := range []string{bob, carol} {
		_, err = h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
		require.NoError(t, err)
	}
	h.drain(t)

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(20), got.Spent)
	assert.Equal(t, int64(0), got.Reserved)
	assert.Equal(t, int64(10), got.Publisher(bob).PaidOut)
	assert.Equal(t, int64(10), got.Publisher(carol).PaidOut)
	assert.Equal(t, int64(10), got.Publisher(alice).Unpaid(got.ValuePerUserAmount))
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, int64(20), h.network.moved())
}

func TestAbandonKeepsLeasedClaim(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)
	code := h.join(t, c.CampaignID, "alice")
	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
	require.NoError(t, err)

	stored := h.load(t, c.CampaignID)
	ref := domain.SettlementReference(c.CampaignID, code, 1)
	stored.Publishers[0].InFlight = &domain.Settlement{
		Reference:  ref,
		Unit:       1,
		Amount:     10,
		ClaimedAt:  h.clock.Now(),
		LeaseUntil: h.clock.Now().Add(time.Minute),
	}
	stored.Reserved = 10
	require.NoError(t, h.repo.Save(ctx, stored, stored.Version))

	job := domain.PayoutJob{ID: "j", CampaignID: c.CampaignID, ReferralCode: code}
	require.NoError(t, h.settle.Abandon(ctx, job))
	assert.Equal(t, int64(10), h.load(t, c.CampaignID).Reserved, "a live lease belongs to a running attempt")

	h.clock.Advance(2 * time.Minute)
	require.NoError(t, h.settle.Abandon(ctx, job))
	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(0), got.Reserved)
	assert.Nil(t, got.Publishers[0].InFlight)

	// The unit is claimed again under the same reference.
	outcome, err := h.settle.Settle(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSettled, outcome)
	assert.Equal(t, []string{ref}, h.network.refs)

	require.NoError(t, h.settle.Abandon(ctx, domain.PayoutJob{CampaignID: 999, ReferralCode: code}))
}

func TestExpirySweep(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)

	stored := h.load(t, c.CampaignID)
	stored.EndDate = h.clock.Now().AddDate(0, 0, -1)
	require.NoError(t, h.repo.Save(ctx, stored, stored.Version))
	fresh := h.activeCampaign(t, 100, 10, 5)

	report, err := h.expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, []int64{c.CampaignID}, report.CampaignIDs)
	assert.Equal(t, []string{"spring launch"}, report.CampaignNames)
	assert.Equal(t, domain.StatusCompleted, h.load(t, c.CampaignID).Status)
	assert.Equal(t, domain.StatusActive, h.load(t, fresh.CampaignID).Status)

	report, err = h.expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
}

func TestExpirySweepUsesStartOfDay(t *testing.T) {
	h := newHarness(t)
	cutoff := h.expiry.Cutoff(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), cutoff)
}

func TestDuplicateDeliverySettlesOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)
	code := h.join(t, c.CampaignID, "alice")
	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
	require.NoError(t, err)

	d, err := h.queue.Dequeue(ctx)
	require.NoError(t, err)

	outcome, err := h.settle.Settle(ctx, d.Job)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSettled, outcome)

	outcome, err = h.settle.Settle(ctx, d.Job)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeDuplicate, outcome)

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(10), got.Spent)
	assert.Equal(t, int64(10), got.Publishers[0].PaidOut)
	assert.Equal(t, 1, h.network.calls)
}

func TestRejectedTransferReleasesReservation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)
	code := h.join(t, c.CampaignID, "alice")
	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
	require.NoError(t, err)

	h.network.reject = true
	d, err := h.queue.Dequeue(ctx)
	require.NoError(t, err)
	_, err = h.settle.Settle(ctx, d.Job)
	require.ErrorIs(t, err, domain.ErrTransferRejected)
	assert.False(t, domain.IsRetryable(err))

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(0), got.Spent)
	assert.Equal(t, int64(0), got.Reserved)
	assert.Nil(t, got.Publishers[0].InFlight)
	assert.Equal(t, int64(10), got.Publishers[0].Unpaid(got.ValuePerUserAmount))
}

func TestLeasedClaimIsBusyUntilExpiry(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 100, 10, 5)
	code := h.join(t, c.CampaignID, "alice")
	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
	require.NoError(t, err)

	// Simulate a worker that claimed the unit and died mid transfer.
	stored := h.load(t, c.CampaignID)
	ref := domain.SettlementReference(c.CampaignID, code, 1)
	stored.Publishers[0].InFlight = &domain.Settlement{
		Reference:  ref,
		Unit:       1,
		Amount:     10,
		ClaimedAt:  h.clock.Now(),
		LeaseUntil: h.clock.Now().Add(time.Minute),
	}
	stored.Reserved = 10
	require.NoError(t, h.repo.Save(ctx, stored, stored.Version))

	job := domain.PayoutJob{ID: "j", CampaignID: c.CampaignID, ReferralCode: code}
	_, err = h.settle.Settle(ctx, job)
	require.ErrorIs(t, err, domain.ErrSettlementBusy)
	assert.True(t, domain.IsRetryable(err))

	h.clock.Advance(2 * time.Minute)
	outcome, err := h.settle.Settle(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, port.OutcomeSettled, outcome)
	assert.Equal(t, []string{ref}, h.network.refs)
	assert.Equal(t, int64(10), h.load(t, c.CampaignID).Spent)
}

// TestWorkerBudgetExhaustion shows the owed-but-unpaid case: two referrals
// are counted while the settled budget still covers one bounty each time.
func TestWorkerBudgetExhaustion(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c := h.activeCampaign(t, 10, 10, 5)
	alice := h.join(t, c.CampaignID, "alice")
	bob := h.join(t, c.CampaignID, "bob")

	_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: alice})
	require.NoError(t, err)
	_, err = h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: bob})
	require.NoError(t, err)
	h.drain(t)

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(10), got.Spent)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	dead, err := h.queue.Dead(ctx, 10)
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.Contains(t, dead[0].Reason, domain.ErrBudgetExhausted.Error())

	var unpaid int64
	for _, p := range got.Publishers {
		unpaid += p.Unpaid(got.ValuePerUserAmount)
	}
	assert.Equal(t, int64(10), unpaid)
}

func TestConcurrentReferralsNeverExceedTarget(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, WithRetryPolicy(RetryPolicy{Initial: time.Millisecond, Max: 5 * time.Millisecond, MaxRetries: 10000}))
	c := h.activeCampaign(t, 1000, 10, 10)

	codes := make([]string, 20)
	for i := range codes {
		codes[i] = h.join(t, c.CampaignID, fmt.Sprintf("p%d", i))
	}

	var (
		wg       sync.WaitGroup
		accepted atomic.Int64
		rejected atomic.Int64
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			_, err := h.referrals.Ingest(ctx, port.ReferralInput{CampaignID: c.CampaignID, ReferralCode: code})
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, domain.ErrTargetReached):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(codes[i%len(codes)])
	}
	wg.Wait()

	got := h.load(t, c.CampaignID)
	assert.Equal(t, int64(10), accepted.Load())
	assert.Equal(t, int64(30), rejected.Load())
	assert.Equal(t, int64(10), got.PublisherCount)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	var referrals int64
	for _, p := range got.Publishers {
		referrals += p.ReferralCount
	}
	assert.Equal(t, got.PublisherCount, referrals)
	assert.Equal(t, 10, h.queue.Len())
}
