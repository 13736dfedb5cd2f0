package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() *Campaign {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Campaign{
		CampaignID:         42,
		Name:               "launch",
		TotalLiquidity:     1000,
		ValuePerUserAmount: 100,
		TargetNumber:       10,
		Status:             StatusPending,
		StartDate:          start,
		EndDate:            start.AddDate(0, 1, 0),
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validCampaign().Validate())

	mutations := map[string]func(c *Campaign){
		"empty name":        func(c *Campaign) { c.Name = " " },
		"zero liquidity":    func(c *Campaign) { c.TotalLiquidity = 0 },
		"zero value":        func(c *Campaign) { c.ValuePerUserAmount = 0 },
		"value over budget": func(c *Campaign) { c.ValuePerUserAmount = 2000 },
		"zero target":       func(c *Campaign) { c.TargetNumber = 0 },
		"dates reversed":    func(c *Campaign) { c.EndDate = c.StartDate.Add(-time.Hour) },
		"unknown status":    func(c *Campaign) { c.Status = "paused" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			c := validCampaign()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
		})
	}
}

func TestCheckInvariants(t *testing.T) {
	c := validCampaign()
	require.NoError(t, c.AddPublisher(Publisher{Identity: "alice", ReferralCode: "AAAA"}))
	require.NoError(t, c.CheckInvariants())

	c.Spent, c.Reserved = 900, 200
	assert.ErrorIs(t, c.CheckInvariants(), ErrInvariantViolation)

	c.Spent, c.Reserved = 0, 0
	c.PublisherCount = c.TargetNumber + 1
	assert.ErrorIs(t, c.CheckInvariants(), ErrInvariantViolation)

	c.PublisherCount = 1
	c.Publishers[0].ReferralCount = 1
	c.Publishers[0].PaidOut = 200
	assert.ErrorIs(t, c.CheckInvariants(), ErrInvariantViolation)
}

func TestAddPublisherRejectsDuplicates(t *testing.T) {
	c := validCampaign()
	require.NoError(t, c.AddPublisher(Publisher{Identity: "alice", ReferralCode: "AAAA"}))

	err := c.AddPublisher(Publisher{Identity: "bob", ReferralCode: "AAAA"})
	assert.ErrorIs(t, err, ErrReferralCodeTaken)

	err = c.AddPublisher(Publisher{Identity: "alice", ReferralCode: "BBBB"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, c.Publishers, 1)
}

func TestCloneIsDeep(t *testing.T) {
	c := validCampaign()
	require.NoError(t, c.AddPublisher(Publisher{Identity: "alice", ReferralCode: "AAAA"}))
	c.Publishers[0].InFlight = &Settlement{Reference: "ref", Amount: 100}
	c.Outbox = []PayoutJob{{ID: "j1"}}

	cp := c.Clone()
	cp.Publishers[0].ReferralCount = 5
	cp.Publishers[0].InFlight.Amount = 1
	cp.Outbox[0].ID = "j2"

	assert.Equal(t, int64(0), c.Publishers[0].ReferralCount)
	assert.Equal(t, int64(100), c.Publishers[0].InFlight.Amount)
	assert.Equal(t, "j1", c.Outbox[0].ID)
}

func TestBudgetHelpers(t *testing.T) {
	c := validCampaign()
	c.Spent = 900
	assert.True(t, c.BudgetFits())
	assert.Equal(t, int64(100), c.RemainingBudget())

	c.Reserved = 100
	assert.False(t, c.ClaimFits())

	c.Spent = 950
	assert.False(t, c.BudgetFits())
}

func TestPublisherUnpaid(t *testing.T) {
	p := Publisher{ReferralCount: 3, PaidOut: 200}
	assert.Equal(t, int64(2), p.PaidReferrals(100))
	assert.Equal(t, int64(100), p.Unpaid(100))
	assert.Equal(t, int64(0), p.PaidReferrals(0))
}

func TestSettlementReference(t *testing.T) {
	assert.Equal(t, "42:ABCD2345:3", SettlementReference(42, "ABCD2345", 3))
}

func TestValidateAddress(t *testing.T) {
	good := base58.Encode(make([]byte, AddressLength))
	require.NoError(t, ValidateAddress(good))

	for _, bad := range []string{"", "   ", "0OIl", base58.Encode(make([]byte, 20))} {
		err := ValidateAddress(bad)
		if !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("expected ErrInvalidAddress for %q, got %v", bad, err)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrSettlementUnavailable))
	assert.True(t, IsRetryable(ErrSettlementBusy))
	assert.True(t, IsRetryable(errors.New("redis: connection refused")))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(ErrTransferRejected))
	assert.False(t, IsRetryable(ErrBudgetExhausted))
	assert.False(t, IsRetryable(ErrReferralCodeNotFound))
}
