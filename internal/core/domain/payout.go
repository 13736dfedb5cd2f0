package domain

import (
	"fmt"
	"time"
)

// PayoutJob is a request to attempt one settlement unit for one publisher.
// It carries no money-bearing decision; the worker re-derives everything
// from the campaign document.
type PayoutJob struct {
	ID               string    `json:"id"`
	CampaignID       int64     `json:"campaignId"`
	ReferralCode     string    `json:"referralCode"`
	RecipientAddress string    `json:"recipientAddress"`
	EnqueuedAt       time.Time `json:"enqueuedAt"`
}

// PayoutDelivery is one delivery of a job by the queue.
type PayoutDelivery struct {
	Job       PayoutJob
	Attempts  int
	LastError string
}

// DeadPayout is a job that exhausted its retries or failed terminally.
type DeadPayout struct {
	Job      PayoutJob `json:"job"`
	Attempts int       `json:"attempts"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failedAt"`
}

// SettlementReference is the idempotency key handed to the settlement
// network for the given payout unit of a publisher.
func SettlementReference(campaignID int64, code string, unit int64) string {
	return fmt.Sprintf("%d:%s:%d", campaignID, code, unit)
}
