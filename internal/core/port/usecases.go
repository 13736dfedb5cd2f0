package port

import (
	"context"
	"time"

	"mesa-bounty/internal/core/domain"
)

// CampaignUseCase covers campaign administration and read access.
type CampaignUseCase interface {
	// Create registers a pending campaign funded by a verified transaction.
	Create(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	// Approve moves a pending campaign to active.
	Approve(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	// Get returns a campaign or domain.ErrCampaignNotFound.
	Get(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// DeadPayouts lists payout jobs that will not be retried.
	DeadPayouts(ctx context.Context, limit int) ([]domain.DeadPayout, error)
}

// EnrollmentUseCase enrolls publishers into campaigns.
type EnrollmentUseCase interface {
	// Join enrolls identity into a campaign. Joining twice returns the
	// existing referral code.
	Join(ctx context.Context, in JoinInput) (*JoinResult, error)
}

// ReferralUseCase ingests referral events reported by the webhook.
type ReferralUseCase interface {
	Ingest(ctx context.Context, in ReferralInput) (*ReferralResult, error)
}

// SettlementUseCase settles one payout job against the settlement network.
type SettlementUseCase interface {
	Settle(ctx context.Context, job domain.PayoutJob) (SettlementOutcome, error)
	// Abandon drops an unleased claim left behind by a job that is given
	// up, returning its reservation to the campaign budget.
	Abandon(ctx context.Context, job domain.PayoutJob) error
}

// ExpiryUseCase closes active campaigns whose end date has passed.
type ExpiryUseCase interface {
	Sweep(ctx context.Context) (*SweepReport, error)
}

// OutboxRelay moves payout jobs from campaign outboxes onto the queue.
type OutboxRelay interface {
	FlushCampaign(ctx context.Context, campaignID int64) (int, error)
	FlushPending(ctx context.Context) (int, error)
}

type CreateCampaignInput struct {
	Name               string
	OwnerID            string
	FundingRef         string
	FundingAmount      int64
	TotalLiquidity     int64
	ValuePerUserAmount int64
	TargetNumber       int64
	StartDate          time.Time
	EndDate            time.Time
}

type JoinInput struct {
	CampaignID int64
	Identity   string
	Address    string
}

// JoinStatus tells a first enrollment apart from a repeated one.
type JoinStatus string

const (
	JoinStatusJoined        JoinStatus = "joined"
	JoinStatusAlreadyJoined JoinStatus = "already_joined"
)

type JoinResult struct {
	Status             JoinStatus
	ReferralCode       string
	CampaignName       string
	ValuePerUserAmount int64
	TargetNumber       int64
	PublisherCount     int64
	RemainingBudget    int64
}

type ReferralInput struct {
	CampaignID   int64
	ReferralCode string
}

// ReferralResult reflects the campaign after the referral was counted.
type ReferralResult struct {
	CampaignID      int64
	ReferralCode    string
	PublisherCount  int64
	RemainingBudget int64
	CampaignStatus  domain.CampaignStatus
	PayoutQueued    bool
}

// SettlementOutcome reports what handling a payout job did.
type SettlementOutcome string

const (
	OutcomeSettled   SettlementOutcome = "settled"
	OutcomeDuplicate SettlementOutcome = "duplicate"
)

type SweepReport struct {
	Processed     int
	CampaignIDs   []int64
	CampaignNames []string
	Cutoff        time.Time
	// Skipped is set when another process holds the sweep lock.
	Skipped bool
}
