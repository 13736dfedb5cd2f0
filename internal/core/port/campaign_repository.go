package port

import (
	"context"
	"errors"
	"time"

	"mesa-bounty/internal/core/domain"
)

// ErrVersionConflict is returned by Save when the stored version no longer
// matches the expected one.
var ErrVersionConflict = errors.New("campaign version conflict")

// CampaignRepository defines the persistence layer for campaign documents.
// It is an outbound port in hexagonal architecture. A campaign and all of
// its publishers are read and written as one unit; every write is
// conditional on the version that was read.
type CampaignRepository interface {
	// Create stores a new campaign and assigns its row id and first version.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns the campaign with the given public id or nil when absent.
	Get(ctx context.Context, campaignID int64) (*domain.Campaign, error)
	// Save replaces the stored document when its version equals
	// expectedVersion and bumps c.Version. It returns ErrVersionConflict
	// otherwise.
	Save(ctx context.Context, c *domain.Campaign, expectedVersion int64) error
	// List returns campaigns matching filter ordered by creation time.
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// ListWithOutbox returns ids of campaigns holding unrelayed payout jobs.
	ListWithOutbox(ctx context.Context, limit int) ([]int64, error)
	// TransitionExpired moves every campaign in status from whose end date
	// is before cutoff into status to, in a single statement, bumping the
	// version of each affected document.
	TransitionExpired(ctx context.Context, cutoff time.Time, from, to domain.CampaignStatus) ([]ExpiredCampaign, error)
}

// CampaignFilter narrows List results. Zero values mean no restriction.
type CampaignFilter struct {
	Status  domain.CampaignStatus
	OwnerID string
	Limit   int
}

// ExpiredCampaign identifies a campaign closed by the expiry sweep.
type ExpiredCampaign struct {
	CampaignID int64
	Name       string
}
