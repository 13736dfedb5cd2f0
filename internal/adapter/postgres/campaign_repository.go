package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

const campaignColumns = `
            id,
            campaign_id,
            name,
            owner_id,
            funding_ref,
            total_liquidity,
            value_per_user_amount,
            spent,
            reserved,
            target_number,
            publisher_count,
            status,
            start_date,
            end_date,
            publishers,
            outbox,
            version,
            created_at,
            updated_at`

// CampaignRepository implements port.CampaignRepository on PostgreSQL. Each
// campaign is one row; publishers and the payout outbox are JSONB columns
// written together with the counters in a single conditional UPDATE.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts c and fills its row id, version and timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	publishers, outbox, err := encodeDocument(c)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (
            campaign_id, name, owner_id, funding_ref, total_liquidity,
            value_per_user_amount, spent, reserved, target_number, publisher_count,
            status, start_date, end_date, publishers, outbox, version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,1)
        RETURNING id, version, created_at, updated_at`,
		c.CampaignID, c.Name, c.OwnerID, c.FundingRef, c.TotalLiquidity,
		c.ValuePerUserAmount, c.Spent, c.Reserved, c.TargetNumber, c.PublisherCount,
		string(c.Status), c.StartDate, c.EndDate, publishers, outbox,
	).Scan(&c.ID, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: campaign %d already exists", domain.ErrInvalidInput, c.CampaignID)
		}
		return err
	}
	return nil
}

// Get returns the campaign with the given public id or nil when absent.
func (r *CampaignRepository) Get(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Save writes the whole document if the stored version still equals
// expectedVersion.
func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign, expectedVersion int64) error {
	publishers, outbox, err := encodeDocument(c)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `
        UPDATE campaigns SET
            name = $3,
            spent = $4,
            reserved = $5,
            publisher_count = $6,
            status = $7,
            publishers = $8,
            outbox = $9,
            version = version + 1,
            updated_at = now()
        WHERE campaign_id = $1 AND version = $2
        RETURNING version, updated_at`,
		c.CampaignID, expectedVersion, c.Name, c.Spent, c.Reserved, c.PublisherCount,
		string(c.Status), publishers, outbox,
	).Scan(&c.Version, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrVersionConflict
	}
	return err
}

// List returns campaigns matching filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaigns
        WHERE ($1::text = '' OR status = $1::text)
          AND ($2::text = '' OR owner_id = $2::text)
        ORDER BY created_at DESC
        LIMIT $3`, string(filter.Status), filter.OwnerID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListWithOutbox returns ids of campaigns whose outbox is not empty.
func (r *CampaignRepository) ListWithOutbox(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id FROM campaigns
        WHERE outbox <> '[]'::jsonb
        ORDER BY updated_at
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// TransitionExpired closes every campaign still in status from whose end
// date precedes cutoff. The version bump makes concurrent conditional
// writers conflict and re-evaluate on fresh state.
func (r *CampaignRepository) TransitionExpired(ctx context.Context, cutoff time.Time, from, to domain.CampaignStatus) ([]port.ExpiredCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        UPDATE campaigns SET
            status = $3,
            version = version + 1,
            updated_at = now()
        WHERE status = $1 AND end_date < $2
        RETURNING campaign_id, name`, string(from), cutoff, string(to))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ExpiredCampaign, error) {
		var e port.ExpiredCampaign
		err := row.Scan(&e.CampaignID, &e.Name)
		return e, err
	})
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c                  domain.Campaign
		status             string
		publishers, outbox []byte
	)
	err := row.Scan(
		&c.ID,
		&c.CampaignID,
		&c.Name,
		&c.OwnerID,
		&c.FundingRef,
		&c.TotalLiquidity,
		&c.ValuePerUserAmount,
		&c.Spent,
		&c.Reserved,
		&c.TargetNumber,
		&c.PublisherCount,
		&status,
		&c.StartDate,
		&c.EndDate,
		&publishers,
		&outbox,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Status = domain.CampaignStatus(status)
	if err = json.Unmarshal(publishers, &c.Publishers); err != nil {
		return c, fmt.Errorf("decode publishers of campaign %d: %w", c.CampaignID, err)
	}
	if err = json.Unmarshal(outbox, &c.Outbox); err != nil {
		return c, fmt.Errorf("decode outbox of campaign %d: %w", c.CampaignID, err)
	}
	return c, nil
}

func encodeDocument(c *domain.Campaign) ([]byte, []byte, error) {
	publishers := c.Publishers
	if publishers == nil {
		publishers = []domain.Publisher{}
	}
	outbox := c.Outbox
	if outbox == nil {
		outbox = []domain.PayoutJob{}
	}
	p, err := json.Marshal(publishers)
	if err != nil {
		return nil, nil, fmt.Errorf("encode publishers: %w", err)
	}
	o, err := json.Marshal(outbox)
	if err != nil {
		return nil, nil, fmt.Errorf("encode outbox: %w", err)
	}
	return p, o, nil
}
