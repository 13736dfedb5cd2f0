// Package memory provides in-process implementations of the outbound ports.
// They back tests and single replica local runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mesa-bounty/internal/core/domain"
	"mesa-bounty/internal/core/port"
)

// CampaignRepository stores campaign documents in a map. Documents are
// cloned on the way in and out so callers never share state with the store.
type CampaignRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Campaign
	now    func() time.Time
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		items: make(map[int64]*domain.Campaign),
		now:   time.Now,
	}
}

func (r *CampaignRepository) Create(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[c.CampaignID]; exists {
		return fmt.Errorf("%w: campaign %d already exists", domain.ErrInvalidInput, c.CampaignID)
	}
	r.nextID++
	now := r.now().UTC()
	c.ID = r.nextID
	c.Version = 1
	c.CreatedAt, c.UpdatedAt = now, now
	r.items[c.CampaignID] = c.Clone()
	return nil
}

func (r *CampaignRepository) Get(_ context.Context, campaignID int64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[campaignID]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (r *CampaignRepository) Save(_ context.Context, c *domain.Campaign, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[c.CampaignID]
	if !ok || stored.Version != expectedVersion {
		return port.ErrVersionConflict
	}
	c.Version = expectedVersion + 1
	c.UpdatedAt = r.now().UTC()
	r.items[c.CampaignID] = c.Clone()
	return nil
}

func (r *CampaignRepository) List(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.items))
	for _, c := range r.items {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && c.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *CampaignRepository) ListWithOutbox(_ context.Context, limit int) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []int64
	for id, c := range r.items {
		if len(c.Outbox) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *CampaignRepository) TransitionExpired(_ context.Context, cutoff time.Time, from, to domain.CampaignStatus) ([]port.ExpiredCampaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []port.ExpiredCampaign
	now := r.now().UTC()
	for _, c := range r.items {
		if c.Status != from || !c.EndDate.Before(cutoff) {
			continue
		}
		c.Status = to
		c.Version++
		c.UpdatedAt = now
		out = append(out, port.ExpiredCampaign{CampaignID: c.CampaignID, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CampaignID < out[j].CampaignID })
	return out, nil
}
