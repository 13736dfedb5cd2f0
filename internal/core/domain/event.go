package domain

import (
	"time"
)

// Event types published when campaign state changes.
const (
	EventCampaignStatusChanged = "campaign.status_changed"
	EventPayoutSettled         = "payout.settled"
	EventPayoutDeadLettered    = "payout.dead_lettered"
)

// Event is a record of something that happened to a campaign.
type Event struct {
	Type       string
	CampaignID int64
	Payload    map[string]any
	OccurredAt time.Time
}

// StatusChanged builds the event emitted on a lifecycle transition.
func StatusChanged(c *Campaign, from CampaignStatus, at time.Time) Event {
	return Event{
		Type:       EventCampaignStatusChanged,
		CampaignID: c.CampaignID,
		Payload: map[string]any{
			"from":           string(from),
			"to":             string(c.Status),
			"publisherCount": c.PublisherCount,
			"spent":          c.Spent,
		},
		OccurredAt: at,
	}
}
