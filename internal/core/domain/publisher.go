package domain

import "time"

// Publisher is a membership of one identity in one campaign. It is owned by
// the campaign document and never shared or deleted.
type Publisher struct {
	Identity      string      `json:"identity"`
	Address       string      `json:"address"`
	ReferralCode  string      `json:"referralCode"`
	ReferralCount int64       `json:"referralCount"`
	PaidOut       int64       `json:"paidOut"`
	JoinedAt      time.Time   `json:"joinedAt"`
	InFlight      *Settlement `json:"inFlight,omitempty"`
}

// PaidReferrals is the number of referrals already settled at bounty value.
func (p *Publisher) PaidReferrals(value int64) int64 {
	if value <= 0 {
		return 0
	}
	return p.PaidOut / value
}

// Unpaid is the amount owed for counted referrals that were not settled.
func (p *Publisher) Unpaid(value int64) int64 {
	return p.ReferralCount*value - p.PaidOut
}

// Settlement is a claimed settlement unit for one publisher. At most one is
// in flight per publisher; it pins the budget reservation and the transfer
// reference until the settlement network gives a definitive answer.
type Settlement struct {
	Reference  string    `json:"reference"`
	Unit       int64     `json:"unit"`
	Amount     int64     `json:"amount"`
	ClaimedAt  time.Time `json:"claimedAt"`
	LeaseUntil time.Time `json:"leaseUntil"`
}

// Leased reports whether a worker still holds the claim at now.
func (s *Settlement) Leased(now time.Time) bool {
	return now.Before(s.LeaseUntil)
}
