package domain

import (
	"fmt"
	"strings"
	"time"
)

// Campaign represents a funded referral campaign together with the
// publishers enrolled in it. It is persisted as a single document and every
// change to it is applied as one conditional write keyed on Version.
// Amounts are stored in integer units (e.g. cents).
type Campaign struct {
	ID         int64 // storage row id
	CampaignID int64 // public identifier used by publishers and webhooks
	Name       string
	OwnerID    string
	FundingRef string

	TotalLiquidity     int64
	ValuePerUserAmount int64
	Spent              int64 // confirmed settlements only
	Reserved           int64 // bounties claimed by in-flight settlements
	TargetNumber       int64
	PublisherCount     int64

	Status    CampaignStatus
	StartDate time.Time
	EndDate   time.Time

	Publishers []Publisher
	Outbox     []PayoutJob

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the static invariants a campaign must satisfy at creation.
func (c *Campaign) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case c.CampaignID <= 0:
		return fmt.Errorf("%w: campaign id must be positive", ErrInvalidInput)
	case c.TotalLiquidity <= 0:
		return fmt.Errorf("%w: total liquidity must be positive", ErrInvalidInput)
	case c.ValuePerUserAmount <= 0:
		return fmt.Errorf("%w: value per user must be positive", ErrInvalidInput)
	case c.ValuePerUserAmount > c.TotalLiquidity:
		return fmt.Errorf("%w: value per user exceeds total liquidity", ErrInvalidInput)
	case c.TargetNumber <= 0:
		return fmt.Errorf("%w: target number must be positive", ErrInvalidInput)
	case c.StartDate.IsZero() || c.EndDate.IsZero():
		return fmt.Errorf("%w: start and end date are required", ErrInvalidInput)
	case c.StartDate.After(c.EndDate):
		return fmt.Errorf("%w: start date must not be after end date", ErrInvalidInput)
	case !c.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, c.Status)
	}
	return nil
}

// CheckInvariants verifies the runtime invariants that must hold after
// every mutation. A violation means a bug in the caller, never bad input.
func (c *Campaign) CheckInvariants() error {
	if c.Spent < 0 || c.Reserved < 0 || c.PublisherCount < 0 {
		return fmt.Errorf("%w: negative counter on campaign %d", ErrInvariantViolation, c.CampaignID)
	}
	if c.Spent+c.Reserved > c.TotalLiquidity {
		return fmt.Errorf("%w: campaign %d commits %d of %d", ErrInvariantViolation, c.CampaignID, c.Spent+c.Reserved, c.TotalLiquidity)
	}
	if c.PublisherCount > c.TargetNumber {
		return fmt.Errorf("%w: campaign %d counted %d of %d referrals", ErrInvariantViolation, c.CampaignID, c.PublisherCount, c.TargetNumber)
	}
	codes := make(map[string]struct{}, len(c.Publishers))
	for i := range c.Publishers {
		p := &c.Publishers[i]
		if _, dup := codes[p.ReferralCode]; dup {
			return fmt.Errorf("%w: duplicate referral code %s", ErrInvariantViolation, p.ReferralCode)
		}
		codes[p.ReferralCode] = struct{}{}
		if p.PaidOut > p.ReferralCount*c.ValuePerUserAmount {
			return fmt.Errorf("%w: publisher %s paid beyond referrals", ErrInvariantViolation, p.ReferralCode)
		}
	}
	return nil
}

// RemainingBudget is the liquidity not yet settled.
func (c *Campaign) RemainingBudget() int64 {
	return c.TotalLiquidity - c.Spent
}

// BudgetFits reports whether one more bounty fits into the settled budget.
func (c *Campaign) BudgetFits() bool {
	return c.Spent+c.ValuePerUserAmount <= c.TotalLiquidity
}

// ClaimFits reports whether one more bounty fits once in-flight
// settlements are accounted for.
func (c *Campaign) ClaimFits() bool {
	return c.Spent+c.Reserved+c.ValuePerUserAmount <= c.TotalLiquidity
}

// TargetReached reports whether the referral target has been met.
func (c *Campaign) TargetReached() bool {
	return c.PublisherCount >= c.TargetNumber
}

// Ended reports whether now is past the campaign end date.
func (c *Campaign) Ended(now time.Time) bool {
	return now.After(c.EndDate)
}

// Apply feeds trigger through the state machine and reports whether the
// status changed.
func (c *Campaign) Apply(trigger Trigger) (bool, error) {
	next, err := Transition(c.Status, trigger)
	if err != nil {
		return false, err
	}
	changed := next != c.Status
	c.Status = next
	return changed, nil
}

// Publisher returns the membership holding code, or nil.
func (c *Campaign) Publisher(code string) *Publisher {
	for i := range c.Publishers {
		if c.Publishers[i].ReferralCode == code {
			return &c.Publishers[i]
		}
	}
	return nil
}

// PublisherByIdentity returns the membership of identity, or nil.
func (c *Campaign) PublisherByIdentity(identity string) *Publisher {
	for i := range c.Publishers {
		if c.Publishers[i].Identity == identity {
			return &c.Publishers[i]
		}
	}
	return nil
}

// HasReferralCode reports whether code is already taken in this campaign.
func (c *Campaign) HasReferralCode(code string) bool {
	return c.Publisher(code) != nil
}

// AddPublisher appends a new membership. Identities and referral codes are
// unique within a campaign.
func (c *Campaign) AddPublisher(p Publisher) error {
	if c.PublisherByIdentity(p.Identity) != nil {
		return fmt.Errorf("%w: identity %s already enrolled", ErrInvalidInput, p.Identity)
	}
	if c.HasReferralCode(p.ReferralCode) {
		return fmt.Errorf("%w: referral code %s", ErrReferralCodeTaken, p.ReferralCode)
	}
	c.Publishers = append(c.Publishers, p)
	return nil
}

// Clone returns a deep copy that can be mutated independently.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	if c.Publishers != nil {
		out.Publishers = make([]Publisher, len(c.Publishers))
		for i, p := range c.Publishers {
			if p.InFlight != nil {
				claim := *p.InFlight
				p.InFlight = &claim
			}
			out.Publishers[i] = p
		}
	}
	if c.Outbox != nil {
		out.Outbox = append([]PayoutJob(nil), c.Outbox...)
	}
	return &out
}
