package domain

import "fmt"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusPending   CampaignStatus = "pending"   // awaiting approval
	StatusActive    CampaignStatus = "active"    // accepting enrollments and referrals
	StatusInactive  CampaignStatus = "inactive"  // budget exhausted short of target
	StatusCompleted CampaignStatus = "completed" // target reached, funds spent or expired
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further budget may be consumed in s.
func (s CampaignStatus) Terminal() bool {
	return s == StatusInactive || s == StatusCompleted
}

// Trigger is an event that may move a campaign between states.
type Trigger string

const (
	TriggerApprove         Trigger = "approve"
	TriggerTargetReached   Trigger = "target_reached"
	TriggerFundsExhausted  Trigger = "funds_exhausted"
	TriggerBudgetExhausted Trigger = "budget_exhausted"
	TriggerExpired         Trigger = "expired"
)

var transitions = map[CampaignStatus]map[Trigger]CampaignStatus{
	StatusPending: {
		TriggerApprove: StatusActive,
	},
	StatusActive: {
		TriggerTargetReached:   StatusCompleted,
		TriggerFundsExhausted:  StatusCompleted,
		TriggerBudgetExhausted: StatusInactive,
		TriggerExpired:         StatusCompleted,
	},
}

// Transition returns the status reached from current on trigger. Terminal
// states absorb every lifecycle trigger, so re-applying a transition that
// already happened (or racing one) is a no-op. Nothing leaves a terminal
// state.
func Transition(current CampaignStatus, trigger Trigger) (CampaignStatus, error) {
	if current.Terminal() && trigger != TriggerApprove {
		if _, known := transitions[StatusActive][trigger]; known {
			return current, nil
		}
	}
	next, ok := transitions[current][trigger]
	if !ok {
		return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, trigger, current)
	}
	return next, nil
}
