package domain

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		from    CampaignStatus
		trigger Trigger
		want    CampaignStatus
		wantErr bool
	}{
		{StatusPending, TriggerApprove, StatusActive, false},
		{StatusPending, TriggerTargetReached, StatusPending, true},
		{StatusPending, TriggerExpired, StatusPending, true},
		{StatusActive, TriggerApprove, StatusActive, true},
		{StatusActive, TriggerTargetReached, StatusCompleted, false},
		{StatusActive, TriggerFundsExhausted, StatusCompleted, false},
		{StatusActive, TriggerBudgetExhausted, StatusInactive, false},
		{StatusActive, TriggerExpired, StatusCompleted, false},
		{StatusCompleted, TriggerTargetReached, StatusCompleted, false},
		{StatusCompleted, TriggerBudgetExhausted, StatusCompleted, false},
		{StatusCompleted, TriggerExpired, StatusCompleted, false},
		{StatusCompleted, TriggerApprove, StatusCompleted, true},
		{StatusInactive, TriggerTargetReached, StatusInactive, false},
		{StatusInactive, TriggerExpired, StatusInactive, false},
		{StatusInactive, TriggerApprove, StatusInactive, true},
		{StatusActive, Trigger("bogus"), StatusActive, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"/"+string(tc.trigger), func(t *testing.T) {
			got, err := Transition(tc.from, tc.trigger)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestApplyReportsChange(t *testing.T) {
	c := &Campaign{Status: StatusActive}
	changed, err := c.Apply(TriggerTargetReached)
	if err != nil || !changed {
		t.Fatalf("expected change, got changed=%v err=%v", changed, err)
	}
	changed, err = c.Apply(TriggerBudgetExhausted)
	if err != nil || changed {
		t.Fatalf("expected no-op on terminal state, got changed=%v err=%v", changed, err)
	}
	if c.Status != StatusCompleted {
		t.Fatalf("terminal state left: %s", c.Status)
	}
}
