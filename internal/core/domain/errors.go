package domain

import "errors"

// Validation errors.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidAddress       = errors.New("invalid recipient address")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrReferralCodeNotFound = errors.New("referral code not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrFundingMismatch      = errors.New("funding amount does not match total liquidity")
)

// Guard rejections. They may persist a status transition before surfacing.
var (
	ErrCampaignNotActive  = errors.New("campaign not active")
	ErrCampaignEnded      = errors.New("campaign ended")
	ErrTargetReached      = errors.New("campaign target reached")
	ErrBudgetInsufficient = errors.New("insufficient campaign budget")
)

// Enrollment errors.
var (
	ErrReferralCodeTaken     = errors.New("referral code taken")
	ErrReferralCodeExhausted = errors.New("could not generate a unique referral code")
)

// Settlement errors.
var (
	ErrSettlementUnavailable = errors.New("settlement network unavailable")
	ErrSettlementBusy        = errors.New("settlement already in flight")
	ErrTransferRejected      = errors.New("transfer rejected by settlement network")
	ErrBudgetExhausted       = errors.New("campaign budget exhausted")
)

// Storage errors.
var (
	ErrConcurrentUpdate   = errors.New("campaign updated concurrently")
	ErrInvariantViolation = errors.New("campaign invariant violated")
)

// IsRetryable reports whether err is a transient failure that a later
// attempt may overcome. Invariant guards and rejections are terminal.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrTransferRejected),
		errors.Is(err, ErrBudgetExhausted),
		errors.Is(err, ErrCampaignNotFound),
		errors.Is(err, ErrReferralCodeNotFound),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvariantViolation):
		return false
	}
	return true
}
