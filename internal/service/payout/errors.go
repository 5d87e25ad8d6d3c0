package payout

import "errors"

var (
	ErrPayoutNotFound      = errors.New("payout request not found")
	ErrNotPending          = errors.New("payout request is not pending")
	ErrDuplicatePending    = errors.New("a pending payout request already exists")
	ErrInsufficientBalance = errors.New("payout exceeds available balance")
	ErrInvalidAmount       = errors.New("payout amount must be positive")
	ErrInvalidOverride     = errors.New("processed amount must stay a debit")
)
