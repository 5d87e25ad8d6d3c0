// Package ledger implements the balance arithmetic over append-only
// transaction entries. Everything here is a pure function of the entry
// sequence: cached balance fields are written elsewhere and never read.
package ledger

import "math"

// Entry types, mirroring the transaction schema enum.
const (
	TypeCommission          = "commission"
	TypeReferralBonus       = "referral_bonus"
	TypePenalty             = "penalty"
	TypeDeposit             = "deposit"
	TypePayment             = "payment"
	TypeWithdrawalRequest   = "withdrawal_request"
	TypeWithdrawalProcessed = "withdrawal_processed"
	TypeWithdrawalDeclined  = "withdrawal_declined"
)

// Entry statuses.
const (
	StatusProcessed = "processed"
	StatusPending   = "pending"
	StatusDeclined  = "declined"
	StatusFailed    = "failed"
)

// Account types.
const (
	AccountClient  = "client"
	AccountCourier = "courier"
)

// Epsilon is the currency tolerance used when deciding whether a cached
// balance has drifted from the ledger.
const Epsilon = 0.01

// Entry is one ledger record as seen by the fold.
type Entry struct {
	Type   string
	Status string
	Amount float64
}

// Summary is the result of folding an account's entries.
type Summary struct {
	// Balance is the spendable balance. Requested withdrawals are
	// excluded entirely (reserved, not debited) and declined ones leave
	// no trace; processed withdrawals carry negative amounts and are
	// included, debiting the balance exactly once.
	Balance float64

	// TotalEarnings is lifetime gross earnings: positive processed
	// amounts, unaffected by withdrawals of any kind.
	TotalEarnings float64
}

// Summarize folds the entries for one account. accountType selects the
// courier rule: courier balances only count processed entries, while
// client balances include every non-withdrawal-request/declined entry.
// The fold is order-independent.
func Summarize(accountType string, entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		if countsTowardBalance(accountType, e) {
			s.Balance += e.Amount
		}
		if countsTowardEarnings(e) {
			s.TotalEarnings += e.Amount
		}
	}
	return s
}

func countsTowardBalance(accountType string, e Entry) bool {
	switch e.Type {
	case TypeWithdrawalRequest, TypeWithdrawalDeclined:
		return false
	}
	if accountType == AccountCourier && e.Status != StatusProcessed {
		return false
	}
	return true
}

func countsTowardEarnings(e Entry) bool {
	if e.Amount <= 0 || e.Status != StatusProcessed {
		return false
	}
	switch e.Type {
	case TypeWithdrawalRequest, TypeWithdrawalProcessed, TypeWithdrawalDeclined:
		return false
	}
	return true
}

// Drifted reports whether a cached value differs from the freshly computed
// one by more than the currency epsilon.
func Drifted(cached, computed float64) bool {
	return math.Abs(cached-computed) > Epsilon
}
