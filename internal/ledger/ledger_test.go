package ledger

import (
	"math/rand"
	"testing"
)

func TestSummarizeBalanceRules(t *testing.T) {
	tests := []struct {
		name        string
		accountType string
		entries     []Entry
		wantBalance float64
	}{
		{
			name:        "deposits and payments sum",
			accountType: AccountClient,
			entries: []Entry{
				{Type: TypeDeposit, Status: StatusProcessed, Amount: 100},
				{Type: TypePayment, Status: StatusProcessed, Amount: -20},
			},
			wantBalance: 80,
		},
		{
			name:        "pending withdrawal request excluded",
			accountType: AccountCourier,
			entries: []Entry{
				{Type: TypeCommission, Status: StatusProcessed, Amount: 50},
				{Type: TypeWithdrawalRequest, Status: StatusPending, Amount: -30},
			},
			wantBalance: 50,
		},
		{
			name:        "declined withdrawal leaves no trace",
			accountType: AccountCourier,
			entries: []Entry{
				{Type: TypeCommission, Status: StatusProcessed, Amount: 50},
				{Type: TypeWithdrawalDeclined, Status: StatusDeclined, Amount: -30},
			},
			wantBalance: 50,
		},
		{
			name:        "processed withdrawal debits once",
			accountType: AccountCourier,
			entries: []Entry{
				{Type: TypeCommission, Status: StatusProcessed, Amount: 50},
				{Type: TypeWithdrawalProcessed, Status: StatusProcessed, Amount: -30},
			},
			wantBalance: 20,
		},
		{
			name:        "courier pending commission excluded",
			accountType: AccountCourier,
			entries: []Entry{
				{Type: TypeCommission, Status: StatusProcessed, Amount: 30},
				{Type: TypeCommission, Status: StatusPending, Amount: 70},
			},
			wantBalance: 30,
		},
		{
			name:        "client entries count regardless of status",
			accountType: AccountClient,
			entries: []Entry{
				{Type: TypeDeposit, Status: StatusProcessed, Amount: 30},
				{Type: TypeDeposit, Status: StatusPending, Amount: 70},
			},
			wantBalance: 100,
		},
		{
			name:        "penalty reduces balance",
			accountType: AccountClient,
			entries: []Entry{
				{Type: TypeDeposit, Status: StatusProcessed, Amount: 100},
				{Type: TypePenalty, Status: StatusProcessed, Amount: -15},
			},
			wantBalance: 85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.accountType, tt.entries)
			if got.Balance != tt.wantBalance {
				t.Errorf("Summarize().Balance = %v, want %v", got.Balance, tt.wantBalance)
			}
		})
	}
}

func TestSummarizeEarnings(t *testing.T) {
	entries := []Entry{
		{Type: TypeCommission, Status: StatusProcessed, Amount: 50},
		{Type: TypeReferralBonus, Status: StatusProcessed, Amount: 15},
		{Type: TypeCommission, Status: StatusPending, Amount: 70}, // not processed
		{Type: TypePenalty, Status: StatusProcessed, Amount: -10}, // negative
		{Type: TypeWithdrawalProcessed, Status: StatusProcessed, Amount: -40},
	}

	got := Summarize(AccountCourier, entries)
	if got.TotalEarnings != 65 {
		t.Errorf("TotalEarnings = %v, want 65", got.TotalEarnings)
	}
	// Withdrawals never touch earnings, only balance.
	if got.Balance != 15 {
		t.Errorf("Balance = %v, want 15", got.Balance)
	}
}

func TestSummarizeIsPure(t *testing.T) {
	entries := []Entry{
		{Type: TypeCommission, Status: StatusProcessed, Amount: 30},
		{Type: TypeReferralBonus, Status: StatusProcessed, Amount: 15},
		{Type: TypeWithdrawalProcessed, Status: StatusProcessed, Amount: -20},
		{Type: TypeWithdrawalRequest, Status: StatusPending, Amount: -5},
	}

	first := Summarize(AccountCourier, entries)
	second := Summarize(AccountCourier, entries)
	if first != second {
		t.Errorf("repeated fold differs: %+v vs %+v", first, second)
	}

	// Order independence: shuffle and re-fold.
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]Entry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := Summarize(AccountCourier, shuffled); got != first {
			t.Fatalf("order-dependent fold: %+v vs %+v", got, first)
		}
	}
}

func TestDrifted(t *testing.T) {
	if Drifted(100.0, 100.005) {
		t.Error("drift below epsilon should not trigger reconciliation")
	}
	if !Drifted(100.0, 100.02) {
		t.Error("drift above epsilon should trigger reconciliation")
	}
}
