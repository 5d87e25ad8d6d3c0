package payout

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// The embedded store does not tolerate concurrent writers.
	db.SetMaxOpenConns(1)

	client := repo.NewClient(repo.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { client.Close() })

	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return client
}

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := newTestClient(t)
	logger := slog.New(slog.DiscardHandler)
	return New(client, events.NewPublisher(nil, logger), logger), client
}

// seedCourier creates a courier account with a stats row and, when earned is
// positive, one processed commission entry backing the balance.
func seedCourier(t *testing.T, client *repo.Client, earned float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	u, err := client.User.Create().
		SetPublicID("CR-" + uuid.NewString()[:8]).
		SetName("Tariq Hassan").
		SetEmail(uuid.NewString()[:8] + "@courier.test").
		SetRoles([]string{model.RoleCourier}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed courier: %v", err)
	}

	if _, err := client.CourierStats.Create().
		SetCourierID(u.ID).
		SetCurrentBalance(earned).
		SetTotalEarnings(earned).
		Save(ctx); err != nil {
		t.Fatalf("seed courier stats: %v", err)
	}

	if earned > 0 {
		seedEntry(t, client, u.ID, ledger.TypeCommission, earned)
	}
	return u.ID
}

func seedEntry(t *testing.T, client *repo.Client, accountID uuid.UUID, entryType string, amount float64) *repo.Transaction {
	t.Helper()
	entry, err := client.Transaction.Create().
		SetAccountType(enttx.AccountType(model.AccountCourier)).
		SetAccountID(accountID).
		SetType(enttx.Type(entryType)).
		SetAmount(amount).
		SetStatus(enttx.Status(ledger.StatusProcessed)).
		SetProcessedAt(time.Now()).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed ledger entry: %v", err)
	}
	return entry
}

func balanceOf(t *testing.T, client *repo.Client, accountType string, id uuid.UUID) float64 {
	t.Helper()
	summary, err := wallet.Summarize(context.Background(), client, accountType, id)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	return summary.Balance
}

func TestRequestValidation(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	if _, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 0}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: -5}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Request(ctx, RequestPayout{AccountType: "merchant", AccountID: courierID, Amount: 10}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("unknown account type: got %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 100.5}); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("over balance: got %v, want ErrInsufficientBalance", err)
	}
}

func TestRequestLeavesBalanceIntact(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	entry, err := svc.Request(ctx, RequestPayout{
		AccountType:   model.AccountCourier,
		AccountID:     courierID,
		Amount:        40,
		PaymentMethod: "bank_transfer",
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if entry.Amount != -40 {
		t.Errorf("entry amount = %v, want -40", entry.Amount)
	}
	if string(entry.Status) != ledger.StatusPending {
		t.Errorf("entry status = %s, want pending", entry.Status)
	}
	if string(entry.Type) != ledger.TypeWithdrawalRequest {
		t.Errorf("entry type = %s, want withdrawal_request", entry.Type)
	}

	// A pending request must not move the spendable balance.
	if got := balanceOf(t, client, model.AccountCourier, courierID); got != 100 {
		t.Errorf("balance after request = %v, want 100", got)
	}
}

func TestRequestRejectsSecondPending(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	first, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 40})
	if err != nil {
		t.Fatalf("first request: %v", err)
	}

	if _, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 10}); !errors.Is(err, ErrDuplicatePending) {
		t.Fatalf("second request: got %v, want ErrDuplicatePending", err)
	}

	// Once the pending request is resolved a new one is allowed.
	if _, err := svc.Decline(ctx, first.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if _, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 10}); err != nil {
		t.Fatalf("request after decline: %v", err)
	}
}

func TestDeclineLeavesNoTrace(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	entry, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 40})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	declined, err := svc.Decline(ctx, entry.ID)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}
	if string(declined.Type) != ledger.TypeWithdrawalDeclined {
		t.Errorf("type = %s, want withdrawal_declined", declined.Type)
	}
	if string(declined.Status) != ledger.StatusDeclined {
		t.Errorf("status = %s, want declined", declined.Status)
	}

	if got := balanceOf(t, client, model.AccountCourier, courierID); got != 100 {
		t.Errorf("balance after decline = %v, want 100", got)
	}

	if _, err := svc.Decline(ctx, entry.ID); !errors.Is(err, ErrNotPending) {
		t.Fatalf("second decline: got %v, want ErrNotPending", err)
	}
}

func TestApproveDebitsExactlyOnce(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	entry, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 40})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	processed, err := svc.Approve(ctx, entry.ID, ApproveRequest{EvidenceRef: "payouts/2026/ref-001.jpg"})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if string(processed.Type) != ledger.TypeWithdrawalProcessed {
		t.Errorf("type = %s, want withdrawal_processed", processed.Type)
	}
	if processed.Amount != -40 {
		t.Errorf("amount = %v, want -40", processed.Amount)
	}
	if processed.ProcessedAt == nil {
		t.Error("processed_at not set")
	}

	if got := balanceOf(t, client, model.AccountCourier, courierID); got != 60 {
		t.Errorf("balance after approve = %v, want 60", got)
	}

	// The cached stats balance mirrors the debit in the same transaction.
	stats, err := client.CourierStats.Query().Where(entcs.CourierID(courierID)).Only(ctx)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.CurrentBalance != 60 {
		t.Errorf("cached balance = %v, want 60", stats.CurrentBalance)
	}

	if _, err := svc.Approve(ctx, entry.ID, ApproveRequest{}); !errors.Is(err, ErrNotPending) {
		t.Fatalf("second approve: got %v, want ErrNotPending", err)
	}
}

func TestApproveAmountOverride(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 100)
	ctx := context.Background()

	entry, err := svc.Request(ctx, RequestPayout{AccountType: model.AccountCourier, AccountID: courierID, Amount: 40})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	credit := 35.0
	if _, err := svc.Approve(ctx, entry.ID, ApproveRequest{ProcessedAmount: &credit}); !errors.Is(err, ErrInvalidOverride) {
		t.Fatalf("positive override: got %v, want ErrInvalidOverride", err)
	}

	debit := -35.0
	processed, err := svc.Approve(ctx, entry.ID, ApproveRequest{ProcessedAmount: &debit})
	if err != nil {
		t.Fatalf("approve with override: %v", err)
	}
	if processed.Amount != -35 {
		t.Errorf("amount = %v, want -35", processed.Amount)
	}
	if got := balanceOf(t, client, model.AccountCourier, courierID); got != 65 {
		t.Errorf("balance = %v, want 65", got)
	}
}

func TestGetRejectsNonPayoutEntries(t *testing.T) {
	svc, client := newTestService(t)
	courierID := seedCourier(t, client, 0)
	commission := seedEntry(t, client, courierID, ledger.TypeCommission, 25)
	ctx := context.Background()

	if _, err := svc.Get(ctx, commission.ID); !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("get commission entry: got %v, want ErrPayoutNotFound", err)
	}
	if _, err := svc.Approve(ctx, uuid.Must(uuid.NewV7()), ApproveRequest{}); !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("approve unknown id: got %v, want ErrPayoutNotFound", err)
	}
}
