// Package payout implements the withdrawal workflow. Payout rows are the
// one documented exception to the append-only ledger: approve and decline
// mutate the pending entry in place, and the balance fold's exclusion rules
// make that arithmetic come out right without offsetting entries.
package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RequestPayout struct {
	AccountType   string
	AccountID     uuid.UUID
	Amount        float64
	PaymentMethod string
}

type ApproveRequest struct {
	// ProcessedAmount overrides the debited amount. Stored entries are
	// negative, so the override must be negative too.
	ProcessedAmount *float64
	EvidenceRef     string
}

type ListRequest struct {
	Status  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Request opens a withdrawal. At most one pending request may exist
	// per account, and the amount is checked against the freshly folded
	// balance, never the cache.
	Request(ctx context.Context, req RequestPayout) (*repo.Transaction, error)

	// Approve turns the pending entry into a processed withdrawal.
	Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*repo.Transaction, error)

	// Decline marks the pending entry declined, restoring the balance to
	// exactly its pre-request value.
	Decline(ctx context.Context, id uuid.UUID) (*repo.Transaction, error)

	Get(ctx context.Context, id uuid.UUID) (*repo.Transaction, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Transaction, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type payoutService struct {
	db     *repo.Client
	pub    *events.Publisher
	logger *slog.Logger
}

func New(db *repo.Client, pub *events.Publisher, logger *slog.Logger) Service {
	return &payoutService{db: db, pub: pub, logger: logger}
}

func (s *payoutService) Request(ctx context.Context, req RequestPayout) (*repo.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.AccountType != model.AccountClient && req.AccountType != model.AccountCourier {
		return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidAmount, req.AccountType)
	}

	now := time.Now()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	// The uniqueness check runs inside the insert's transaction so two
	// concurrent requests cannot both observe "no pending request".
	pending, err := tx.Transaction.Query().
		Where(
			enttx.AccountTypeEQ(enttx.AccountType(req.AccountType)),
			enttx.AccountID(req.AccountID),
			enttx.TypeEQ(enttx.Type(ledger.TypeWithdrawalRequest)),
			enttx.StatusEQ(enttx.Status(ledger.StatusPending)),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check pending request: %w", err)
	}
	if pending {
		err = ErrDuplicatePending
		return nil, err
	}

	// Pending and declined withdrawals are excluded from the fold, so a
	// request never blocks its own balance check.
	summary, err := wallet.Summarize(ctx, tx.Client(), req.AccountType, req.AccountID)
	if err != nil {
		return nil, err
	}
	if req.Amount > summary.Balance+ledger.Epsilon {
		err = ErrInsufficientBalance
		return nil, err
	}

	entry, err := tx.Transaction.Create().
		SetAccountType(enttx.AccountType(req.AccountType)).
		SetAccountID(req.AccountID).
		SetType(enttx.Type(ledger.TypeWithdrawalRequest)).
		SetAmount(-req.Amount).
		SetStatus(enttx.Status(ledger.StatusPending)).
		SetPaymentMethod(req.PaymentMethod).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create withdrawal request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.pub.Publish(events.SubjectPayoutRequested, events.PayoutEvent{
		TransactionID: entry.ID,
		CourierID:     req.AccountID,
		Amount:        req.Amount,
		At:            now,
	})
	return entry, nil
}

func (s *payoutService) Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*repo.Transaction, error) {
	entry, err := s.getPending(ctx, id)
	if err != nil {
		return nil, err
	}

	amount := entry.Amount
	if req.ProcessedAmount != nil {
		if *req.ProcessedAmount >= 0 {
			return nil, ErrInvalidOverride
		}
		amount = *req.ProcessedAmount
	}

	now := time.Now()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.Transaction.UpdateOne(entry).
		SetType(enttx.Type(ledger.TypeWithdrawalProcessed)).
		SetStatus(enttx.Status(ledger.StatusProcessed)).
		SetAmount(amount).
		SetProcessedAt(now)
	if req.EvidenceRef != "" {
		upd.SetEvidenceRef(req.EvidenceRef)
	}

	processed, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve payout: %w", err)
	}

	// Processed withdrawals enter the fold, so mirror the debit on the
	// cached balance.
	if err = s.adjustCache(ctx, tx, entry, amount); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.pub.Publish(events.SubjectPayoutDecided, events.PayoutEvent{
		TransactionID: processed.ID,
		CourierID:     entry.AccountID,
		Amount:        -amount,
		Decision:      "approved",
		At:            now,
	})
	return processed, nil
}

func (s *payoutService) Decline(ctx context.Context, id uuid.UUID) (*repo.Transaction, error) {
	entry, err := s.getPending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	declined, err := s.db.Transaction.UpdateOne(entry).
		SetType(enttx.Type(ledger.TypeWithdrawalDeclined)).
		SetStatus(enttx.Status(ledger.StatusDeclined)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("decline payout: %w", err)
	}

	s.pub.Publish(events.SubjectPayoutDecided, events.PayoutEvent{
		TransactionID: declined.ID,
		CourierID:     entry.AccountID,
		Amount:        -entry.Amount,
		Decision:      "declined",
		At:            now,
	})
	return declined, nil
}

func (s *payoutService) Get(ctx context.Context, id uuid.UUID) (*repo.Transaction, error) {
	entry, err := s.db.Transaction.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	if !isPayoutType(string(entry.Type)) {
		return nil, ErrPayoutNotFound
	}
	return entry, nil
}

func (s *payoutService) List(ctx context.Context, req ListRequest) ([]*repo.Transaction, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Transaction.Query().
		Where(enttx.TypeIn(
			enttx.Type(ledger.TypeWithdrawalRequest),
			enttx.Type(ledger.TypeWithdrawalProcessed),
			enttx.Type(ledger.TypeWithdrawalDeclined),
		))
	if req.Status != nil {
		q = q.Where(enttx.StatusEQ(enttx.Status(*req.Status)))
	}

	list, err := q.
		Order(enttx.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	return list, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *payoutService) getPending(ctx context.Context, id uuid.UUID) (*repo.Transaction, error) {
	entry, err := s.db.Transaction.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	if string(entry.Type) != ledger.TypeWithdrawalRequest {
		return nil, ErrPayoutNotFound
	}
	if string(entry.Status) != ledger.StatusPending {
		return nil, ErrNotPending
	}
	return entry, nil
}

func (s *payoutService) adjustCache(ctx context.Context, tx *repo.Tx, entry *repo.Transaction, amount float64) error {
	switch string(entry.AccountType) {
	case model.AccountCourier:
		stats, err := tx.CourierStats.Query().
			Where(entcs.CourierID(entry.AccountID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get courier stats: %w", err)
		}
		return tx.CourierStats.UpdateOne(stats).
			AddCurrentBalance(amount).
			Exec(ctx)
	case model.AccountClient:
		err := tx.User.UpdateOneID(entry.AccountID).
			AddWalletBalance(amount).
			Exec(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return fmt.Errorf("update balance cache: %w", err)
		}
	}
	return nil
}

func isPayoutType(t string) bool {
	switch t {
	case ledger.TypeWithdrawalRequest, ledger.TypeWithdrawalProcessed, ledger.TypeWithdrawalDeclined:
		return true
	}
	return false
}
