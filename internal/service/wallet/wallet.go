package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Type    *string
	Page    int
	PerPage int
}

type DepositRequest struct {
	ClientID      uuid.UUID
	Amount        float64
	PaymentMethod string
	EvidenceRef   string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// List returns ledger entries for one account, newest first.
	List(ctx context.Context, accountType string, accountID uuid.UUID, req ListRequest) ([]*repo.Transaction, error)

	// Summary folds the full ledger of one account.
	Summary(ctx context.Context, accountType string, accountID uuid.UUID) (ledger.Summary, error)

	// Deposit records an operator-confirmed client deposit.
	Deposit(ctx context.Context, req DepositRequest) (*repo.Transaction, error)

	// Reconcile recomputes an account's balance from the ledger and repairs
	// the cached value if it drifted. Returns the authoritative summary and
	// whether drift was found.
	Reconcile(ctx context.Context, accountType string, accountID uuid.UUID) (ledger.Summary, bool, error)

	// ReconcileAll sweeps every account. Used by the admin endpoint and the
	// periodic job.
	ReconcileAll(ctx context.Context) (drifted int, err error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type walletService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &walletService{db: db, logger: logger}
}

func (s *walletService) List(ctx context.Context, accountType string, accountID uuid.UUID, req ListRequest) ([]*repo.Transaction, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Transaction.Query().
		Where(
			enttx.AccountTypeEQ(enttx.AccountType(accountType)),
			enttx.AccountID(accountID),
		)
	if req.Type != nil {
		q = q.Where(enttx.TypeEQ(enttx.Type(*req.Type)))
	}

	txns, err := q.
		Order(enttx.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

func (s *walletService) Summary(ctx context.Context, accountType string, accountID uuid.UUID) (ledger.Summary, error) {
	return Summarize(ctx, s.db, accountType, accountID)
}

func (s *walletService) Deposit(ctx context.Context, req DepositRequest) (*repo.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	client, err := s.db.User.Query().
		Where(entuser.ID(req.ClientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	entry, err := tx.Transaction.Create().
		SetAccountType(enttx.AccountType(model.AccountClient)).
		SetAccountID(client.ID).
		SetType(enttx.Type(ledger.TypeDeposit)).
		SetAmount(req.Amount).
		SetStatus(enttx.Status(ledger.StatusProcessed)).
		SetPaymentMethod(req.PaymentMethod).
		SetEvidenceRef(req.EvidenceRef).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create deposit entry: %w", err)
	}

	err = tx.User.UpdateOne(client).
		AddWalletBalance(req.Amount).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update balance cache: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return entry, nil
}

func (s *walletService) Reconcile(ctx context.Context, accountType string, accountID uuid.UUID) (ledger.Summary, bool, error) {
	summary, err := Summarize(ctx, s.db, accountType, accountID)
	if err != nil {
		return ledger.Summary{}, false, err
	}

	switch accountType {
	case model.AccountClient:
		client, err := s.db.User.Query().
			Where(entuser.ID(accountID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return ledger.Summary{}, false, ErrAccountNotFound
			}
			return ledger.Summary{}, false, fmt.Errorf("get client: %w", err)
		}

		if !ledger.Drifted(client.WalletBalance, summary.Balance) {
			return summary, false, nil
		}
		s.logger.Warn("wallet balance drift repaired",
			"account_type", accountType,
			"account_id", accountID,
			"cached", client.WalletBalance,
			"computed", summary.Balance,
		)
		if err := s.db.User.UpdateOne(client).
			SetWalletBalance(summary.Balance).
			Exec(ctx); err != nil {
			return ledger.Summary{}, false, fmt.Errorf("repair balance cache: %w", err)
		}
		return summary, true, nil

	case model.AccountCourier:
		stats, err := s.db.CourierStats.Query().
			Where(entcs.CourierID(accountID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return ledger.Summary{}, false, ErrAccountNotFound
			}
			return ledger.Summary{}, false, fmt.Errorf("get courier stats: %w", err)
		}

		if !ledger.Drifted(stats.CurrentBalance, summary.Balance) &&
			!ledger.Drifted(stats.TotalEarnings, summary.TotalEarnings) {
			return summary, false, nil
		}
		s.logger.Warn("courier balance drift repaired",
			"account_id", accountID,
			"cached_balance", stats.CurrentBalance,
			"computed_balance", summary.Balance,
		)
		if err := s.db.CourierStats.UpdateOne(stats).
			SetCurrentBalance(summary.Balance).
			SetTotalEarnings(summary.TotalEarnings).
			Exec(ctx); err != nil {
			return ledger.Summary{}, false, fmt.Errorf("repair courier cache: %w", err)
		}
		return summary, true, nil

	default:
		return ledger.Summary{}, false, fmt.Errorf("unknown account type %q", accountType)
	}
}

func (s *walletService) ReconcileAll(ctx context.Context) (int, error) {
	// Sweep every account that has at least one ledger entry.
	var accounts []struct {
		AccountType string    `json:"account_type"`
		AccountID   uuid.UUID `json:"account_id"`
	}
	err := s.db.Transaction.Query().
		GroupBy(enttx.FieldAccountType, enttx.FieldAccountID).
		Scan(ctx, &accounts)
	if err != nil {
		return 0, fmt.Errorf("list ledger accounts: %w", err)
	}

	drifted := 0
	for _, acc := range accounts {
		_, fixed, err := s.Reconcile(ctx, acc.AccountType, acc.AccountID)
		if err != nil {
			s.logger.Warn("reconcile account failed",
				"account_type", acc.AccountType,
				"account_id", acc.AccountID,
				"error", err,
			)
			continue
		}
		if fixed {
			drifted++
		}
	}

	return drifted, nil
}

// ---------------------------------------------------------------------------
// Helpers shared with other services
// ---------------------------------------------------------------------------

// Summarize folds every ledger entry of one account. Callers inside a
// transaction pass tx.Client() so the fold sees uncommitted rows.
func Summarize(ctx context.Context, db *repo.Client, accountType string, accountID uuid.UUID) (ledger.Summary, error) {
	rows, err := db.Transaction.Query().
		Where(
			enttx.AccountTypeEQ(enttx.AccountType(accountType)),
			enttx.AccountID(accountID),
		).
		All(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("load ledger: %w", err)
	}

	entries := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ledger.Entry{
			Type:   string(row.Type),
			Status: string(row.Status),
			Amount: row.Amount,
		})
	}

	return ledger.Summarize(accountType, entries), nil
}
