package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/counter"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
	"github.com/karimsaad/wasel_backend/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateClientRequest struct {
	Name                string
	Email               string
	Phone               string
	FlatRateFee         float64
	PriorityMultipliers map[string]float64
	ReferredBy          *uuid.UUID
}

type CreateCourierRequest struct {
	Name             string
	Email            string
	Phone            string
	Zones            []string
	CommissionScheme string
	CommissionValue  float64
	ReferredBy       *uuid.UUID
}

type UpdatePricingRequest struct {
	FlatRateFee         *float64
	PriorityMultipliers map[string]float64
}

type UpdateCommissionRequest struct {
	Scheme string
	Value  float64
}

type PenaltyRequest struct {
	AccountType string
	AccountID   uuid.UUID
	Amount      float64
	Reason      string
}

type ListRequest struct {
	Role    *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*repo.User, error)
	CreateCourier(ctx context.Context, req CreateCourierRequest) (*repo.User, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.User, error)
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)

	UpdatePricing(ctx context.Context, clientID uuid.UUID, req UpdatePricingRequest) (*repo.User, error)
	UpdateZones(ctx context.Context, courierID uuid.UUID, zones []string) (*repo.User, error)

	// UpdateCommission changes the scheme for future assignments only;
	// commissions already frozen on shipments are untouched.
	UpdateCommission(ctx context.Context, courierID uuid.UUID, req UpdateCommissionRequest) (*repo.CourierStats, error)

	CourierStats(ctx context.Context, courierID uuid.UUID) (*repo.CourierStats, error)

	// Restrict excludes a courier from auto-assignment; Unrestrict also
	// resets the failure streak so the next failure does not immediately
	// re-restrict.
	Restrict(ctx context.Context, courierID uuid.UUID, reason string) error
	Unrestrict(ctx context.Context, courierID uuid.UUID) error

	// Penalize records an operator-imposed negative ledger entry.
	Penalize(ctx context.Context, req PenaltyRequest) (*repo.Transaction, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type accountService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &accountService{db: db, logger: logger}
}

func (s *accountService) CreateClient(ctx context.Context, req CreateClientRequest) (*repo.User, error) {
	normalized, err := validateIdentity(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if req.FlatRateFee < 0 {
		return nil, fmt.Errorf("%w: flat rate fee cannot be negative", ErrValidation)
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

	seq, err := counter.Next(ctx, tx, counter.ClientSeq)
	if err != nil {
		return nil, err
	}

	create := tx.User.Create().
		SetPublicID(fmt.Sprintf("CL-%06d", seq)).
		SetName(req.Name).
		SetEmail(strings.ToLower(req.Email)).
		SetRoles([]string{model.RoleClient}).
		SetFlatRateFee(req.FlatRateFee).
		SetNillableReferredBy(req.ReferredBy)
	if normalized != "" {
		create.SetPhone(normalized)
	}
	if len(req.PriorityMultipliers) > 0 {
		create.SetPriorityMultipliers(req.PriorityMultipliers)
	}

	u, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrEmailTaken
			return nil, err
		}
		return nil, fmt.Errorf("create client: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return u, nil
}

func (s *accountService) CreateCourier(ctx context.Context, req CreateCourierRequest) (*repo.User, error) {
	normalized, err := validateIdentity(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	scheme := req.CommissionScheme
	if scheme == "" {
		scheme = "flat"
	}
	if scheme != "flat" && scheme != "percentage" {
		return nil, fmt.Errorf("%w: unknown commission scheme %q", ErrValidation, scheme)
	}
	if scheme == "percentage" && (req.CommissionValue <= 0 || req.CommissionValue > 100) {
		return nil, fmt.Errorf("%w: percentage must be in (0, 100]", ErrValidation)
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

	seq, err := counter.Next(ctx, tx, counter.CourierSeq)
	if err != nil {
		return nil, err
	}

	create := tx.User.Create().
		SetPublicID(fmt.Sprintf("CO-%06d", seq)).
		SetName(req.Name).
		SetEmail(strings.ToLower(req.Email)).
		SetRoles([]string{model.RoleCourier}).
		SetZones(req.Zones).
		SetNillableReferredBy(req.ReferredBy)
	if normalized != "" {
		create.SetPhone(normalized)
	}

	u, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrEmailTaken
			return nil, err
		}
		return nil, fmt.Errorf("create courier: %w", err)
	}

	_, err = tx.CourierStats.Create().
		SetCourierID(u.ID).
		SetCommissionScheme(entcs.CommissionScheme(scheme)).
		SetCommissionValue(req.CommissionValue).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create courier stats: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return u, nil
}

func (s *accountService) Get(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *accountService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.DeletedAtIsNil())
	if req.Role != nil {
		// Roles live in a JSON column; sqljson covers both backends, and
		// filtering in the query keeps pages full.
		role := *req.Role
		q = q.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(entuser.FieldRoles, role))
		})
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *accountService) UpdatePricing(ctx context.Context, clientID uuid.UUID, req UpdatePricingRequest) (*repo.User, error) {
	u, err := s.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.FlatRateFee != nil {
		if *req.FlatRateFee < 0 {
			return nil, fmt.Errorf("%w: flat rate fee cannot be negative", ErrValidation)
		}
		upd.SetFlatRateFee(*req.FlatRateFee)
	}
	if req.PriorityMultipliers != nil {
		for p := range req.PriorityMultipliers {
			if !model.ValidPriority(p) {
				return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, p)
			}
		}
		upd.SetPriorityMultipliers(req.PriorityMultipliers)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update pricing: %w", err)
	}
	return updated, nil
}

func (s *accountService) UpdateZones(ctx context.Context, courierID uuid.UUID, zones []string) (*repo.User, error) {
	u, err := s.Get(ctx, courierID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.User.UpdateOne(u).
		SetZones(zones).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update zones: %w", err)
	}
	return updated, nil
}

func (s *accountService) UpdateCommission(ctx context.Context, courierID uuid.UUID, req UpdateCommissionRequest) (*repo.CourierStats, error) {
	if req.Scheme != "flat" && req.Scheme != "percentage" {
		return nil, fmt.Errorf("%w: unknown commission scheme %q", ErrValidation, req.Scheme)
	}
	if req.Scheme == "percentage" && (req.Value <= 0 || req.Value > 100) {
		return nil, fmt.Errorf("%w: percentage must be in (0, 100]", ErrValidation)
	}

	stats, err := s.CourierStats(ctx, courierID)
	if err != nil {
		return nil, err
	}

	updated, err := s.db.CourierStats.UpdateOne(stats).
		SetCommissionScheme(entcs.CommissionScheme(req.Scheme)).
		SetCommissionValue(req.Value).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update commission: %w", err)
	}
	return updated, nil
}

func (s *accountService) CourierStats(ctx context.Context, courierID uuid.UUID) (*repo.CourierStats, error) {
	stats, err := s.db.CourierStats.Query().
		Where(entcs.CourierID(courierID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotCourier
		}
		return nil, fmt.Errorf("get courier stats: %w", err)
	}
	return stats, nil
}

func (s *accountService) Restrict(ctx context.Context, courierID uuid.UUID, reason string) error {
	stats, err := s.CourierStats(ctx, courierID)
	if err != nil {
		return err
	}
	if reason == "" {
		reason = "restricted by operator"
	}

	return s.db.CourierStats.UpdateOne(stats).
		SetRestricted(true).
		SetRestrictionReason(reason).
		Exec(ctx)
}

func (s *accountService) Unrestrict(ctx context.Context, courierID uuid.UUID) error {
	stats, err := s.CourierStats(ctx, courierID)
	if err != nil {
		return err
	}

	return s.db.CourierStats.UpdateOne(stats).
		SetRestricted(false).
		ClearRestrictionReason().
		SetConsecutiveFailures(0).
		Exec(ctx)
}

func (s *accountService) Penalize(ctx context.Context, req PenaltyRequest) (*repo.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidPenalty
	}
	if req.AccountType != model.AccountClient && req.AccountType != model.AccountCourier {
		return nil, fmt.Errorf("%w: unknown account type %q", ErrValidation, req.AccountType)
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

	entry, err := tx.Transaction.Create().
		SetAccountType(enttx.AccountType(req.AccountType)).
		SetAccountID(req.AccountID).
		SetType(enttx.Type(ledger.TypePenalty)).
		SetAmount(-req.Amount).
		SetStatus(enttx.Status(ledger.StatusProcessed)).
		SetEvidenceRef(req.Reason).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create penalty entry: %w", err)
	}

	switch req.AccountType {
	case model.AccountCourier:
		stats, serr := tx.CourierStats.Query().
			Where(entcs.CourierID(req.AccountID)).
			Only(ctx)
		if serr == nil {
			err = tx.CourierStats.UpdateOne(stats).
				AddCurrentBalance(-req.Amount).
				Exec(ctx)
		} else if !repo.IsNotFound(serr) {
			err = serr
		}
	case model.AccountClient:
		err = tx.User.UpdateOneID(req.AccountID).
			AddWalletBalance(-req.Amount).
			Exec(ctx)
		if err != nil && repo.IsNotFound(err) {
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("update balance cache: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return entry, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func validateIdentity(name, email, rawPhone string) (normalizedPhone string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if rawPhone == "" {
		return "", nil
	}
	normalized, perr := phone.Normalize(rawPhone)
	if perr != nil {
		return "", fmt.Errorf("%w: phone: %v", ErrValidation, perr)
	}
	return normalized, nil
}
