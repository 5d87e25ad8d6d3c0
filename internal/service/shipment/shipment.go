package shipment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/counter"
	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/pricing"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	enttier "github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
	"github.com/karimsaad/wasel_backend/pkg/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ClientID        uuid.UUID
	RecipientName   string
	RecipientPhone  string
	FromAddress     model.Address
	ToAddress       model.Address
	Priority        string
	PaymentMethod   string
	PackageValue    float64
	AmountToCollect float64
}

type ListRequest struct {
	ClientID  *uuid.UUID
	CourierID *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

type UpdateStatusRequest struct {
	NewStatus     string
	FailureReason string
	FailurePhoto  string
}

type PackagingRequest struct {
	Lines []model.PackagingLine
	Notes string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Shipment, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Shipment, error)
	GetByDisplayID(ctx context.Context, displayID string) (*repo.Shipment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Shipment, error)

	// UpdateStatus performs a generic forward transition. Delivered is
	// refused here; delivery confirmation is the only path to it.
	UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*repo.Shipment, error)

	// Revert undoes the last transition. Only packaged and assigned
	// shipments can be reverted.
	Revert(ctx context.Context, id uuid.UUID) (*repo.Shipment, error)

	// MarkPackaged transitions to packaged and consumes inventory.
	MarkPackaged(ctx context.Context, id uuid.UUID, req PackagingRequest) (*repo.Shipment, error)

	// Requeue returns a failed shipment to the start of the lifecycle.
	Requeue(ctx context.Context, id uuid.UUID) (*repo.Shipment, error)

	// SweepOverdue flags shipments stuck out for delivery longer than the
	// cutoff and notifies operators. Returns how many were flagged.
	SweepOverdue(ctx context.Context, olderThan time.Duration) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type shipmentService struct {
	db     *repo.Client
	pub    *events.Publisher
	logger *slog.Logger
}

func New(db *repo.Client, pub *events.Publisher, logger *slog.Logger) Service {
	return &shipmentService{db: db, pub: pub, logger: logger}
}

func (s *shipmentService) Create(ctx context.Context, req CreateRequest) (*repo.Shipment, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	client, err := s.db.User.Query().
		Where(entuser.ID(req.ClientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	discount, err := s.tierDiscount(ctx, client)
	if err != nil {
		return nil, err
	}

	fee := pricing.ClientFee(client.FlatRateFee, req.Priority, client.PriorityMultipliers, discount)
	price := pricing.FinalPrice(req.PaymentMethod, req.PackageValue, req.AmountToCollect, fee)
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

	// Wallet-paid shipments debit the fee atomically with creation. The
	// balance check folds the ledger inside this transaction, never the
	// cached field.
	if req.PaymentMethod == model.PaymentWallet && fee > 0 {
		summary, serr := wallet.Summarize(ctx, tx.Client(), model.AccountClient, client.ID)
		if serr != nil {
			err = serr
			return nil, err
		}
		if summary.Balance+ledger.Epsilon < fee {
			err = ErrInsufficientBalance
			return nil, err
		}
	}

	seq, err := counter.Next(ctx, tx, counter.ShipmentSeq)
	if err != nil {
		return nil, err
	}

	sh, err := tx.Shipment.Create().
		SetDisplayID(DisplayID(req.ToAddress.City, now, seq)).
		SetClientID(client.ID).
		SetRecipientName(req.RecipientName).
		SetRecipientPhone(req.RecipientPhone).
		SetFromAddress(req.FromAddress).
		SetToAddress(req.ToAddress).
		SetPriority(entshipment.Priority(req.Priority)).
		SetPaymentMethod(entshipment.PaymentMethod(req.PaymentMethod)).
		SetPackageValue(req.PackageValue).
		SetAmountToCollect(req.AmountToCollect).
		SetShippingFee(fee).
		SetPrice(price).
		SetStatus(entshipment.Status(model.StatusWaitingPackaging)).
		SetStatusHistory([]model.StatusEvent{{Status: model.StatusWaitingPackaging, At: now}}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	if req.PaymentMethod == model.PaymentWallet && fee > 0 {
		_, err = tx.Transaction.Create().
			SetAccountType(enttx.AccountType(model.AccountClient)).
			SetAccountID(client.ID).
			SetType(enttx.Type(ledger.TypePayment)).
			SetAmount(-fee).
			SetStatus(enttx.Status(ledger.StatusProcessed)).
			SetShipmentID(sh.ID).
			SetPaymentMethod(model.PaymentWallet).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("debit shipping fee: %w", err)
		}
		if err = tx.User.UpdateOne(client).AddWalletBalance(-fee).Exec(ctx); err != nil {
			return nil, fmt.Errorf("update balance cache: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publishStatus(sh, model.StatusWaitingPackaging, now)
	return sh, nil
}

func (s *shipmentService) Get(ctx context.Context, id uuid.UUID) (*repo.Shipment, error) {
	sh, err := s.db.Shipment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return sh, nil
}

func (s *shipmentService) GetByDisplayID(ctx context.Context, displayID string) (*repo.Shipment, error) {
	sh, err := s.db.Shipment.Query().
		Where(entshipment.DisplayID(displayID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return sh, nil
}

func (s *shipmentService) List(ctx context.Context, req ListRequest) ([]*repo.Shipment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Shipment.Query()
	if req.ClientID != nil {
		q = q.Where(entshipment.ClientID(*req.ClientID))
	}
	if req.CourierID != nil {
		q = q.Where(entshipment.CourierID(*req.CourierID))
	}
	if req.Status != nil {
		q = q.Where(entshipment.StatusEQ(entshipment.Status(*req.Status)))
	}

	list, err := q.
		Order(entshipment.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return list, nil
}

func (s *shipmentService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*repo.Shipment, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current := string(sh.Status)
	if req.NewStatus == current {
		// Idempotent no-op.
		return sh, nil
	}
	if req.NewStatus == model.StatusDelivered {
		return nil, ErrDeliveredViaUpdate
	}
	if !ValidStatus(req.NewStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.NewStatus)
	}
	if !CanTransition(current, req.NewStatus) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, req.NewStatus)
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

	upd := tx.Shipment.UpdateOne(sh).
		SetStatus(entshipment.Status(req.NewStatus)).
		SetStatusHistory(append(sh.StatusHistory, model.StatusEvent{Status: req.NewStatus, At: now}))

	if req.NewStatus == model.StatusFailed {
		if req.FailureReason != "" {
			upd.SetFailureReason(req.FailureReason)
		}
		if req.FailurePhoto != "" {
			upd.SetFailurePhoto(req.FailurePhoto)
		}
		if err = s.applyFailure(ctx, tx, sh, now); err != nil {
			return nil, err
		}
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publishStatus(updated, req.NewStatus, now)
	return updated, nil
}

func (s *shipmentService) Revert(ctx context.Context, id uuid.UUID) (*repo.Shipment, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(sh.StatusHistory) <= 1 {
		return nil, fmt.Errorf("%w: no history to revert", ErrInvalidTransition)
	}
	current := string(sh.Status)
	if _, ok := CanRevert(current); !ok {
		return nil, fmt.Errorf("%w: cannot revert from %s", ErrInvalidTransition, current)
	}

	popped := sh.StatusHistory[:len(sh.StatusHistory)-1]
	restored := popped[len(popped)-1].Status

	upd := s.db.Shipment.UpdateOne(sh).
		SetStatus(entshipment.Status(restored)).
		SetStatusHistory(popped)

	switch current {
	case model.StatusPackaged:
		// Inventory already consumed is not restored.
		upd.ClearPackagingLog().ClearPackagingNotes()
	case model.StatusAssigned:
		upd.ClearCourierID().SetCourierCommission(0)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("revert shipment: %w", err)
	}

	s.publishStatus(updated, restored, time.Now())
	return updated, nil
}

func (s *shipmentService) MarkPackaged(ctx context.Context, id uuid.UUID, req PackagingRequest) (*repo.Shipment, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current := string(sh.Status)
	if current == model.StatusPackaged {
		return sh, nil
	}
	if current != model.StatusWaitingPackaging {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, model.StatusPackaged)
	}
	for _, line := range req.Lines {
		if line.Qty <= 0 {
			return nil, fmt.Errorf("%w: packaging quantity must be positive", ErrValidation)
		}
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

	for _, line := range req.Lines {
		item, ierr := tx.InventoryItem.Get(ctx, line.ItemID)
		if ierr != nil {
			if repo.IsNotFound(ierr) {
				err = fmt.Errorf("%w: inventory item %s", ErrValidation, line.ItemID)
				return nil, err
			}
			err = fmt.Errorf("get inventory item: %w", ierr)
			return nil, err
		}
		if item.Quantity < line.Qty {
			err = fmt.Errorf("%w: %s has %d, need %d", ErrInventoryShort, item.Name, item.Quantity, line.Qty)
			return nil, err
		}
		if err = tx.InventoryItem.UpdateOne(item).AddQuantity(-line.Qty).Exec(ctx); err != nil {
			return nil, fmt.Errorf("decrement inventory: %w", err)
		}
	}

	upd := tx.Shipment.UpdateOne(sh).
		SetStatus(entshipment.Status(model.StatusPackaged)).
		SetStatusHistory(append(sh.StatusHistory, model.StatusEvent{Status: model.StatusPackaged, At: now})).
		SetPackagingLog(req.Lines)
	if req.Notes != "" {
		upd.SetPackagingNotes(req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark packaged: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publishStatus(updated, model.StatusPackaged, now)
	return updated, nil
}

func (s *shipmentService) Requeue(ctx context.Context, id uuid.UUID) (*repo.Shipment, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if string(sh.Status) != model.StatusFailed {
		return nil, ErrNotRequeueable
	}

	now := time.Now()

	updated, err := s.db.Shipment.UpdateOne(sh).
		SetStatus(entshipment.Status(model.StatusWaitingPackaging)).
		SetStatusHistory(append(sh.StatusHistory, model.StatusEvent{Status: model.StatusWaitingPackaging, At: now})).
		ClearCourierID().
		SetCourierCommission(0).
		ClearPackagingLog().
		ClearPackagingNotes().
		ClearFailureReason().
		ClearFailurePhoto().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("requeue shipment: %w", err)
	}

	s.publishStatus(updated, model.StatusWaitingPackaging, now)
	return updated, nil
}

// SweepOverdue flags shipments stuck out for delivery past the cutoff. The
// sweep only notifies; failing a shipment charges the client and counts
// against the courier, so that stays a deliberate operator action.
func (s *shipmentService) SweepOverdue(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	now := time.Now()

	stuck, err := s.db.Shipment.Query().
		Where(
			entshipment.StatusEQ(entshipment.Status(model.StatusOutForDelivery)),
			entshipment.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list overdue shipments: %w", err)
	}

	for _, sh := range stuck {
		ev := events.ShipmentOverdueEvent{
			ShipmentID: sh.ID,
			DisplayID:  sh.DisplayID,
			ClientID:   sh.ClientID,
			OutSince:   sh.UpdatedAt,
			At:         now,
		}
		if sh.CourierID != nil {
			ev.CourierID = *sh.CourierID
		}
		s.pub.Publish(events.SubjectShipmentOverdue, ev)
		s.logger.Warn("shipment overdue",
			"shipment_id", sh.ID,
			"display_id", sh.DisplayID,
			"out_since", sh.UpdatedAt,
		)
	}

	return len(stuck), nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

// applyFailure records the failed-delivery side effects inside the caller's
// transaction: the courier's failure streak (restricting at three) and the
// client's fee charge. Charging the client for a failed attempt is the
// established business rule.
func (s *shipmentService) applyFailure(ctx context.Context, tx *repo.Tx, sh *repo.Shipment, now time.Time) error {
	if sh.CourierID != nil {
		stats, err := tx.CourierStats.Query().
			Where(entcs.CourierID(*sh.CourierID)).
			Only(ctx)
		if err != nil && !repo.IsNotFound(err) {
			return fmt.Errorf("get courier stats: %w", err)
		}
		if stats != nil {
			failures := stats.ConsecutiveFailures + 1
			upd := tx.CourierStats.UpdateOne(stats).
				SetConsecutiveFailures(failures)
			if failures >= 3 && !stats.Restricted {
				upd.SetRestricted(true).
					SetRestrictionReason(fmt.Sprintf("%d consecutive failed deliveries", failures))
			}
			if err := upd.Exec(ctx); err != nil {
				return fmt.Errorf("update courier stats: %w", err)
			}
		}
	}

	if sh.ShippingFee > 0 {
		_, err := tx.Transaction.Create().
			SetAccountType(enttx.AccountType(model.AccountClient)).
			SetAccountID(sh.ClientID).
			SetType(enttx.Type(ledger.TypePayment)).
			SetAmount(-sh.ShippingFee).
			SetStatus(enttx.Status(ledger.StatusProcessed)).
			SetShipmentID(sh.ID).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("charge failed-delivery fee: %w", err)
		}
		if err := tx.User.UpdateOneID(sh.ClientID).AddWalletBalance(-sh.ShippingFee).Exec(ctx); err != nil {
			return fmt.Errorf("update balance cache: %w", err)
		}
	}

	return nil
}

func (s *shipmentService) tierDiscount(ctx context.Context, client *repo.User) (float64, error) {
	if client.PartnerTier == nil {
		return 0, nil
	}

	setting, err := s.db.TierSetting.Query().
		Where(enttier.TierEQ(enttier.Tier(*client.PartnerTier))).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get tier setting: %w", err)
	}
	return setting.DiscountPercent, nil
}

func (s *shipmentService) publishStatus(sh *repo.Shipment, status string, at time.Time) {
	s.pub.ShipmentStatus(events.ShipmentStatusEvent{
		ShipmentID: sh.ID,
		DisplayID:  sh.DisplayID,
		ClientID:   sh.ClientID,
		Status:     status,
		At:         at,
	})
}

func validateCreate(req *CreateRequest) error {
	if strings.TrimSpace(req.RecipientName) == "" {
		return fmt.Errorf("%w: recipient name is required", ErrValidation)
	}
	normalized, err := phone.Normalize(req.RecipientPhone)
	if err != nil {
		return fmt.Errorf("%w: recipient phone: %v", ErrValidation, err)
	}
	req.RecipientPhone = normalized

	if strings.TrimSpace(req.ToAddress.City) == "" {
		return fmt.Errorf("%w: destination city is required", ErrValidation)
	}
	if req.Priority == "" {
		req.Priority = model.PriorityStandard
	}
	if !model.ValidPriority(req.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, req.Priority)
	}
	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	if req.PackageValue < 0 || req.AmountToCollect < 0 {
		return fmt.Errorf("%w: amounts cannot be negative", ErrValidation)
	}
	return nil
}
