// Package delivery implements the recipient confirmation-code flow, the
// only path that can move a shipment to delivered. Delivery is where the
// irreversible financial side effects happen, so the code check and the
// status guard both sit in front of one transaction.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/pricing"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/pkg/sms"
	"github.com/karimsaad/wasel_backend/pkg/util/codes"
)

func redisKeyCode(shipmentID uuid.UUID) string { return "delivery:code:" + shipmentID.String() }
func redisKeyAttempts(shipmentID uuid.UUID) string {
	return "delivery:attempts:" + shipmentID.String()
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// SendCode issues a one-time confirmation code to the recipient.
	// Re-issuing replaces any previous code for the shipment.
	SendCode(ctx context.Context, shipmentID uuid.UUID) (codeID string, err error)

	// Confirm verifies the code and applies the delivery side effects
	// exactly once: status transition, courier commission, referral bonus,
	// and the client ledger entries for the payment method.
	Confirm(ctx context.Context, shipmentID uuid.UUID, code string) (*repo.Shipment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type deliveryService struct {
	db     *repo.Client
	rdb    *goredis.Client
	sms    *sms.Client
	pub    *events.Publisher
	cfg    *config.Config
	logger *slog.Logger
}

func New(db *repo.Client, rdb *goredis.Client, smsClient *sms.Client, pub *events.Publisher, cfg *config.Config, logger *slog.Logger) Service {
	return &deliveryService{db: db, rdb: rdb, sms: smsClient, pub: pub, cfg: cfg, logger: logger}
}

func (s *deliveryService) SendCode(ctx context.Context, shipmentID uuid.UUID) (string, error) {
	sh, err := s.getConfirmable(ctx, shipmentID)
	if err != nil {
		return "", err
	}

	code, err := codes.GenerateDeliveryCode(s.cfg.Delivery.CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	ttl := time.Duration(s.cfg.Delivery.CodeTTLMinutes) * time.Minute
	now := time.Now()

	// Overwriting the key invalidates any previously issued code.
	if err := s.rdb.Set(ctx, redisKeyCode(shipmentID), codes.Hash(code), ttl).Err(); err != nil {
		return "", fmt.Errorf("store code: %w", err)
	}
	s.rdb.Set(ctx, redisKeyAttempts(shipmentID), "0", ttl+5*time.Minute)

	if err := s.sms.SendCode(ctx, sh.RecipientPhone, s.cfg.SMS.SMSIR.TemplateID, code); err != nil {
		// SMS failure must not block the flow; operators can re-send.
		s.logger.Warn("send delivery code SMS", "shipment_id", shipmentID, "error", err)
	}

	codeID := uuid.Must(uuid.NewV7()).String()
	s.pub.Publish(events.SubjectDeliveryCode, events.DeliveryCodeEvent{
		ShipmentID:     shipmentID,
		RecipientPhone: sh.RecipientPhone,
		Code:           code,
		At:             now,
	})

	return codeID, nil
}

func (s *deliveryService) Confirm(ctx context.Context, shipmentID uuid.UUID, code string) (*repo.Shipment, error) {
	attempts, _ := s.rdb.Get(ctx, redisKeyAttempts(shipmentID)).Int()
	if s.cfg.Delivery.MaxAttempts > 0 && attempts >= s.cfg.Delivery.MaxAttempts {
		return nil, ErrTooManyAttempts
	}

	hash, err := s.rdb.Get(ctx, redisKeyCode(shipmentID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, ErrCodeExpired
		}
		return nil, fmt.Errorf("load code: %w", err)
	}

	if err := codes.Verify(hash, code); err != nil {
		s.rdb.Incr(ctx, redisKeyAttempts(shipmentID))
		return nil, ErrCodeInvalid
	}

	sh, err := s.getConfirmable(ctx, shipmentID)
	if err != nil {
		return nil, err
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

	updated, err := tx.Shipment.UpdateOne(sh).
		SetStatus(entshipment.Status(model.StatusDelivered)).
		SetStatusHistory(append(sh.StatusHistory, model.StatusEvent{Status: model.StatusDelivered, At: now})).
		SetDeliveredAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}

	if sh.CourierID != nil {
		if err = s.creditCourier(ctx, tx, sh, now); err != nil {
			return nil, err
		}
	}
	if err = s.creditClient(ctx, tx, sh, now); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// The status guard above already makes a replay a no-op, but the code
	// is single-use regardless.
	s.rdb.Del(ctx, redisKeyCode(shipmentID), redisKeyAttempts(shipmentID))

	s.pub.ShipmentStatus(events.ShipmentStatusEvent{
		ShipmentID: updated.ID,
		DisplayID:  updated.DisplayID,
		ClientID:   updated.ClientID,
		Status:     model.StatusDelivered,
		At:         now,
	})
	return updated, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *deliveryService) getConfirmable(ctx context.Context, shipmentID uuid.UUID) (*repo.Shipment, error) {
	sh, err := s.db.Shipment.Get(ctx, shipmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if string(sh.Status) != model.StatusOutForDelivery {
		return nil, fmt.Errorf("%w: status is %s", ErrNotConfirmable, sh.Status)
	}
	return sh, nil
}

// creditCourier records the commission (when positive), resets the failure
// streak unconditionally, and pays the referral bonus when the courier was
// referred. The bonus is company-funded, never deducted from the courier.
func (s *deliveryService) creditCourier(ctx context.Context, tx *repo.Tx, sh *repo.Shipment, now time.Time) error {
	courierID := *sh.CourierID

	if sh.CourierCommission > 0 {
		_, err := tx.Transaction.Create().
			SetAccountType(enttx.AccountType(model.AccountCourier)).
			SetAccountID(courierID).
			SetType(enttx.Type(ledger.TypeCommission)).
			SetAmount(sh.CourierCommission).
			SetStatus(enttx.Status(ledger.StatusProcessed)).
			SetShipmentID(sh.ID).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create commission entry: %w", err)
		}
	}

	stats, err := tx.CourierStats.Query().
		Where(entcs.CourierID(courierID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("get courier stats: %w", err)
	}
	if stats != nil {
		upd := tx.CourierStats.UpdateOne(stats).
			SetConsecutiveFailures(0)
		if sh.CourierCommission > 0 {
			upd.AddCurrentBalance(sh.CourierCommission).
				AddTotalEarnings(sh.CourierCommission)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("update courier stats: %w", err)
		}
	}

	courier, err := tx.User.Get(ctx, courierID)
	if err != nil {
		return fmt.Errorf("get courier: %w", err)
	}
	if courier.ReferredBy != nil {
		if err := s.payReferralBonus(ctx, tx, *courier.ReferredBy, sh.ID, now); err != nil {
			return err
		}
	}

	return nil
}

func (s *deliveryService) payReferralBonus(ctx context.Context, tx *repo.Tx, referrerID, shipmentID uuid.UUID, now time.Time) error {
	// The referrer's ledger lives on whichever side they hold an account:
	// couriers have a stats row, everyone else is a client account.
	accountType := model.AccountClient
	stats, err := tx.CourierStats.Query().
		Where(entcs.CourierID(referrerID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("get referrer stats: %w", err)
	}
	if stats != nil {
		accountType = model.AccountCourier
	}

	_, err = tx.Transaction.Create().
		SetAccountType(enttx.AccountType(accountType)).
		SetAccountID(referrerID).
		SetType(enttx.Type(ledger.TypeReferralBonus)).
		SetAmount(pricing.ReferralBonus).
		SetStatus(enttx.Status(ledger.StatusProcessed)).
		SetShipmentID(shipmentID).
		SetProcessedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create referral bonus entry: %w", err)
	}

	if stats != nil {
		return tx.CourierStats.UpdateOne(stats).
			AddCurrentBalance(pricing.ReferralBonus).
			AddTotalEarnings(pricing.ReferralBonus).
			Exec(ctx)
	}
	return tx.User.UpdateOneID(referrerID).
		AddWalletBalance(pricing.ReferralBonus).
		Exec(ctx)
}

// creditClient applies the payment-method ledger table. COD records both
// entries unconditionally; transfer and wallet deposits are skipped at zero
// because the fee side was settled earlier.
func (s *deliveryService) creditClient(ctx context.Context, tx *repo.Tx, sh *repo.Shipment, now time.Time) error {
	method := string(sh.PaymentMethod)
	delta := 0.0

	deposit := func(amount float64) error {
		_, err := tx.Transaction.Create().
			SetAccountType(enttx.AccountType(model.AccountClient)).
			SetAccountID(sh.ClientID).
			SetType(enttx.Type(ledger.TypeDeposit)).
			SetAmount(amount).
			SetStatus(enttx.Status(ledger.StatusProcessed)).
			SetShipmentID(sh.ID).
			SetPaymentMethod(method).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create deposit entry: %w", err)
		}
		delta += amount
		return nil
	}

	switch method {
	case model.PaymentCOD:
		if err := deposit(sh.PackageValue); err != nil {
			return err
		}
		_, err := tx.Transaction.Create().
			SetAccountType(enttx.AccountType(model.AccountClient)).
			SetAccountID(sh.ClientID).
			SetType(enttx.Type(ledger.TypePayment)).
			SetAmount(-sh.ShippingFee).
			SetStatus(enttx.Status(ledger.StatusProcessed)).
			SetShipmentID(sh.ID).
			SetPaymentMethod(method).
			SetProcessedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create fee payment entry: %w", err)
		}
		delta -= sh.ShippingFee

	case model.PaymentTransfer:
		if sh.AmountToCollect > 0 {
			if err := deposit(sh.AmountToCollect); err != nil {
				return err
			}
		}

	case model.PaymentWallet:
		if sh.PackageValue > 0 {
			if err := deposit(sh.PackageValue); err != nil {
				return err
			}
		}
	}

	if delta != 0 {
		if err := tx.User.UpdateOneID(sh.ClientID).AddWalletBalance(delta).Exec(ctx); err != nil {
			return fmt.Errorf("update balance cache: %w", err)
		}
	}
	return nil
}
