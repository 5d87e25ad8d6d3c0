// Package tier maintains client partner tiers. Tiers are recomputed from
// rolling 30-day shipment volume unless a client is manually pinned.
package tier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	enttier "github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrUnknownTier    = errors.New("unknown partner tier")
)

// rollingWindow is the shipment-count window driving tier qualification.
const rollingWindow = 30 * 24 * time.Hour

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Setting struct {
	Tier            string
	MinShipments    int
	DiscountPercent float64
}

type Service interface {
	// RecalculateAll re-derives every non-pinned client's tier. Returns
	// how many clients changed tier.
	RecalculateAll(ctx context.Context) (int, error)

	// Recalculate re-derives one client's tier, ignoring the pin.
	Recalculate(ctx context.Context, clientID uuid.UUID) (*repo.User, error)

	// Pin sets a manual tier (or clears it with nil) and excludes the
	// client from recalculation until unpinned.
	Pin(ctx context.Context, clientID uuid.UUID, tier *string) (*repo.User, error)

	// Unpin re-enables automatic recalculation and recomputes immediately.
	Unpin(ctx context.Context, clientID uuid.UUID) (*repo.User, error)

	ListSettings(ctx context.Context) ([]Setting, error)
	UpdateSetting(ctx context.Context, s Setting) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type tierService struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Service {
	return &tierService{db: db, logger: logger}
}

func (s *tierService) RecalculateAll(ctx context.Context) (int, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return 0, err
	}

	clients, err := s.db.User.Query().
		Where(
			entuser.TierManualOverride(false),
			entuser.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list clients: %w", err)
	}

	changed := 0
	since := time.Now().Add(-rollingWindow)
	for _, client := range clients {
		wasChanged, err := s.applyTier(ctx, client, settings, since)
		if err != nil {
			s.logger.Warn("recalculate tier", "client_id", client.ID, "error", err)
			continue
		}
		if wasChanged {
			changed++
		}
	}
	return changed, nil
}

func (s *tierService) Recalculate(ctx context.Context, clientID uuid.UUID) (*repo.User, error) {
	settings, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if _, err := s.applyTier(ctx, client, settings, time.Now().Add(-rollingWindow)); err != nil {
		return nil, err
	}
	return s.getClient(ctx, clientID)
}

func (s *tierService) Pin(ctx context.Context, clientID uuid.UUID, tier *string) (*repo.User, error) {
	if tier != nil && !validTier(*tier) {
		return nil, ErrUnknownTier
	}

	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(client).
		SetTierManualOverride(true)
	if tier == nil {
		upd.ClearPartnerTier()
	} else {
		upd.SetPartnerTier(entuser.PartnerTier(*tier))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("pin tier: %w", err)
	}
	return updated, nil
}

func (s *tierService) Unpin(ctx context.Context, clientID uuid.UUID) (*repo.User, error) {
	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := s.db.User.UpdateOne(client).
		SetTierManualOverride(false).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("unpin tier: %w", err)
	}

	return s.Recalculate(ctx, clientID)
}

func (s *tierService) ListSettings(ctx context.Context) ([]Setting, error) {
	return s.loadSettings(ctx)
}

func (s *tierService) UpdateSetting(ctx context.Context, setting Setting) error {
	if !validTier(setting.Tier) {
		return ErrUnknownTier
	}
	if setting.MinShipments < 0 || setting.DiscountPercent < 0 || setting.DiscountPercent > 100 {
		return fmt.Errorf("%w: thresholds out of range", ErrUnknownTier)
	}

	n, err := s.db.TierSetting.Update().
		Where(enttier.TierEQ(enttier.Tier(setting.Tier))).
		SetMinShipments(setting.MinShipments).
		SetDiscountPercent(setting.DiscountPercent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update tier setting: %w", err)
	}
	if n == 0 {
		return s.db.TierSetting.Create().
			SetTier(enttier.Tier(setting.Tier)).
			SetMinShipments(setting.MinShipments).
			SetDiscountPercent(setting.DiscountPercent).
			Exec(ctx)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *tierService) getClient(ctx context.Context, clientID uuid.UUID) (*repo.User, error) {
	client, err := s.db.User.Query().
		Where(entuser.ID(clientID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return client, nil
}

// applyTier computes and persists the tier for one client. Settings must be
// sorted by MinShipments descending.
func (s *tierService) applyTier(ctx context.Context, client *repo.User, settings []Setting, since time.Time) (bool, error) {
	count, err := s.db.Shipment.Query().
		Where(
			entshipment.ClientID(client.ID),
			entshipment.CreatedAtGTE(since),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count shipments: %w", err)
	}

	target := QualifyingTier(settings, count)

	current := ""
	if client.PartnerTier != nil {
		current = string(*client.PartnerTier)
	}
	if current == target {
		return false, nil
	}

	upd := s.db.User.UpdateOne(client)
	if target == "" {
		upd.ClearPartnerTier()
	} else {
		upd.SetPartnerTier(entuser.PartnerTier(target))
	}
	if err := upd.Exec(ctx); err != nil {
		return false, fmt.Errorf("set tier: %w", err)
	}

	s.logger.Info("partner tier changed",
		"client_id", client.ID,
		"from", current,
		"to", target,
		"shipments_30d", count,
	)
	return true, nil
}

func (s *tierService) loadSettings(ctx context.Context) ([]Setting, error) {
	rows, err := s.db.TierSetting.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tier settings: %w", err)
	}

	settings := make([]Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, Setting{
			Tier:            string(row.Tier),
			MinShipments:    row.MinShipments,
			DiscountPercent: row.DiscountPercent,
		})
	}
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].MinShipments > settings[j].MinShipments
	})
	return settings, nil
}

// QualifyingTier returns the highest tier whose threshold the count meets,
// or empty when none qualifies. Settings must be sorted by MinShipments
// descending.
func QualifyingTier(settings []Setting, count int) string {
	for _, s := range settings {
		if count >= s.MinShipments {
			return s.Tier
		}
	}
	return ""
}

func validTier(t string) bool {
	switch t {
	case model.TierBronze, model.TierSilver, model.TierGold:
		return true
	}
	return false
}
