// Package assignment attaches couriers to packaged shipments, either by an
// operator's explicit choice or by the zone and workload balancing pass the
// scheduler runs. Commission is computed here and frozen on the shipment.
package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/pricing"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entcs "github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Assign attaches a specific courier to a packaged shipment.
	Assign(ctx context.Context, shipmentID, courierID uuid.UUID) (*repo.Shipment, error)

	// AutoAssign distributes all packaged shipments over non-restricted
	// couriers covering the destination zone, fewest active shipments
	// first. Shipments with no eligible courier are skipped.
	AutoAssign(ctx context.Context) (assigned int, err error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type assignmentService struct {
	db     *repo.Client
	pub    *events.Publisher
	logger *slog.Logger
}

func New(db *repo.Client, pub *events.Publisher, logger *slog.Logger) Service {
	return &assignmentService{db: db, pub: pub, logger: logger}
}

func (s *assignmentService) Assign(ctx context.Context, shipmentID, courierID uuid.UUID) (*repo.Shipment, error) {
	sh, err := s.db.Shipment.Get(ctx, shipmentID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s.assign(ctx, sh, courierID, false)
}

func (s *assignmentService) AutoAssign(ctx context.Context) (int, error) {
	waiting, err := s.db.Shipment.Query().
		Where(entshipment.StatusEQ(entshipment.Status(model.StatusPackaged))).
		Order(entshipment.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("list packaged shipments: %w", err)
	}
	if len(waiting) == 0 {
		return 0, nil
	}

	candidates, err := s.loadCandidates(ctx)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, sh := range waiting {
		i := PickCourier(sh.ToAddress.Zone, candidates)
		if i == -1 {
			continue
		}

		if _, err := s.assign(ctx, sh, candidates[i].CourierID, true); err != nil {
			s.logger.Warn("auto-assign shipment",
				"shipment_id", sh.ID,
				"courier_id", candidates[i].CourierID,
				"error", err,
			)
			continue
		}

		// Count the new assignment before picking for the next shipment.
		candidates[i].Active++
		assigned++
	}

	return assigned, nil
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *assignmentService) assign(ctx context.Context, sh *repo.Shipment, courierID uuid.UUID, auto bool) (*repo.Shipment, error) {
	if string(sh.Status) != model.StatusPackaged {
		return nil, fmt.Errorf("%w: status is %s", ErrNotAssignable, sh.Status)
	}

	exists, err := s.db.User.Query().
		Where(entuser.ID(courierID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if !exists {
		return nil, ErrCourierNotFound
	}

	stats, err := s.db.CourierStats.Query().
		Where(entcs.CourierID(courierID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCourierNotFound
		}
		return nil, fmt.Errorf("get courier stats: %w", err)
	}
	if auto && stats.Restricted {
		return nil, ErrCourierRestricted
	}

	commission := pricing.CourierCommission(
		string(stats.CommissionScheme),
		stats.CommissionValue,
		string(sh.Priority),
		sh.Price,
	)
	now := time.Now()

	updated, err := s.db.Shipment.UpdateOne(sh).
		SetCourierID(courierID).
		SetCourierCommission(commission).
		SetStatus(entshipment.Status(model.StatusAssigned)).
		SetStatusHistory(append(sh.StatusHistory, model.StatusEvent{Status: model.StatusAssigned, At: now})).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}

	s.pub.Publish(events.SubjectShipmentAssigned, events.ShipmentAssignedEvent{
		ShipmentID: updated.ID,
		DisplayID:  updated.DisplayID,
		CourierID:  courierID,
		Auto:       auto,
		At:         now,
	})
	s.pub.ShipmentStatus(events.ShipmentStatusEvent{
		ShipmentID: updated.ID,
		DisplayID:  updated.DisplayID,
		ClientID:   updated.ClientID,
		Status:     model.StatusAssigned,
		At:         now,
	})
	return updated, nil
}

// loadCandidates builds the picker input: every non-restricted courier,
// their zones, and how many shipments they currently carry.
func (s *assignmentService) loadCandidates(ctx context.Context) ([]Candidate, error) {
	stats, err := s.db.CourierStats.Query().
		Where(entcs.Restricted(false)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	if len(stats) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(stats))
	for _, st := range stats {
		ids = append(ids, st.CourierID)
	}

	couriers, err := s.db.User.Query().
		Where(entuser.IDIn(ids...), entuser.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load courier users: %w", err)
	}
	zonesByID := make(map[uuid.UUID][]string, len(couriers))
	for _, u := range couriers {
		zonesByID[u.ID] = u.Zones
	}

	var counts []struct {
		CourierID uuid.UUID `json:"courier_id"`
		Count     int       `json:"count"`
	}
	err = s.db.Shipment.Query().
		Where(
			entshipment.CourierIDIn(ids...),
			entshipment.StatusIn(
				entshipment.Status(model.StatusAssigned),
				entshipment.Status(model.StatusOutForDelivery),
			),
		).
		GroupBy(entshipment.FieldCourierID).
		Aggregate(repo.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count active shipments: %w", err)
	}
	activeByID := make(map[uuid.UUID]int, len(counts))
	for _, row := range counts {
		activeByID[row.CourierID] = row.Count
	}

	candidates := make([]Candidate, 0, len(stats))
	for _, st := range stats {
		zones, ok := zonesByID[st.CourierID]
		if !ok {
			// Stats row without a live user; skip.
			continue
		}
		candidates = append(candidates, Candidate{
			CourierID: st.CourierID,
			Zones:     zones,
			Active:    activeByID[st.CourierID],
		})
	}
	return candidates, nil
}
