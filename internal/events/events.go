// Package events publishes fire-and-forget domain events over NATS.
// Publishing never fails a request; subscribers that miss an event can
// always reconcile from the database.
package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// NATS subjects. Status updates carry the new status as the last token so
// workers can subscribe to a subset (e.g. "wasel.shipment.status.failed").
const (
	SubjectShipmentStatusPrefix = "wasel.shipment.status."
	SubjectShipmentAssigned     = "wasel.shipment.assigned"
	SubjectShipmentOverdue      = "wasel.shipment.overdue"
	SubjectDeliveryCode         = "wasel.delivery.code"
	SubjectPayoutRequested      = "wasel.payout.requested"
	SubjectPayoutDecided        = "wasel.payout.decided"
)

type ShipmentStatusEvent struct {
	ShipmentID uuid.UUID `json:"shipment_id"`
	DisplayID  string    `json:"display_id"`
	ClientID   uuid.UUID `json:"client_id"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

type ShipmentAssignedEvent struct {
	ShipmentID uuid.UUID `json:"shipment_id"`
	DisplayID  string    `json:"display_id"`
	CourierID  uuid.UUID `json:"courier_id"`
	Auto       bool      `json:"auto"`
	At         time.Time `json:"at"`
}

type ShipmentOverdueEvent struct {
	ShipmentID uuid.UUID `json:"shipment_id"`
	DisplayID  string    `json:"display_id"`
	ClientID   uuid.UUID `json:"client_id"`
	CourierID  uuid.UUID `json:"courier_id,omitempty"`
	OutSince   time.Time `json:"out_since"`
	At         time.Time `json:"at"`
}

type DeliveryCodeEvent struct {
	ShipmentID     uuid.UUID `json:"shipment_id"`
	RecipientPhone string    `json:"recipient_phone"`
	Code           string    `json:"code"`
	At             time.Time `json:"at"`
}

type PayoutEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	CourierID     uuid.UUID `json:"courier_id"`
	Amount        float64   `json:"amount"`
	Decision      string    `json:"decision,omitempty"`
	At            time.Time `json:"at"`
}

// Publisher wraps a NATS connection. A nil connection disables publishing,
// which keeps single-binary deployments working without a broker.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewPublisher(nc *nats.Conn, logger *slog.Logger) *Publisher {
	return &Publisher{nc: nc, logger: logger}
}

// Publish marshals the payload and publishes it on subject. Errors are
// logged, never returned.
func (p *Publisher) Publish(subject string, payload any) {
	if p == nil || p.nc == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("marshal event", "subject", subject, "error", err)
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Warn("publish event", "subject", subject, "error", err)
	}
}

// ShipmentStatus publishes a status change on the per-status subject.
func (p *Publisher) ShipmentStatus(ev ShipmentStatusEvent) {
	p.Publish(SubjectShipmentStatusPrefix+ev.Status, ev)
}
