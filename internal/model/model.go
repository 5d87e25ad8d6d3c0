package model

import (
	"time"

	"github.com/google/uuid"
)

// Shipment priority tiers. Priority drives both the client fee multiplier
// and the courier flat commission schedule.
const (
	PriorityStandard = "standard"
	PriorityUrgent   = "urgent"
	PriorityExpress  = "express"
)

// Payment methods.
const (
	PaymentCOD      = "cod"
	PaymentTransfer = "transfer"
	PaymentWallet   = "wallet"
)

// Shipment statuses, in forward order.
const (
	StatusWaitingPackaging = "waiting_packaging"
	StatusPackaged         = "packaged"
	StatusAssigned         = "assigned"
	StatusOutForDelivery   = "out_for_delivery"
	StatusDelivered        = "delivered"
	StatusFailed           = "failed"
)

// Partner tiers.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Account types for ledger ownership.
const (
	AccountClient  = "client"
	AccountCourier = "courier"
)

// User roles.
const (
	RoleClient  = "client"
	RoleCourier = "courier"
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
)

// StatusEvent is one entry in a shipment's ordered status history.
// The last event's status always equals the shipment's current status.
type StatusEvent struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Address is a structured shipment endpoint.
type Address struct {
	Street  string `json:"street"`
	Details string `json:"details,omitempty"`
	City    string `json:"city"`
	Zone    string `json:"zone"`
}

// PackagingLine records one inventory item consumed while packaging.
type PackagingLine struct {
	ItemID uuid.UUID `json:"item_id"`
	Qty    int       `json:"qty"`
}

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p string) bool {
	switch p {
	case PriorityStandard, PriorityUrgent, PriorityExpress:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCOD, PaymentTransfer, PaymentWallet:
		return true
	}
	return false
}
