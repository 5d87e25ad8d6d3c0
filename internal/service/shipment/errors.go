package shipment

import "errors"

var (
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDeliveredViaUpdate  = errors.New("delivered is only reachable through delivery confirmation")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrValidation          = errors.New("invalid shipment input")
	ErrInventoryShort      = errors.New("not enough inventory for packaging")
	ErrNotRequeueable      = errors.New("only failed shipments can be requeued")
)
