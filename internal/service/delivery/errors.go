package delivery

import "errors"

var (
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrNotConfirmable   = errors.New("shipment is not out for delivery")
	ErrCodeExpired      = errors.New("delivery code expired or never issued")
	ErrCodeInvalid      = errors.New("delivery code does not match")
	ErrTooManyAttempts  = errors.New("too many failed confirmation attempts")
)
