package assignment

import "errors"

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrCourierNotFound   = errors.New("courier not found")
	ErrNotAssignable     = errors.New("shipment is not waiting for assignment")
	ErrCourierRestricted = errors.New("courier is restricted from assignments")
)
