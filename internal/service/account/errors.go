package account

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email is already registered")
	ErrNotCourier     = errors.New("user is not a courier")
	ErrValidation     = errors.New("invalid account input")
	ErrInvalidPenalty = errors.New("penalty amount must be positive")
)
