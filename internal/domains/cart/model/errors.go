package model

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be > 0")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrInvalidLineTotal = errors.New("line total must be >= 0")
	ErrMissingEventID   = errors.New("event id is required")
	ErrLineNotFound     = errors.New("cart line not found")
	ErrNotRehydrated    = errors.New("cart store has not been rehydrated")
)
