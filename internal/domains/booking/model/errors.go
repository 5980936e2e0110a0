package model

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("admin role required")
	ErrEmptyCart         = errors.New("cart snapshot has no lines")
	ErrInvalidStatus     = errors.New("unknown booking status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrStatusConflict    = errors.New("booking status changed concurrently")
)
