package service

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/booking/model"
	"events-backend/internal/shared"
)

// BookingService owns the booking lifecycle:
// pending -> awaiting_payment -> confirming -> paid | cancelled.
type BookingService interface {
	// CreateBooking persists a pending booking from the caller's cart
	// snapshot. Fails with ErrUnauthorized when no identity is present and
	// ErrEmptyCart for an empty snapshot.
	CreateBooking(ctx context.Context, actor *shared.Identity, req model.CreateBookingRequest) (*model.Booking, error)

	// ListBookings returns all bookings for admins, and only the caller's
	// own bookings otherwise.
	ListBookings(ctx context.Context, actor *shared.Identity) ([]model.Booking, error)

	// GetBooking returns one booking by id.
	GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error)

	// ConfirmByIntent advances the booking referenced by the gateway intent
	// to confirming. Idempotent: a booking already confirming or paid is
	// returned unchanged.
	ConfirmByIntent(ctx context.Context, intentRef string) (*model.Booking, error)

	// SetStatus is the admin status write. Without override the transition
	// table is enforced with a conditional update; with override the table
	// is bypassed and the write is logged with an override marker.
	SetStatus(ctx context.Context, actor *shared.Identity, id uuid.UUID, status model.Status, override bool) (*model.Booking, error)
}
