package repository

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/booking/model"
)

// BookingRepository is the persistence boundary for bookings.
//
// Status-advancing methods are conditional: they only write when the row's
// current status matches the expected pre-state, so duplicate gateway
// callbacks racing each other produce exactly one transition.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	GetByIntentRef(ctx context.Context, intentRef string) (*model.Booking, error)

	ListAll(ctx context.Context) ([]model.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error)

	// SetIntentRef records the gateway intent reference and advances the
	// booking to awaiting_payment. Only applies while the booking is still
	// pending or re-requesting an intent in awaiting_payment.
	// Returns false when the booking was in neither state.
	SetIntentRef(ctx context.Context, id uuid.UUID, intentRef string) (bool, error)

	// UpdateStatusIf transitions from -> to only if the row's status still
	// equals from. Returns false when the compare-and-swap lost.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.Status) (bool, error)

	// ForceStatus writes the status unconditionally. Reserved for the
	// explicitly flagged admin override path.
	ForceStatus(ctx context.Context, id uuid.UUID, status model.Status) error
}
