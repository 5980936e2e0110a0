package service

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/payment/model"
)

// PaymentService bridges bookings to the external payment gateway.
type PaymentService interface {
	// CreateIntent requests a gateway payment intent for the booking,
	// records the returned reference on it, and advances the booking to
	// awaiting_payment. Returns the client secret for the storefront.
	CreateIntent(ctx context.Context, bookingID uuid.UUID) (*model.CreateIntentResponse, error)
}
