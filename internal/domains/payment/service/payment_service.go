package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	bookingmodel "events-backend/internal/domains/booking/model"
	bookingrepo "events-backend/internal/domains/booking/repository"
	"events-backend/internal/domains/payment/gateway"
	"events-backend/internal/domains/payment/model"
	"events-backend/pkg/logger"
)

// Options controls which amount is requested from the gateway.
//
// The storefront has always charged FixedAmount regardless of the booking's
// actual price. Whether that is intended is an open product question, so the
// behavior is kept behind ChargeBookingPrice instead of being silently fixed.
type Options struct {
	ChargeBookingPrice bool
	FixedAmount        decimal.Decimal
	Currency           string
}

type paymentService struct {
	bookings bookingrepo.BookingRepository
	gateway  gateway.StripeGateway
	opts     Options
}

// NewPaymentService creates the payment-intent bridge.
func NewPaymentService(bookings bookingrepo.BookingRepository, gw gateway.StripeGateway, opts Options) PaymentService {
	if opts.FixedAmount.IsZero() {
		opts.FixedAmount = decimal.NewFromInt(100)
	}
	if opts.Currency == "" {
		opts.Currency = "usd"
	}
	return &paymentService{
		bookings: bookings,
		gateway:  gw,
		opts:     opts,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, bookingID uuid.UUID) (*model.CreateIntentResponse, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, bookingmodel.ErrBookingNotFound
	}

	amount := s.opts.FixedAmount
	if s.opts.ChargeBookingPrice {
		amount = booking.Price
	}

	result, err := s.gateway.CreatePaymentIntent(ctx, gateway.PaymentIntentRequest{
		Reference: booking.ID.String(),
		Amount:    amount,
		Currency:  s.opts.Currency,
	})
	if err != nil {
		logger.Error("payment intent creation failed", err)
		return nil, err
	}

	applied, err := s.bookings.SetIntentRef(ctx, booking.ID, result.IntentID)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, model.ErrIntentNotCreatable
	}

	logger.Info("payment intent created", map[string]interface{}{
		"booking_id": booking.ID.String(),
		"intent_ref": result.IntentID,
		"amount":     amount,
	})

	return &model.CreateIntentResponse{ClientSecret: result.ClientSecret}, nil
}
