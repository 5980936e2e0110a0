package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// =====================================================
// GATEWAY INTERFACES
// =====================================================

// StripeGateway is the payment-intent side of the external gateway.
type StripeGateway interface {
	// CreatePaymentIntent registers an intent with the gateway and returns
	// its reference plus the client secret the browser needs to finish the
	// payment out-of-band.
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntentResult, error)
}

// =====================================================
// COMMON REQUEST/RESPONSE TYPES
// =====================================================

// PaymentIntentRequest asks the gateway for a new intent.
type PaymentIntentRequest struct {
	Reference string          // booking id, doubles as the idempotency key
	Amount    decimal.Decimal // major units; converted per-gateway
	Currency  string
}

// PaymentIntentResult is the gateway's handle for the in-progress payment.
type PaymentIntentResult struct {
	IntentID     string
	ClientSecret string
}
