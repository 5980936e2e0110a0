package mock

import (
	"context"
	"fmt"

	"events-backend/internal/domains/payment/gateway"
	"events-backend/internal/domains/payment/model"
)

// =====================================================
// MOCK STRIPE GATEWAY FOR TESTING
// =====================================================

type MockStripeGateway struct {
	shouldFail bool

	// LastRequest records the most recent intent request for assertions.
	LastRequest *gateway.PaymentIntentRequest
}

func NewMockStripeGateway() *MockStripeGateway {
	return &MockStripeGateway{}
}

func (m *MockStripeGateway) CreatePaymentIntent(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResult, error) {
	if m.shouldFail {
		return nil, fmt.Errorf("mock intent creation failed: %w", model.ErrGatewayUnavailable)
	}

	m.LastRequest = &req

	intentID := "pi_mock_" + req.Reference
	return &gateway.PaymentIntentResult{
		IntentID:     intentID,
		ClientSecret: intentID + "_secret",
	}, nil
}

// SetFail controls whether intent creation fails.
func (m *MockStripeGateway) SetFail(fail bool) {
	m.shouldFail = fail
}
