package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"events-backend/internal/domains/payment/gateway"
	"events-backend/internal/domains/payment/model"
)

// =====================================================
// STRIPE CLIENT
// =====================================================

type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (gateway.StripeGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Stripe config: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// CreatePaymentIntent registers a payment intent with Stripe.
//
// The call is bounded by the configured timeout and carries an idempotency
// key derived from the request reference, so a retry after a network failure
// cannot double-create intents.
func (c *Client) CreatePaymentIntent(ctx context.Context, req gateway.PaymentIntentRequest) (*gateway.PaymentIntentResult, error) {
	if req.Reference == "" {
		return nil, fmt.Errorf("reference is required")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive")
	}

	currency := req.Currency
	if currency == "" {
		currency = c.config.Currency
	}

	form := url.Values{}
	form.Set("amount", c.formatAmount(req.Amount))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[booking_id]", req.Reference)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.APIURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build Stripe request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Idempotency-Key", "intent-"+req.Reference)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", model.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Stripe response: %w", model.ErrGatewayUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stripe rejected intent (%d): %s: %w",
			resp.StatusCode, parseErrorMessage(body), model.ErrGatewayUnavailable)
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to decode Stripe response: %w", model.ErrGatewayUnavailable)
	}

	return &gateway.PaymentIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// formatAmount converts major units to the smallest currency unit.
// Example: 100.00 USD -> "10000"
func (c *Client) formatAmount(amount decimal.Decimal) string {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).StringFixed(0)
}

func parseErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error.Message == "" {
		return "unknown gateway error"
	}
	return payload.Error.Message
}
