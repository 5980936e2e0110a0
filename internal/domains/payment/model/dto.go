package model

// CreateIntentResponse returns the client secret the storefront needs to
// complete the payment out-of-band.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
