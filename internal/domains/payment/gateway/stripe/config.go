package stripe

import (
	"fmt"
	"time"
)

// Config holds the Stripe connection settings.
type Config struct {
	SecretKey string
	APIURL    string // https://api.stripe.com
	Currency  string // usd
	Timeout   time.Duration
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("stripe secret key is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("stripe API URL is required")
	}
	if c.Currency == "" {
		c.Currency = "usd"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
