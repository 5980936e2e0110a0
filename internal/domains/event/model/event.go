package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Option is a bookable variant of an event; its additional price is added on
// top of the event's base price.
type Option struct {
	Label           string          `json:"option"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
}

// Event is reference data consumed read-only by the cart and booking flows.
type Event struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Image       string          `json:"image"`
	Location    *string         `json:"location,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CatSlug     string          `json:"catSlug"`
	IsFeatured  bool            `json:"isFeatured"`
	Options     []Option        `json:"options,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

var (
	ErrEventNotFound = errors.New("event not found")
)
