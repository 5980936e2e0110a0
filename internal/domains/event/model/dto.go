package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateEventRequest creates a new event (admin only).
type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	CatSlug     string          `json:"catSlug" binding:"required"`
	IsFeatured  bool            `json:"isFeatured"`
	Options     []Option        `json:"options,omitempty"`
}

// Validate validates CreateEventRequest
func (req CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.CatSlug, validation.Required),
		validation.Field(&req.Price, validation.By(nonNegativePrice)),
	)
}

func nonNegativePrice(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_price_invalid", "price must be a decimal")
	}
	if d.IsNegative() {
		return validation.NewError("validation_price_negative", "price must be >= 0")
	}
	return nil
}
