package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	cartmodel "events-backend/internal/domains/cart/model"
)

// CreateBookingRequest carries the cart snapshot taken at checkout.
type CreateBookingRequest struct {
	Lines []cartmodel.LineItem `json:"lines" binding:"required"`
	Price decimal.Decimal      `json:"price"`
}

// Validate validates CreateBookingRequest. An empty snapshot is rejected:
// a checkout with nothing in the cart is a client error, not a zero-price
// booking.
func (req CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Lines, validation.Required, validation.Length(1, 0)),
		validation.Field(&req.Price, validation.By(nonNegativePrice)),
	)
}

// SetStatusRequest is the admin status write. Override marks an emergency
// escape hatch that bypasses the transition table.
type SetStatusRequest struct {
	Status   string `json:"status"`
	Override bool   `json:"override"`
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
