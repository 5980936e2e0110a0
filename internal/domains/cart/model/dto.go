package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// AddLineRequest adds a line item to the cart.
type AddLineRequest struct {
	EventID      string          `json:"eventId" binding:"required"`
	Title        string          `json:"title"`
	Image        string          `json:"image,omitempty"`
	OptionsLabel string          `json:"optionsLabel,omitempty"`
	Quantity     int             `json:"quantity" binding:"required"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

// Validate validates AddLineRequest
func (req AddLineRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.LineTotal, validation.By(nonNegativeDecimal)),
	)
}

// ToLineItem converts the request into a cart line.
func (req AddLineRequest) ToLineItem() LineItem {
	return LineItem{
		EventID:      req.EventID,
		Title:        req.Title,
		Image:        req.Image,
		OptionsLabel: req.OptionsLabel,
		Quantity:     req.Quantity,
		LineTotal:    req.LineTotal,
	}
}

// RemoveLineRequest deletes all lines matching (eventId, optionsLabel).
type RemoveLineRequest struct {
	EventID      string `json:"eventId" binding:"required"`
	OptionsLabel string `json:"optionsLabel,omitempty"`
}

// Validate validates RemoveLineRequest
func (req RemoveLineRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.EventID, validation.Required),
	)
}

// UpdateQuantityRequest changes a line's quantity. Zero removes the line.
type UpdateQuantityRequest struct {
	EventID      string `json:"eventId" binding:"required"`
	OptionsLabel string `json:"optionsLabel,omitempty"`
	Quantity     int    `json:"quantity"`
}

// Validate validates UpdateQuantityRequest
func (req UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

// CartResponse is the full cart returned to the client.
type CartResponse struct {
	Lines          []LineItem      `json:"lines"`
	TotalQuantity  int             `json:"totalQuantity"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	FormattedTotal string          `json:"formattedTotal"`
	ItemCount      int             `json:"itemCount"`
	IsEmpty        bool            `json:"isEmpty"`
}

// ToResponse converts CartState to CartResponse
func (s CartState) ToResponse() *CartResponse {
	return &CartResponse{
		Lines:          s.Lines,
		TotalQuantity:  s.TotalQuantity,
		TotalPrice:     s.TotalPrice,
		FormattedTotal: s.TotalPrice.StringFixed(2),
		ItemCount:      len(s.Lines),
		IsEmpty:        len(s.Lines) == 0,
	}
}

// ValidateResult reports the outcome of the cart's self-healing check.
type ValidateResult struct {
	Valid bool          `json:"valid"`
	Cart  *CartResponse `json:"cart"`
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return ErrInvalidLineTotal
	}
	if d.IsNegative() {
		return ErrInvalidLineTotal
	}
	return nil
}
