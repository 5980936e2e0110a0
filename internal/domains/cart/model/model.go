package model

import (
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry, identified by event plus chosen option.
//
// LineTotal is the TOTAL price for Quantity units of this option, not a unit
// price. Every mutator must preserve this convention: merging two lines adds
// their LineTotal fields directly.
type LineItem struct {
	EventID      string          `json:"eventId"`
	Title        string          `json:"title"`
	Image        string          `json:"image,omitempty"`
	OptionsLabel string          `json:"optionsLabel,omitempty"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

// Matches reports whether the line has the given merge key. Lines with the
// same event but different option labels stay separate.
func (li LineItem) Matches(eventID, optionsLabel string) bool {
	return li.EventID == eventID && li.OptionsLabel == optionsLabel
}

// UnitPrice derives the per-unit price from the line's total.
func (li LineItem) UnitPrice() decimal.Decimal {
	if li.Quantity <= 0 {
		return decimal.Zero
	}
	return li.LineTotal.Div(decimal.NewFromInt(int64(li.Quantity)))
}

// CartState is the persisted cart shape. TotalQuantity and TotalPrice are
// always recomputed from Lines after a mutation, never tracked incrementally,
// so the aggregates cannot drift from the lines they summarize.
type CartState struct {
	Lines         []LineItem      `json:"lines"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

// EmptyState returns the initial cart state.
func EmptyState() CartState {
	return CartState{
		Lines:         []LineItem{},
		TotalQuantity: 0,
		TotalPrice:    decimal.Zero,
	}
}

// ComputeTotals recalculates the aggregates from scratch.
func ComputeTotals(lines []LineItem) (totalQuantity int, totalPrice decimal.Decimal) {
	totalPrice = decimal.Zero
	for _, line := range lines {
		totalQuantity += line.Quantity
		totalPrice = totalPrice.Add(line.LineTotal)
	}
	return totalQuantity, totalPrice
}

// Summary combines the cart's query helpers into one object.
type Summary struct {
	ItemCount      int             `json:"item_count"`
	TotalQuantity  int             `json:"total_quantity"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	FormattedTotal string          `json:"formatted_total"`
	IsEmpty        bool            `json:"is_empty"`
}
