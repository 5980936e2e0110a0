package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartmodel "events-backend/internal/domains/cart/model"
)

// =====================================================
// BOOKING STATUS
// =====================================================

// Status is the closed set of booking payment states. The raw column is a
// string, but every write goes through this type so unknown values cannot
// enter the lifecycle.
type Status string

const (
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirming      Status = "confirming"
	StatusPaid            Status = "paid"
	StatusCancelled       Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAwaitingPayment, StatusConfirming, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further automated transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// transitions is the table of allowed automated transitions. The admin
// override path bypasses this table explicitly; nothing else does.
var transitions = map[Status][]Status{
	StatusPending:         {StatusAwaitingPayment, StatusCancelled},
	StatusAwaitingPayment: {StatusConfirming, StatusCancelled},
	StatusConfirming:      {StatusPaid, StatusCancelled},
	StatusPaid:            {},
	StatusCancelled:       {},
}

// CanTransitionTo reports whether s -> next is an allowed transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// =====================================================
// ENTITY: Booking
// =====================================================

// Booking is a persisted checkout attempt linking a user, a cart snapshot,
// a price, and a payment status.
type Booking struct {
	ID        uuid.UUID            `json:"id"`
	UserEmail string               `json:"user_email"`
	Price     decimal.Decimal      `json:"price"`
	Status    Status               `json:"status"`
	IntentRef *string              `json:"intent_ref,omitempty"`
	Lines     []cartmodel.LineItem `json:"lines"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// HasIntent reports whether a payment intent has been recorded.
func (b *Booking) HasIntent() bool {
	return b.IntentRef != nil && *b.IntentRef != ""
}

// IsConfirmedOrBeyond reports whether the gateway confirmation already
// landed, making further confirmations a no-op.
func (b *Booking) IsConfirmedOrBeyond() bool {
	return b.Status == StatusConfirming || b.Status == StatusPaid
}
