package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	valid := []Status{StatusPending, StatusAwaitingPayment, StatusConfirming, StatusPaid, StatusCancelled}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, Status("being confirmed!").IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("PAID").IsValid())
}

func TestStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusAwaitingPayment, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusConfirming, false},
		{StatusPending, StatusPaid, false},
		{StatusAwaitingPayment, StatusConfirming, true},
		{StatusAwaitingPayment, StatusCancelled, true},
		{StatusAwaitingPayment, StatusPaid, false},
		{StatusConfirming, StatusPaid, true},
		{StatusConfirming, StatusCancelled, true},
		{StatusConfirming, StatusAwaitingPayment, false},
		{StatusPaid, StatusCancelled, false},
		{StatusPaid, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAwaitingPayment.IsTerminal())
	assert.False(t, StatusConfirming.IsTerminal())
}

func TestBooking_IsConfirmedOrBeyond(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirming}).IsConfirmedOrBeyond())
	assert.True(t, (&Booking{Status: StatusPaid}).IsConfirmedOrBeyond())
	assert.False(t, (&Booking{Status: StatusAwaitingPayment}).IsConfirmedOrBeyond())
	assert.False(t, (&Booking{Status: StatusPending}).IsConfirmedOrBeyond())
}
