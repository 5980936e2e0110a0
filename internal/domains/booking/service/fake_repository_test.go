package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"events-backend/internal/domains/booking/model"
)

// fakeBookingRepo is an in-memory BookingRepository whose conditional
// updates behave like the real WHERE-guarded writes: under concurrent calls
// exactly one compare-and-swap for the same pre-state can win.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*model.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*model.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *booking
	f.bookings[booking.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) GetByIntentRef(ctx context.Context, intentRef string) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, booking := range f.bookings {
		if booking.IntentRef != nil && *booking.IntentRef == intentRef {
			clone := *booking
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := []model.Booking{}
	for _, booking := range f.bookings {
		all = append(all, *booking)
	}
	return all, nil
}

func (f *fakeBookingRepo) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []model.Booking{}
	for _, booking := range f.bookings {
		if booking.UserEmail == email {
			matched = append(matched, *booking)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepo) SetIntentRef(ctx context.Context, id uuid.UUID, intentRef string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return false, nil
	}
	if booking.Status != model.StatusPending && booking.Status != model.StatusAwaitingPayment {
		return false, nil
	}

	booking.IntentRef = &intentRef
	booking.Status = model.StatusAwaitingPayment
	return true, nil
}

func (f *fakeBookingRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.Status) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return false, nil
	}

	booking.Status = to
	return true, nil
}

func (f *fakeBookingRepo) ForceStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok {
		return model.ErrBookingNotFound
	}

	booking.Status = status
	return nil
}
