package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events-backend/internal/domains/booking/model"
	cartmodel "events-backend/internal/domains/cart/model"
	"events-backend/internal/shared"
)

func customer(email string) *shared.Identity {
	return &shared.Identity{UserID: uuid.New(), Email: email, Role: shared.RoleCustomer}
}

func admin(email string) *shared.Identity {
	return &shared.Identity{UserID: uuid.New(), Email: email, Role: shared.RoleAdmin}
}

func snapshot() model.CreateBookingRequest {
	return model.CreateBookingRequest{
		Lines: []cartmodel.LineItem{
			{EventID: "E1", Title: "Jazz Night", OptionsLabel: "standard", Quantity: 2, LineTotal: decimal.NewFromInt(40)},
			{EventID: "E2", Title: "Art Expo", OptionsLabel: "vip", Quantity: 1, LineTotal: decimal.NewFromInt(50)},
		},
		Price: decimal.NewFromInt(90),
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an authenticated identity", func(t *testing.T) {
		svc := NewBookingService(newFakeBookingRepo())

		_, err := svc.CreateBooking(ctx, nil, snapshot())
		assert.ErrorIs(t, err, model.ErrUnauthorized)

		_, err = svc.CreateBooking(ctx, &shared.Identity{}, snapshot())
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("rejects an empty cart snapshot", func(t *testing.T) {
		svc := NewBookingService(newFakeBookingRepo())

		_, err := svc.CreateBooking(ctx, customer("ann@example.com"), model.CreateBookingRequest{
			Lines: []cartmodel.LineItem{},
			Price: decimal.Zero,
		})
		assert.ErrorIs(t, err, model.ErrEmptyCart)
	})

	t.Run("persists a pending booking from the snapshot", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)

		booking, err := svc.CreateBooking(ctx, customer("ann@example.com"), snapshot())
		require.NoError(t, err)

		assert.Equal(t, model.StatusPending, booking.Status)
		assert.Equal(t, "ann@example.com", booking.UserEmail)
		assert.True(t, booking.Price.Equal(decimal.NewFromInt(90)))
		assert.Len(t, booking.Lines, 2)
		assert.Nil(t, booking.IntentRef)

		persisted, err := repo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, model.StatusPending, persisted.Status)
	})
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo)

	ann := customer("ann@example.com")
	bob := customer("bob@example.com")

	_, err := svc.CreateBooking(ctx, ann, snapshot())
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, ann, snapshot())
	require.NoError(t, err)
	_, err = svc.CreateBooking(ctx, bob, snapshot())
	require.NoError(t, err)

	t.Run("admin sees all bookings", func(t *testing.T) {
		all, err := svc.ListBookings(ctx, admin("ops@example.com"))
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("non-admin sees only own bookings", func(t *testing.T) {
		own, err := svc.ListBookings(ctx, ann)
		require.NoError(t, err)
		require.Len(t, own, 2)
		for _, b := range own {
			assert.Equal(t, "ann@example.com", b.UserEmail)
		}
	})

	t.Run("rejects anonymous callers", func(t *testing.T) {
		_, err := svc.ListBookings(ctx, nil)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func awaitingBooking(t *testing.T, repo *fakeBookingRepo, svc BookingService, intentRef string) *model.Booking {
	t.Helper()

	booking, err := svc.CreateBooking(context.Background(), customer("ann@example.com"), snapshot())
	require.NoError(t, err)

	applied, err := repo.SetIntentRef(context.Background(), booking.ID, intentRef)
	require.NoError(t, err)
	require.True(t, applied)

	return booking
}

func TestConfirmByIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown intent ref", func(t *testing.T) {
		svc := NewBookingService(newFakeBookingRepo())

		_, err := svc.ConfirmByIntent(ctx, "pi_missing")
		assert.ErrorIs(t, err, model.ErrBookingNotFound)
	})

	t.Run("advances awaiting_payment to confirming", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		booking := awaitingBooking(t, repo, svc, "pi_1")

		confirmed, err := svc.ConfirmByIntent(ctx, "pi_1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirming, confirmed.Status)

		persisted, err := repo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirming, persisted.Status)
	})

	t.Run("repeat confirmation is a no-op, not an error", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		awaitingBooking(t, repo, svc, "pi_1")

		first, err := svc.ConfirmByIntent(ctx, "pi_1")
		require.NoError(t, err)
		require.Equal(t, model.StatusConfirming, first.Status)

		second, err := svc.ConfirmByIntent(ctx, "pi_1")
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirming, second.Status)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("concurrent confirmations produce exactly one transition", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		booking := awaitingBooking(t, repo, svc, "pi_1")

		const callers = 16
		var wg sync.WaitGroup
		errs := make([]error, callers)
		results := make([]*model.Booking, callers)

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.ConfirmByIntent(ctx, "pi_1")
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i], "caller %d", i)
			require.NotNil(t, results[i], "caller %d", i)
			assert.Equal(t, model.StatusConfirming, results[i].Status, "caller %d", i)
		}

		persisted, err := repo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirming, persisted.Status)
	})

	t.Run("booking without an intent flow is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)

		booking, err := svc.CreateBooking(ctx, customer("ann@example.com"), snapshot())
		require.NoError(t, err)

		// Force an intent ref without the status advance, leaving the
		// booking pending.
		repo.mu.Lock()
		ref := "pi_orphan"
		repo.bookings[booking.ID].IntentRef = &ref
		repo.mu.Unlock()

		_, err = svc.ConfirmByIntent(ctx, "pi_orphan")
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeBookingRepo, BookingService, *model.Booking) {
		repo := newFakeBookingRepo()
		svc := NewBookingService(repo)
		booking, err := svc.CreateBooking(ctx, customer("ann@example.com"), snapshot())
		require.NoError(t, err)
		return repo, svc, booking
	}

	t.Run("non-admin is forbidden", func(t *testing.T) {
		_, svc, booking := setup(t)

		_, err := svc.SetStatus(ctx, customer("ann@example.com"), booking.ID, model.StatusCancelled, false)
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("unknown status is rejected even with override", func(t *testing.T) {
		_, svc, booking := setup(t)

		_, err := svc.SetStatus(ctx, admin("ops@example.com"), booking.ID, model.Status("being confirmed!"), true)
		assert.ErrorIs(t, err, model.ErrInvalidStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.SetStatus(ctx, admin("ops@example.com"), uuid.New(), model.StatusCancelled, false)
		assert.ErrorIs(t, err, model.ErrBookingNotFound)
	})

	t.Run("valid transition is applied", func(t *testing.T) {
		repo, svc, booking := setup(t)

		updated, err := svc.SetStatus(ctx, admin("ops@example.com"), booking.ID, model.StatusCancelled, false)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, updated.Status)

		persisted, err := repo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, persisted.Status)
	})

	t.Run("transition outside the table is rejected without override", func(t *testing.T) {
		_, svc, booking := setup(t)

		_, err := svc.SetStatus(ctx, admin("ops@example.com"), booking.ID, model.StatusPaid, false)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("override bypasses the transition table", func(t *testing.T) {
		repo, svc, booking := setup(t)

		updated, err := svc.SetStatus(ctx, admin("ops@example.com"), booking.ID, model.StatusPaid, true)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPaid, updated.Status)

		persisted, err := repo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPaid, persisted.Status)
	})
}
