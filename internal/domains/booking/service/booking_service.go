package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"events-backend/internal/domains/booking/model"
	"events-backend/internal/domains/booking/repository"
	cartmodel "events-backend/internal/domains/cart/model"
	"events-backend/internal/shared"
	"events-backend/pkg/logger"
)

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates the booking service.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor *shared.Identity, req model.CreateBookingRequest) (*model.Booking, error) {
	if actor == nil || actor.Email == "" {
		return nil, model.ErrUnauthorized
	}

	if len(req.Lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	// The snapshot price is trusted as sent, mirroring the checkout flow;
	// a disagreement with the lines is logged for investigation.
	_, computed := cartmodel.ComputeTotals(req.Lines)
	if !computed.Equal(req.Price) {
		logger.Warn("booking price disagrees with snapshot lines", map[string]interface{}{
			"user_email":     actor.Email,
			"snapshot_price": req.Price,
			"computed_price": computed,
		})
	}

	now := time.Now()
	booking := &model.Booking{
		ID:        uuid.New(),
		UserEmail: actor.Email,
		Price:     req.Price,
		Status:    model.StatusPending,
		Lines:     req.Lines,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created", map[string]interface{}{
		"booking_id": booking.ID.String(),
		"user_email": booking.UserEmail,
		"price":      booking.Price,
	})

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actor *shared.Identity) ([]model.Booking, error) {
	if actor == nil || actor.Email == "" {
		return nil, model.ErrUnauthorized
	}

	if actor.IsAdmin() {
		return s.repo.ListAll(ctx)
	}

	return s.repo.ListByUserEmail(ctx, actor.Email)
}

func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, model.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ConfirmByIntent(ctx context.Context, intentRef string) (*model.Booking, error) {
	booking, err := s.repo.GetByIntentRef(ctx, intentRef)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, model.ErrBookingNotFound
	}

	// Duplicate gateway callbacks land here: once the booking is confirming
	// or paid there is nothing left to do.
	if booking.IsConfirmedOrBeyond() {
		return booking, nil
	}

	if booking.Status != model.StatusAwaitingPayment {
		return nil, model.ErrInvalidTransition
	}

	swapped, err := s.repo.UpdateStatusIf(ctx, booking.ID, model.StatusAwaitingPayment, model.StatusConfirming)
	if err != nil {
		return nil, err
	}

	if !swapped {
		// A concurrent confirmation won the swap. Re-read and treat this
		// call as the idempotent duplicate it is.
		current, err := s.repo.GetByID(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, model.ErrBookingNotFound
		}
		if current.IsConfirmedOrBeyond() {
			return current, nil
		}
		return nil, model.ErrStatusConflict
	}

	booking.Status = model.StatusConfirming

	logger.Info("booking confirmation received", map[string]interface{}{
		"booking_id": booking.ID.String(),
		"intent_ref": intentRef,
	})

	return booking, nil
}

func (s *bookingService) SetStatus(ctx context.Context, actor *shared.Identity, id uuid.UUID, status model.Status, override bool) (*model.Booking, error) {
	if actor == nil || actor.Email == "" {
		return nil, model.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return nil, model.ErrForbidden
	}

	if !status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if override {
		// Emergency escape hatch: bypasses the transition table. The
		// override marker separates these writes from gateway-driven
		// transitions in the audit trail.
		if err := s.repo.ForceStatus(ctx, id, status); err != nil {
			return nil, err
		}

		logger.Warn("booking status override", map[string]interface{}{
			"override":   true,
			"booking_id": id.String(),
			"actor":      actor.Email,
			"from":       booking.Status.String(),
			"to":         status.String(),
		})

		booking.Status = status
		return booking, nil
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, model.ErrInvalidTransition
	}

	swapped, err := s.repo.UpdateStatusIf(ctx, id, booking.Status, status)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, model.ErrStatusConflict
	}

	logger.Info("booking status updated", map[string]interface{}{
		"booking_id": id.String(),
		"actor":      actor.Email,
		"from":       booking.Status.String(),
		"to":         status.String(),
	})

	booking.Status = status
	return booking, nil
}
