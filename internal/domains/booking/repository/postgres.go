package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"events-backend/internal/domains/booking/model"
	cartmodel "events-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) BookingRepository {
	return &postgresRepository{pool: pool}
}

// Create implements BookingRepository.Create
func (r *postgresRepository) Create(ctx context.Context, booking *model.Booking) error {
	lines, err := json.Marshal(booking.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal booking lines: %w", err)
	}

	query := `
		INSERT INTO bookings (id, user_email, price, status, intent_ref, lines, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserEmail,
		booking.Price,
		booking.Status,
		booking.IntentRef,
		lines,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByID implements BookingRepository.GetByID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, user_email, price, status, intent_ref, lines, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	return r.scanBooking(r.pool.QueryRow(ctx, query, id))
}

// GetByIntentRef implements BookingRepository.GetByIntentRef
func (r *postgresRepository) GetByIntentRef(ctx context.Context, intentRef string) (*model.Booking, error) {
	query := `
		SELECT id, user_email, price, status, intent_ref, lines, created_at, updated_at
		FROM bookings
		WHERE intent_ref = $1
	`

	return r.scanBooking(r.pool.QueryRow(ctx, query, intentRef))
}

// ListAll implements BookingRepository.ListAll
func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	query := `
		SELECT id, user_email, price, status, intent_ref, lines, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

// ListByUserEmail implements BookingRepository.ListByUserEmail
func (r *postgresRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Booking, error) {
	query := `
		SELECT id, user_email, price, status, intent_ref, lines, created_at, updated_at
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

// SetIntentRef implements BookingRepository.SetIntentRef
func (r *postgresRepository) SetIntentRef(ctx context.Context, id uuid.UUID, intentRef string) (bool, error) {
	query := `
		UPDATE bookings
		SET intent_ref = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND status IN ($4, $3)
	`

	tag, err := r.pool.Exec(ctx, query, id, intentRef, model.StatusAwaitingPayment, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to set intent ref: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateStatusIf implements BookingRepository.UpdateStatusIf
func (r *postgresRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to model.Status) (bool, error) {
	// Conditional update: the WHERE clause on the expected pre-state makes
	// concurrent duplicate callbacks resolve to exactly one transition.
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ForceStatus implements BookingRepository.ForceStatus
func (r *postgresRepository) ForceStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to force booking status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

func (r *postgresRepository) scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	var lines []byte

	err := row.Scan(
		&booking.ID,
		&booking.UserEmail,
		&booking.Price,
		&booking.Status,
		&booking.IntentRef,
		&lines,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found - return nil, not error
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if err := json.Unmarshal(lines, &booking.Lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking lines: %w", err)
	}
	if booking.Lines == nil {
		booking.Lines = []cartmodel.LineItem{}
	}

	return &booking, nil
}

func (r *postgresRepository) collectBookings(rows pgx.Rows) ([]model.Booking, error) {
	bookings := []model.Booking{}

	for rows.Next() {
		var booking model.Booking
		var lines []byte

		err := rows.Scan(
			&booking.ID,
			&booking.UserEmail,
			&booking.Price,
			&booking.Status,
			&booking.IntentRef,
			&lines,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		if err := json.Unmarshal(lines, &booking.Lines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal booking lines: %w", err)
		}
		if booking.Lines == nil {
			booking.Lines = []cartmodel.LineItem{}
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}
