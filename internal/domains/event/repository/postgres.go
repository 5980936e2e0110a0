package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"events-backend/internal/domains/event/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) EventRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, event *model.Event) error {
	options, err := json.Marshal(event.Options)
	if err != nil {
		return fmt.Errorf("failed to marshal event options: %w", err)
	}

	query := `
		INSERT INTO events (id, title, description, image, location, price, cat_slug, is_featured, options, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Image,
		event.Location,
		event.Price,
		event.CatSlug,
		event.IsFeatured,
		options,
		event.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
		SELECT id, title, description, image, location, price, cat_slug, is_featured, options, created_at
		FROM events
		WHERE id = $1
	`

	event, err := r.scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *postgresRepository) ListByCategory(ctx context.Context, catSlug string) ([]model.Event, error) {
	query := `
		SELECT id, title, description, image, location, price, cat_slug, is_featured, options, created_at
		FROM events
		WHERE cat_slug = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, catSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by category: %w", err)
	}
	defer rows.Close()

	return r.collectEvents(rows)
}

func (r *postgresRepository) ListFeatured(ctx context.Context) ([]model.Event, error) {
	query := `
		SELECT id, title, description, image, location, price, cat_slug, is_featured, options, created_at
		FROM events
		WHERE is_featured = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured events: %w", err)
	}
	defer rows.Close()

	return r.collectEvents(rows)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrEventNotFound
	}

	return nil
}

func (r *postgresRepository) scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var options []byte

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Image,
		&event.Location,
		&event.Price,
		&event.CatSlug,
		&event.IsFeatured,
		&options,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &event.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event options: %w", err)
		}
	}

	return &event, nil
}

func (r *postgresRepository) collectEvents(rows pgx.Rows) ([]model.Event, error) {
	events := []model.Event{}

	for rows.Next() {
		var event model.Event
		var options []byte

		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Image,
			&event.Location,
			&event.Price,
			&event.CatSlug,
			&event.IsFeatured,
			&options,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if len(options) > 0 {
			if err := json.Unmarshal(options, &event.Options); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event options: %w", err)
			}
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}
