package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"events-backend/internal/domains/category"
	"events-backend/pkg/cache"
	"events-backend/pkg/logger"
)

const (
	cacheKeyAll = "categories:all"
	cacheTTL    = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.CategoryRepository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, cat *category.Category) error {
	query := `
		INSERT INTO categories (id, slug, title, image, description, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.Slug,
		cat.Title,
		cat.Image,
		cat.Description,
		cat.Color,
		cat.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	// Stale list cache is worse than a miss
	if err := r.cache.Delete(ctx, cacheKeyAll); err != nil {
		logger.Error("failed to invalidate category cache", err)
	}

	return nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	query := `
		SELECT id, slug, title, image, description, color, created_at
		FROM categories
		WHERE slug = $1
	`

	var cat category.Category
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&cat.ID,
		&cat.Slug,
		&cat.Title,
		&cat.Image,
		&cat.Description,
		&cat.Color,
		&cat.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &cat, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	var cached []category.Category
	found, err := r.cache.Get(ctx, cacheKeyAll, &cached)
	if err == nil && found {
		return cached, nil
	}

	query := `
		SELECT id, slug, title, image, description, color, created_at
		FROM categories
		ORDER BY title
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []category.Category{}
	for rows.Next() {
		var cat category.Category
		err := rows.Scan(
			&cat.ID,
			&cat.Slug,
			&cat.Title,
			&cat.Image,
			&cat.Description,
			&cat.Color,
			&cat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKeyAll, categories, cacheTTL); err != nil {
		logger.Error("failed to cache categories", err)
	}

	return categories, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	if err := r.cache.Delete(ctx, cacheKeyAll); err != nil {
		logger.Error("failed to invalidate category cache", err)
	}

	return nil
}
