package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"events-backend/internal/domains/category"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryServiceImpl{
		repository: repo,
	}
}

func (s *categoryServiceImpl) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	existing, err := s.repository.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, category.ErrSlugTaken
	}

	cat := &category.Category{
		ID:          uuid.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Color:       req.Color,
		CreatedAt:   time.Now(),
	}

	if err := s.repository.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *categoryServiceImpl) GetAll(ctx context.Context) ([]category.Category, error) {
	return s.repository.GetAll(ctx)
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}
