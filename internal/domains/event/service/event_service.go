package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"events-backend/internal/domains/event/model"
	"events-backend/internal/domains/event/repository"
)

type eventService struct {
	repo repository.EventRepository
}

// NewEventService creates the event service.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context, categorySlug string) ([]model.Event, error) {
	if categorySlug != "" {
		return s.repo.ListByCategory(ctx, categorySlug)
	}
	return s.repo.ListFeatured(ctx)
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, model.ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		ID:         uuid.New(),
		Title:      req.Title,
		Image:      req.Image,
		Price:      req.Price,
		CatSlug:    req.CatSlug,
		IsFeatured: req.IsFeatured,
		Options:    req.Options,
		CreatedAt:  time.Now(),
	}

	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Location != "" {
		event.Location = &req.Location
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
