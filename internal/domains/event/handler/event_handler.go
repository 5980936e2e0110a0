package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"events-backend/internal/domains/event/model"
	"events-backend/internal/domains/event/service"
	"events-backend/internal/shared/response"
)

type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List returns events for a category, or the featured set without one.
// GET /v1/events?category=art
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.InternalServerError(c, "Failed to fetch events")
		return
	}

	response.Success(c, http.StatusOK, events)
}

// Get returns one event.
// GET /v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch event")
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Create adds a new event (admin only).
// POST /v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to create event")
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// Delete removes an event (admin only).
// DELETE /v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalServerError(c, "Failed to delete event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
