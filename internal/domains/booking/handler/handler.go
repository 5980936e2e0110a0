package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"events-backend/internal/domains/booking/model"
	"events-backend/internal/domains/booking/service"
	"events-backend/internal/shared"
	"events-backend/internal/shared/response"
)

// =====================================================
// BOOKING HANDLER
// =====================================================
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking persists a pending booking from the checkout snapshot.
// POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor := identityFromContext(c)
	if actor == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, booking)
}

// ListBookings returns all bookings for admins, own bookings otherwise.
// GET /v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actor := identityFromContext(c)
	if actor == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), actor)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

// SetStatus is the admin status write. The body is the new status - either a
// bare string, a JSON string, or {"status": "...", "override": bool}; an
// override can also be requested with ?override=true.
// PUT /v1/bookings/:id
func (h *BookingHandler) SetStatus(c *gin.Context) {
	actor := identityFromContext(c)
	if actor == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	status, override, err := parseSetStatusBody(c)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if c.Query("override") == "true" {
		override = true
	}

	booking, err := h.bookingService.SetStatus(c.Request.Context(), actor, id, model.Status(status), override)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, booking)
}

func (h *BookingHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, model.ErrForbidden):
		response.Forbidden(c, "Admin role required")
	case errors.Is(err, model.ErrBookingNotFound):
		response.NotFound(c, "Booking not found")
	case errors.Is(err, model.ErrEmptyCart):
		response.BadRequest(c, "Cart snapshot has no lines")
	case errors.Is(err, model.ErrInvalidStatus):
		response.UnprocessableEntity(c, "Unknown booking status")
	case errors.Is(err, model.ErrInvalidTransition):
		response.UnprocessableEntity(c, "Status transition not allowed")
	case errors.Is(err, model.ErrStatusConflict):
		response.Conflict(c, "Booking status changed concurrently")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}

// parseSetStatusBody accepts the raw status string the storefront sends as
// well as the structured {"status", "override"} form.
func parseSetStatusBody(c *gin.Context) (string, bool, error) {
	data, err := c.GetRawData()
	if err != nil {
		return "", false, err
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "", false, errors.New("empty body")
	}

	if strings.HasPrefix(trimmed, "{") {
		var req model.SetStatusRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return "", false, err
		}
		return req.Status, req.Override, nil
	}

	var status string
	if err := json.Unmarshal(data, &status); err != nil {
		// Plain text body, not JSON
		status = trimmed
	}

	return status, false, nil
}

// identityFromContext rebuilds the caller's identity from the claims the
// auth middleware stored in the gin context.
func identityFromContext(c *gin.Context) *shared.Identity {
	userIDValue, exists := c.Get("userID")
	if !exists {
		return nil
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return nil
	}

	email := c.GetString("email")
	if email == "" {
		return nil
	}

	return &shared.Identity{
		UserID: userID,
		Email:  email,
		Role:   c.GetString("role"),
	}
}
