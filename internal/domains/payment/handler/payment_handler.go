package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingmodel "events-backend/internal/domains/booking/model"
	bookingservice "events-backend/internal/domains/booking/service"
	"events-backend/internal/domains/payment/model"
	"events-backend/internal/domains/payment/service"
	"events-backend/internal/shared/response"
)

// =====================================================
// PAYMENT HANDLER
// =====================================================
type PaymentHandler struct {
	paymentService service.PaymentService
	bookingService bookingservice.BookingService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentService, bookingService bookingservice.BookingService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		bookingService: bookingService,
	}
}

// CreateIntent requests a gateway payment intent for a booking.
// POST /v1/payment-intents/:bookingId
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	result, err := h.paymentService.CreateIntent(c.Request.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingmodel.ErrBookingNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, model.ErrIntentNotCreatable):
			response.Conflict(c, "Booking is not awaiting an intent")
		case errors.Is(err, model.ErrGatewayUnavailable):
			response.ErrorResponse(c, http.StatusInternalServerError, "UPSTREAM_ERROR", "Payment gateway unavailable")
		default:
			response.InternalServerError(c, "Something went wrong")
		}
		return
	}

	// Raw shape kept for the storefront: { clientSecret }
	c.JSON(http.StatusOK, result)
}

// ConfirmByIntent advances the booking referenced by the gateway intent.
// Safe to call repeatedly for the same intent.
// PUT /v1/confirm/:intentRef
func (h *PaymentHandler) ConfirmByIntent(c *gin.Context) {
	intentRef := c.Param("intentRef")
	if intentRef == "" {
		response.BadRequest(c, "Intent reference is required")
		return
	}

	booking, err := h.bookingService.ConfirmByIntent(c.Request.Context(), intentRef)
	if err != nil {
		switch {
		case errors.Is(err, bookingmodel.ErrBookingNotFound):
			response.NotFound(c, "Booking not found")
		case errors.Is(err, bookingmodel.ErrInvalidTransition):
			response.UnprocessableEntity(c, "Booking is not awaiting payment")
		case errors.Is(err, bookingmodel.ErrStatusConflict):
			response.Conflict(c, "Booking status changed concurrently")
		default:
			response.InternalServerError(c, "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, booking)
}
