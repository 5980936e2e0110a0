package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"events-backend/internal/domains/cart/model"
	"events-backend/internal/domains/cart/service"
	"events-backend/internal/shared/response"
)

type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the caller's rehydrated cart.
// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to load cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// AddLine adds (or merges) a line item.
// POST /v1/cart/items
func (h *CartHandler) AddLine(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req model.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	cart, err := h.cartService.AddLine(c.Request.Context(), userID, req)
	if err != nil {
		response.InternalServerError(c, "Failed to update cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// RemoveLine deletes all lines matching (eventId, optionsLabel).
// DELETE /v1/cart/items
func (h *CartHandler) RemoveLine(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req model.RemoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	cart, err := h.cartService.RemoveLine(c.Request.Context(), userID, req)
	if err != nil {
		response.InternalServerError(c, "Failed to update cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity changes a line's quantity; zero removes the line.
// PUT /v1/cart/items
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, req)
	if err != nil {
		response.InternalServerError(c, "Failed to update cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ClearCart resets the cart to its empty initial state.
// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		response.InternalServerError(c, "Failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// ValidateCart runs the self-healing consistency check.
// POST /v1/cart/validate
func (h *CartHandler) ValidateCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	result, err := h.cartService.ValidateCart(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to validate cart")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetSummary returns the combined cart summary.
// GET /v1/cart/summary
func (h *CartHandler) GetSummary(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	summary, err := h.cartService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to load cart summary")
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *CartHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return uuid.Nil, false
	}

	return userID, true
}
