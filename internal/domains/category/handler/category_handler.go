package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"events-backend/internal/domains/category"
	"events-backend/internal/shared/response"
)

type CategoryHandler struct {
	categoryService category.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService category.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetAll returns every category.
// GET /v1/categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// Create adds a category (admin only).
// POST /v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields. Please provide title, description, color, image, and slug.")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err.Error())
		return
	}

	cat, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, category.ErrSlugTaken) {
			response.Conflict(c, "Category slug already exists")
			return
		}
		response.InternalServerError(c, "Failed to create category")
		return
	}

	response.Success(c, http.StatusCreated, cat)
}

// Delete removes a category (admin only).
// DELETE /v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		response.InternalServerError(c, "Failed to delete category")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
