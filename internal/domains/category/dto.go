package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest creates a new category (admin only). All fields are
// required, matching the storefront's add-category form.
type CreateCategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
}

// Validate validates CreateCategoryRequest
func (req CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Color, validation.Required),
		validation.Field(&req.Image, validation.Required),
		validation.Field(&req.Slug, validation.Required, validation.Length(1, 100)),
	)
}
