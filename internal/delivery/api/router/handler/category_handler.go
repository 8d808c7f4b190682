package handler

import (
	"net/http"

	"ecobazaar/internal/delivery/api/response"
	"ecobazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler serves category listing and administration.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

// CategoryRequest represents the request body for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

// ListCategories returns every category with its product count.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// CreateCategory adds an active category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryResponse(category))
}

// UpdateCategory renames, describes or (de)activates a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), categoryID, usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// DeleteCategory removes a category no product references.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}
