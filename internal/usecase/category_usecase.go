package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	// IsActive is ignored on create; new categories are active.
	IsActive *bool
}

// CategoryUsecase defines category management.
type CategoryUsecase interface {
	// ListCategories returns every category with its product count.
	ListCategories(ctx context.Context) ([]CategoryStats, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category that no product references.
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}
