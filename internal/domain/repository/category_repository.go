package repository

import (
	"context"
	"errors"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameTaken is returned when a category name violates the unique constraint.
	ErrCategoryNameTaken = errors.New("category name already exists")
)

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List returns every category ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
