// Package repository declares the storage ports of the marketplace. Lookups
// report a missing row with the ErrXNotFound sentinels of this package.
package repository

import (
	"context"
	"errors"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows user listings and counts. Nil fields do not filter.
type UserFilter struct {
	Role     *entity.Role
	IsActive *bool
}

// UserRepository stores marketplace accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the lower-cased address exactly.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	// Update never writes the role column.
	Update(ctx context.Context, user *entity.User) error

	// List returns the users matching the filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// ListRecentByRole returns at most limit users of the role, newest first.
	ListRecentByRole(ctx context.Context, role entity.Role, limit int) ([]*entity.User, error)

	// Count returns the number of users matching the filter.
	Count(ctx context.Context, filter UserFilter) (int64, error)
}
