package impl

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/pkg/errors"
)

type userRollup struct {
	userRepo repository.UserRepository
}

// NewUserRollup creates the account aggregate reader.
func NewUserRollup(userRepo repository.UserRepository) usecase.UserRollup {
	return &userRollup{userRepo: userRepo}
}

func (r *userRollup) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, repository.UserFilter{})
}

func (r *userRollup) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	return r.count(ctx, repository.UserFilter{Role: &role})
}

func (r *userRollup) CountActiveByRole(ctx context.Context, role entity.Role) (int64, error) {
	return r.count(ctx, repository.UserFilter{Role: &role, IsActive: boolPtr(true)})
}

func (r *userRollup) PendingAdmins(ctx context.Context) ([]*entity.User, error) {
	role := entity.RoleAdmin
	admins, err := r.userRepo.List(ctx, repository.UserFilter{Role: &role, IsActive: boolPtr(false)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending admins")
	}

	return admins, nil
}

func (r *userRollup) count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	count, err := r.userRepo.Count(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}
