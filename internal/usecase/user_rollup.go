package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"
)

// UserRollup aggregates counters over accounts.
type UserRollup interface {
	CountUsers(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
	CountActiveByRole(ctx context.Context, role entity.Role) (int64, error)

	// PendingAdmins lists admin accounts still awaiting approval.
	PendingAdmins(ctx context.Context) ([]*entity.User, error)
}
