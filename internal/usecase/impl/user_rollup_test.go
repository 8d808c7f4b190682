package impl

import (
	"context"
	"testing"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	mockRepo "ecobazaar/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRollup_Counts(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	rollup := NewUserRollup(userRepo)

	seller := entity.RoleSeller
	userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(12), nil).Once()
	userRepo.EXPECT().Count(ctx, repository.UserFilter{Role: &seller}).Return(int64(4), nil).Once()
	userRepo.EXPECT().Count(ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.Role != nil && *f.Role == entity.RoleSeller && f.IsActive != nil && *f.IsActive
	})).Return(int64(3), nil).Once()

	total, err := rollup.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	sellers, err := rollup.CountByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sellers)

	active, err := rollup.CountActiveByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(3), active)
}

func TestUserRollup_CountFailure(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(0), errors.New("timeout")).Once()

	_, err := NewUserRollup(userRepo).CountUsers(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count users")
}

func TestUserRollup_PendingAdmins(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	pending := []*entity.User{{Role: entity.RoleAdmin}}
	userRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.Role != nil && *f.Role == entity.RoleAdmin && f.IsActive != nil && !*f.IsActive
	})).Return(pending, nil).Once()

	admins, err := NewUserRollup(userRepo).PendingAdmins(ctx)

	require.NoError(t, err)
	assert.Equal(t, pending, admins)
}
