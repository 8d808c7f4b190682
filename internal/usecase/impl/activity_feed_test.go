package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecobazaar/config"
	"ecobazaar/internal/domain/entity"
	mockRepo "ecobazaar/internal/mocks/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityFeedFixtures struct {
	builder     usecase.ActivityFeedBuilder
	userRepo    *mockRepo.MockUserRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestActivityFeed(t *testing.T, defaultLimit int) activityFeedFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	cfg := &config.Config{Dashboard: &config.DashboardConfig{ActivityLimit: defaultLimit}}

	return activityFeedFixtures{
		builder:     NewActivityFeedBuilder(userRepo, productRepo, orderRepo, cfg),
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (fx activityFeedFixtures) expectSources(ctx context.Context, sellers []*entity.User, products []*entity.Product, orders []*entity.Order) {
	fx.userRepo.EXPECT().ListRecentByRole(ctx, entity.RoleSeller, 5).Return(sellers, nil)
	fx.productRepo.EXPECT().ListRecent(ctx, 5).Return(products, nil)
	fx.orderRepo.EXPECT().ListRecent(ctx, 3).Return(orders, nil)
}

func TestActivityFeedBuilder_Build_MergesNewestFirst(t *testing.T) {
	fx := createTestActivityFeed(t, 10)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seller := &entity.User{ID: uuid.New(), FirstName: "Asha", LastName: "Rao", Role: entity.RoleSeller, CreatedAt: base}
	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Bamboo Toothbrush",
		IsActive:  true,
		CreatedAt: base.Add(2 * time.Hour),
		Seller:    &entity.User{FirstName: "Asha"},
	}
	order := &entity.Order{
		ID:        uuid.New(),
		Status:    entity.OrderStatusDelivered,
		CreatedAt: base.Add(time.Hour),
		Customer:  &entity.User{FirstName: "Lena", LastName: "Park"},
	}

	fx.expectSources(ctx, []*entity.User{seller}, []*entity.Product{product}, []*entity.Order{order})

	events, err := fx.builder.Build(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, entity.ActivityProductAdded, events[0].Kind)
	assert.Equal(t, `Product "Bamboo Toothbrush" added by Asha`, events[0].Description)
	assert.Equal(t, entity.StatusApproved, events[0].Status)
	assert.Equal(t, entity.SubjectProduct, events[0].SubjectType)

	assert.Equal(t, entity.ActivityOrderPlaced, events[1].Kind)
	assert.Equal(t, "Order placed by Lena Park", events[1].Description)
	assert.Equal(t, "DELIVERED", events[1].Status)

	assert.Equal(t, entity.ActivityUserRegistration, events[2].Kind)
	assert.Equal(t, `New seller "Asha Rao" registered`, events[2].Description)
	assert.Equal(t, entity.StatusPending, events[2].Status)
	assert.Equal(t, seller.ID, events[2].SubjectID)
}

func TestActivityFeedBuilder_Build_TiesKeepSourceOrder(t *testing.T) {
	fx := createTestActivityFeed(t, 10)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seller := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, CreatedAt: at}
	product := &entity.Product{ID: uuid.New(), CreatedAt: at}
	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending, CreatedAt: at}

	fx.expectSources(ctx, []*entity.User{seller}, []*entity.Product{product}, []*entity.Order{order})

	events, err := fx.builder.Build(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, seller.ID, events[0].SubjectID)
	assert.Equal(t, product.ID, events[1].SubjectID)
	assert.Equal(t, order.ID, events[2].SubjectID)
	assert.Equal(t, `Product "" added by unknown seller`, events[1].Description)
}

func TestActivityFeedBuilder_Build_Limits(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	sellers := make([]*entity.User, 0, 5)
	products := make([]*entity.Product, 0, 5)
	orders := make([]*entity.Order, 0, 3)
	for i := range 5 {
		sellers = append(sellers, &entity.User{ID: uuid.New(), FirstName: fmt.Sprintf("s%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		products = append(products, &entity.Product{ID: uuid.New(), CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	for i := range 3 {
		orders = append(orders, &entity.Order{ID: uuid.New(), Status: entity.OrderStatusConfirmed, CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour)})
	}

	tests := []struct {
		name         string
		defaultLimit int
		limit        int
		want         int
	}{
		{name: "explicit limit truncates", defaultLimit: 10, limit: 4, want: 4},
		{name: "zero uses default", defaultLimit: 10, limit: 0, want: 10},
		{name: "negative uses configured default", defaultLimit: 6, limit: -1, want: 6},
		{name: "never more than the sources", defaultLimit: 10, limit: 50, want: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestActivityFeed(t, tt.defaultLimit)
			ctx := context.Background()
			fx.expectSources(ctx, sellers, products, orders)

			events, err := fx.builder.Build(ctx, tt.limit)
			require.NoError(t, err)
			require.Len(t, events, tt.want)

			for i := 1; i < len(events); i++ {
				assert.False(t, events[i].Timestamp.After(events[i-1].Timestamp))
			}
			assert.Equal(t, orders[2].ID, events[0].SubjectID)
		})
	}
}

func TestActivityFeedBuilder_Build_EmptySources(t *testing.T) {
	fx := createTestActivityFeed(t, 10)
	ctx := context.Background()
	fx.expectSources(ctx, nil, nil, nil)

	events, err := fx.builder.Build(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
}

func TestActivityFeedBuilder_Build_FreshSliceEachCall(t *testing.T) {
	fx := createTestActivityFeed(t, 10)
	ctx := context.Background()
	seller := &entity.User{ID: uuid.New(), CreatedAt: time.Now()}

	fx.userRepo.EXPECT().ListRecentByRole(ctx, entity.RoleSeller, 5).Return([]*entity.User{seller}, nil).Twice()
	fx.productRepo.EXPECT().ListRecent(ctx, 5).Return(nil, nil).Twice()
	fx.orderRepo.EXPECT().ListRecent(ctx, 3).Return(nil, nil).Twice()

	first, err := fx.builder.Build(ctx, 10)
	require.NoError(t, err)
	first[0].Description = "mutated"

	second, err := fx.builder.Build(ctx, 10)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Description)
}
