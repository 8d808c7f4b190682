package impl

import (
	"context"
	"slices"
	"testing"
	"time"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	mockRepo "ecobazaar/internal/mocks/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderRollupFixtures struct {
	rollup      usecase.OrderRollup
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestOrderRollup(t *testing.T) orderRollupFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return orderRollupFixtures{
		rollup:      NewOrderRollup(orderRepo, productRepo, userRepo, newDiscardLogger()),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestOrderRollup_OrderCarbonFootprint(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()

	seller := newSeller(true)
	bag := newScoredProduct(t, seller, "0.5", "30", true)
	bottle := newScoredProduct(t, seller, "1", "20", false)
	deletedID := uuid.New()

	order := &entity.Order{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		TotalCarbonScore: dec("9.99"),
		Items: []entity.OrderItem{
			{ProductID: bag.ID, Quantity: 2},
			{ProductID: bottle.ID, Quantity: 1},
			{ProductID: deletedID, Quantity: 4},
			{ProductID: bag.ID, Quantity: 1},
		},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 3 &&
				slices.Contains(ids, bag.ID) &&
				slices.Contains(ids, bottle.ID) &&
				slices.Contains(ids, deletedID)
		})).
		Return([]*entity.Product{bag, bottle}, nil)

	carbon, err := fx.rollup.OrderCarbonFootprint(ctx, order.ID)
	require.NoError(t, err)

	// 1.05*2 + 2*1 + 1.05*1
	assert.True(t, dec("5.15").Equal(carbon.CarbonScore), "got %s", carbon.CarbonScore)
	assert.True(t, dec("9.99").Equal(carbon.RecordedCarbonScore))
	assert.Equal(t, 1, carbon.MissingProducts)
}

func TestOrderRollup_OrderCarbonFootprint_NotFound(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.rollup.OrderCarbonFootprint(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderRollup_OrderCarbonFootprint_EmptyOrder(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	carbon, err := fx.rollup.OrderCarbonFootprint(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, carbon.CarbonScore.IsZero())
	fx.productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestOrderRollup_SellerSales(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()
	seller := newSeller(true)

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.orderRepo.EXPECT().SalesBySeller(ctx, []uuid.UUID{seller.ID}).Return([]repository.SellerSalesTotals{{
		SellerID:    seller.ID,
		SalesTotals: repository.SalesTotals{OrderCount: 2, Revenue: dec("75.40")},
	}}, nil)

	stats, err := fx.rollup.SellerSales(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.OrderCount)
	assert.True(t, dec("75.40").Equal(stats.Revenue))
}

func TestOrderRollup_CustomerSpend(t *testing.T) {
	t.Run("customer without orders", func(t *testing.T) {
		fx := createTestOrderRollup(t)
		ctx := context.Background()
		customer := newCustomer()

		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
		fx.orderRepo.EXPECT().SpendByCustomer(ctx, []uuid.UUID{customer.ID}).Return(nil, nil)

		spend, err := fx.rollup.CustomerSpend(ctx, customer.ID)
		require.NoError(t, err)
		assert.Zero(t, spend.OrderCount)
		assert.True(t, spend.TotalSpent.IsZero())
	})

	t.Run("unknown customer", func(t *testing.T) {
		fx := createTestOrderRollup(t)
		ctx := context.Background()
		customerID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, customerID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.rollup.CustomerSpend(ctx, customerID)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}

func TestOrderRollup_ProductSales(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()
	product := newScoredProduct(t, newSeller(true), "1", "1", false)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.orderRepo.EXPECT().SalesOfProduct(ctx, product.ID).Return(repository.SalesTotals{OrderCount: 3, Revenue: dec("37.50")}, nil)

	stats, err := fx.rollup.ProductSales(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.OrderCount)
	assert.True(t, dec("37.50").Equal(stats.Revenue))
}

func TestOrderRollup_CustomerOrders(t *testing.T) {
	fx := createTestOrderRollup(t)
	ctx := context.Background()
	customer := newCustomer()
	product := newScoredProduct(t, newSeller(true), "1", "1", false)

	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Customer:   customer,
		Status:     entity.OrderStatusShipped,
		TotalPrice: dec("25"),
		CreatedAt:  time.Now(),
		Items: []entity.OrderItem{
			{ProductID: product.ID, Quantity: 2, Price: dec("12.50"), Product: product},
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.orderRepo.EXPECT().List(ctx, repository.OrderFilter{CustomerID: &customer.ID}).Return([]*entity.Order{order}, nil)

	orders, err := fx.rollup.CustomerOrders(ctx, &customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Lena Park", orders[0].CustomerName)
	assert.Equal(t, entity.OrderStatusShipped, orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Jute Bag", orders[0].Items[0].ProductName)
}
