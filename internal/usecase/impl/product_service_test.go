package impl

import (
	"context"
	"testing"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	mockRepo "ecobazaar/internal/mocks/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		Engine:       newTestEngine(t),
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func juteBagInput(categoryID *uuid.UUID) usecase.ProductInput {
	return usecase.ProductInput{
		Name:               "Jute Bag",
		Description:        "Reusable shopping bag",
		Price:              dec("12.50"),
		StockQuantity:      40,
		CategoryID:         categoryID,
		WeightKg:           dec("0.5"),
		ShippingDistanceKm: dec("30"),
		IsEcoFriendly:      true,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := newSeller(true)
	category := &entity.Category{ID: uuid.New(), Name: "Bags", IsActive: true}

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	var stored *entity.Product
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entity.Product) }).
		Return(nil)

	details, err := fx.service.CreateProduct(ctx, seller.ID, juteBagInput(&category.ID))
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
	assert.Equal(t, seller.ID, stored.SellerID)
	assert.True(t, dec("1.05").Equal(stored.Footprint.CarbonScore()))

	assert.Equal(t, entity.StatusPending, details.Status)
	assert.Equal(t, "Asha Rao", details.SellerName)
	assert.Equal(t, "Bags", details.CategoryName)
	assert.Equal(t, 9, details.EcoPoints)
	assert.True(t, dec("0.45").Equal(details.CarbonReduction))
}

func TestProductService_CreateProduct_SellerChecks(t *testing.T) {
	t.Run("unknown seller", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CreateProduct(ctx, sellerID, juteBagInput(nil))
		assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
	})

	t.Run("customer account", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		customer := newCustomer()

		fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

		_, err := fx.service.CreateProduct(ctx, customer.ID, juteBagInput(nil))
		assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
	})

	t.Run("seller awaiting approval", func(t *testing.T) {
		fx := createTestProductService(t)
		ctx := context.Background()
		seller := newSeller(false)

		fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

		_, err := fx.service.CreateProduct(ctx, seller.ID, juteBagInput(nil))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProductService_CreateProduct_NegativeWeight(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := newSeller(true)
	input := juteBagInput(nil)
	input.WeightKg = dec("-1")

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

	_, err := fx.service.CreateProduct(ctx, seller.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAttribute))
	fx.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := newSeller(true)
	categoryID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateProduct(ctx, seller.ID, juteBagInput(&categoryID))
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_UpdateProduct_Rescores(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := newSeller(true)
	product := newScoredProduct(t, seller, "0.5", "30", true)

	input := juteBagInput(nil)
	input.IsEcoFriendly = false

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	details, err := fx.service.UpdateProduct(ctx, seller.ID, product.ID, input)
	require.NoError(t, err)
	assert.True(t, dec("1.5").Equal(details.CarbonScore))
	assert.Equal(t, 0, details.EcoPoints)
	assert.True(t, details.CarbonReduction.IsZero())
	assert.True(t, product.IsActive, "update keeps the moderation state")
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := newScoredProduct(t, newSeller(true), "1", "10", false)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(ctx, uuid.New(), product.ID, juteBagInput(nil))
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestProductService_ListProducts_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter usecase.ProductFilter
		active *bool
	}{
		{name: "all", filter: usecase.ProductFilter{}},
		{name: "active only", filter: usecase.ProductFilter{ActiveOnly: true}, active: boolPtr(true)},
		{name: "pending wins", filter: usecase.ProductFilter{ActiveOnly: true, PendingOnly: true}, active: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()

			fx.productRepo.EXPECT().
				List(ctx, repository.ProductFilter{IsActive: tt.active}).
				Return([]*entity.Product{}, nil)

			products, err := fx.service.ListProducts(ctx, tt.filter)
			require.NoError(t, err)
			assert.Empty(t, products)
		})
	}
}

func TestProductService_DeleteProduct_InUse(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	seller := newSeller(true)
	product := newScoredProduct(t, seller, "1", "10", false)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(domainerrors.ErrProductInUse)

	err := fx.service.DeleteProduct(ctx, seller.ID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductInUse)
}

func TestProductService_PreviewScore(t *testing.T) {
	fx := createTestProductService(t)

	result, err := fx.service.PreviewScore(context.Background(), dec("0.5"), dec("30"), true)
	require.NoError(t, err)
	assert.True(t, dec("1.05").Equal(result.CarbonScore))
	assert.Equal(t, 9, result.EcoPoints)

	_, err = fx.service.PreviewScore(context.Background(), dec("1"), dec("-3"), false)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAttribute)
}
