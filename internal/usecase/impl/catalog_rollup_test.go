package impl

import (
	"context"
	"testing"
	"time"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	mockRepo "ecobazaar/internal/mocks/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogRollupFixtures struct {
	rollup       usecase.CatalogRollup
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCatalogRollup(t *testing.T) catalogRollupFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	return catalogRollupFixtures{
		rollup:       NewCatalogRollup(productRepo, userRepo, categoryRepo),
		productRepo:  productRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func TestCatalogRollup_Counters(t *testing.T) {
	fx := createTestCatalogRollup(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().Count(ctx, repository.ProductFilter{}).Return(int64(7), nil)
	fx.productRepo.EXPECT().Count(ctx, repository.ProductFilter{IsActive: boolPtr(true)}).Return(int64(4), nil)
	fx.productRepo.EXPECT().SumCarbonScore(ctx, repository.ProductFilter{}).Return(decimal.Zero, nil)

	total, err := fx.rollup.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	active, err := fx.rollup.CountActiveProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), active)

	impact, err := fx.rollup.TotalCarbonImpact(ctx)
	require.NoError(t, err)
	assert.True(t, impact.IsZero())
}

func TestCatalogRollup_SellerCatalog(t *testing.T) {
	t.Run("seller with products", func(t *testing.T) {
		fx := createTestCatalogRollup(t)
		ctx := context.Background()
		seller := newSeller(true)

		fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
		fx.productRepo.EXPECT().TotalsBySeller(ctx, []uuid.UUID{seller.ID}).Return([]repository.SellerCatalogTotals{{
			SellerID:           seller.ID,
			ProductCount:       3,
			ActiveProductCount: 2,
			CarbonImpact:       dec("4.2"),
			CarbonReduction:    dec("0.9"),
		}}, nil)

		stats, err := fx.rollup.SellerCatalog(ctx, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.ProductCount)
		assert.Equal(t, int64(2), stats.ActiveProductCount)
		assert.True(t, dec("4.2").Equal(stats.CarbonImpact))
		assert.True(t, dec("0.9").Equal(stats.CarbonReduction))
	})

	t.Run("seller without products", func(t *testing.T) {
		fx := createTestCatalogRollup(t)
		ctx := context.Background()
		seller := newSeller(false)

		fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
		fx.productRepo.EXPECT().TotalsBySeller(ctx, []uuid.UUID{seller.ID}).Return(nil, nil)

		stats, err := fx.rollup.SellerCatalog(ctx, seller.ID)
		require.NoError(t, err)
		assert.Zero(t, stats.ProductCount)
		assert.True(t, stats.CarbonImpact.Equal(decimal.Zero))
	})

	t.Run("unknown seller", func(t *testing.T) {
		fx := createTestCatalogRollup(t)
		ctx := context.Background()
		sellerID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.rollup.SellerCatalog(ctx, sellerID)
		assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
	})
}

func TestCatalogRollup_CategoryBreakdown_IncludesEmptyCategories(t *testing.T) {
	fx := createTestCatalogRollup(t)
	ctx := context.Background()

	bags := &entity.Category{ID: uuid.New(), Name: "Bags", IsActive: true, CreatedAt: time.Now()}
	soaps := &entity.Category{ID: uuid.New(), Name: "Soaps", IsActive: false, CreatedAt: time.Now()}

	fx.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{bags, soaps}, nil)
	fx.productRepo.EXPECT().CountByCategory(ctx).Return(map[uuid.UUID]int64{bags.ID: 5}, nil)

	stats, err := fx.rollup.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Bags", stats[0].Name)
	assert.Equal(t, int64(5), stats[0].ProductCount)
	assert.Equal(t, "Soaps", stats[1].Name)
	assert.Zero(t, stats[1].ProductCount)
	assert.False(t, stats[1].IsActive)
}

func TestCatalogRollup_CategoryProductCount_UnknownCategory(t *testing.T) {
	fx := createTestCatalogRollup(t)
	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.rollup.CategoryProductCount(ctx, categoryID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestUserRollup_CountsAndPendingAdmins(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	rollup := NewUserRollup(userRepo)
	ctx := context.Background()

	seller := entity.RoleSeller
	admin := entity.RoleAdmin
	pending := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(10), nil)
	userRepo.EXPECT().Count(ctx, repository.UserFilter{Role: &seller}).Return(int64(4), nil)
	userRepo.EXPECT().Count(ctx, repository.UserFilter{Role: &seller, IsActive: boolPtr(true)}).Return(int64(3), nil)
	userRepo.EXPECT().List(ctx, repository.UserFilter{Role: &admin, IsActive: boolPtr(false)}).Return([]*entity.User{pending}, nil)

	total, err := rollup.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	sellers, err := rollup.CountByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sellers)

	activeSellers, err := rollup.CountActiveByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, int64(3), activeSellers)

	admins, err := rollup.PendingAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.User{pending}, admins)
}
