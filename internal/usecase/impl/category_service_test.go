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

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	txFactory    *mockRepo.StubRepositoryFactory
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Catalog:      NewCatalogRollup(productRepo, userRepo, categoryRepo),
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		txFactory:    &mockRepo.StubRepositoryFactory{Categories: categoryRepo, Products: productRepo},
	}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Home & Living" && c.IsActive })).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, usecase.CategoryInput{Name: "  Home & Living ", Description: "Household goods"})
	require.NoError(t, err)
	assert.Equal(t, "Home & Living", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryService_CreateCategory_Errors(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		fx := createTestCategoryService(t)

		_, err := fx.service.CreateCategory(context.Background(), usecase.CategoryInput{Name: "   "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrCategoryNameTaken)

		_, err := fx.service.CreateCategory(ctx, usecase.CategoryInput{Name: "Bags"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Bags", IsActive: true}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil)

	updated, err := fx.service.UpdateCategory(ctx, category.ID, usecase.CategoryInput{
		Name:        "Bags & Totes",
		Description: "Carry goods",
		IsActive:    boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bags & Totes", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("empty category", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()
		categoryID := uuid.New()

		fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(fx.txFactory)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.productRepo.EXPECT().Count(ctx, repository.ProductFilter{CategoryID: &categoryID}).Return(int64(0), nil)
		fx.categoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

		require.NoError(t, fx.service.DeleteCategory(ctx, categoryID))
	})

	t.Run("category with products", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()
		categoryID := uuid.New()

		fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(fx.txFactory)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		fx.productRepo.EXPECT().Count(ctx, repository.ProductFilter{CategoryID: &categoryID}).Return(int64(2), nil)

		err := fx.service.DeleteCategory(ctx, categoryID)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
		fx.categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()
		categoryID := uuid.New()

		fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(fx.txFactory)
		fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

		err := fx.service.DeleteCategory(ctx, categoryID)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("transaction failure", func(t *testing.T) {
		fx := createTestCategoryService(t)
		ctx := context.Background()
		txErr := errors.New("begin failed")

		fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(txErr)

		err := fx.service.DeleteCategory(ctx, uuid.New())
		assert.ErrorIs(t, err, txErr)
	})
}

func TestCategoryService_ListCategories(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	bags := &entity.Category{ID: uuid.New(), Name: "Bags"}

	fx.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{bags}, nil)
	fx.productRepo.EXPECT().CountByCategory(ctx).Return(map[uuid.UUID]int64{bags.ID: 3}, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(3), categories[0].ProductCount)
}
