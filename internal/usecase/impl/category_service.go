package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	catalog      usecase.CatalogRollup
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Catalog      usecase.CatalogRollup
	Logger       *slog.Logger
}

// NewCategoryService creates the category management use case.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		catalog:      params.Catalog,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]usecase.CategoryStats, error) {
	return srv.catalog.CategoryBreakdown(ctx)
}

func (srv *categoryService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category, err := findCategory(ctx, srv.categoryRepo, categoryID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	category.Description = input.Description
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrCategoryNameTaken):
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory checks for referencing products and deletes in one transaction.
func (srv *categoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()
		productRepo := repoFactory.NewProductRepository()

		if _, err := findCategory(ctx, categoryRepo, categoryID); err != nil {
			return err
		}

		count, err := productRepo.Count(ctx, repository.ProductFilter{CategoryID: &categoryID})
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryInUse
		}

		if err := categoryRepo.Delete(ctx, categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", categoryID))

	return nil
}
