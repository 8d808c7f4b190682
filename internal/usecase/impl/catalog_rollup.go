package impl

import (
	"context"

	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type catalogRollup struct {
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogRollup creates the product aggregate reader.
func NewCatalogRollup(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) usecase.CatalogRollup {
	return &catalogRollup{
		productRepo:  productRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func (r *catalogRollup) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.productRepo.Count(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (r *catalogRollup) CountActiveProducts(ctx context.Context) (int64, error) {
	count, err := r.productRepo.Count(ctx, repository.ProductFilter{IsActive: boolPtr(true)})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active products")
	}

	return count, nil
}

func (r *catalogRollup) TotalCarbonImpact(ctx context.Context) (decimal.Decimal, error) {
	total, err := r.productRepo.SumCarbonScore(ctx, repository.ProductFilter{})
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum carbon score")
	}

	return total, nil
}

func (r *catalogRollup) SellerCatalog(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerCatalogStats, error) {
	if _, err := findSeller(ctx, r.userRepo, sellerID); err != nil {
		return nil, err
	}

	rows, err := r.productRepo.TotalsBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller catalog")
	}

	stats := &usecase.SellerCatalogStats{CarbonImpact: decimal.Zero, CarbonReduction: decimal.Zero}
	for _, row := range rows {
		if row.SellerID != sellerID {
			continue
		}
		stats.ProductCount = row.ProductCount
		stats.ActiveProductCount = row.ActiveProductCount
		stats.CarbonImpact = row.CarbonImpact
		stats.CarbonReduction = row.CarbonReduction
	}

	return stats, nil
}

func (r *catalogRollup) CategoryBreakdown(ctx context.Context) ([]usecase.CategoryStats, error) {
	categories, err := r.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	counts, err := r.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	result := make([]usecase.CategoryStats, 0, len(categories))
	for _, category := range categories {
		result = append(result, usecase.CategoryStats{
			ID:           category.ID,
			Name:         category.Name,
			Description:  category.Description,
			IsActive:     category.IsActive,
			CreatedAt:    category.CreatedAt,
			ProductCount: counts[category.ID],
		})
	}

	return result, nil
}

func (r *catalogRollup) CategoryProductCount(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	if _, err := findCategory(ctx, r.categoryRepo, categoryID); err != nil {
		return 0, err
	}

	count, err := r.productRepo.Count(ctx, repository.ProductFilter{CategoryID: &categoryID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count category products")
	}

	return count, nil
}
