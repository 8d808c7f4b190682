package postgres

import (
	"context"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Seller").Preload("Category")
}

// FindByID retrieves a product with its seller and category.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withAssociations(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs returns the products that exist among ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productModels), nil
}

// Create persists a new product including its footprint columns.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Seller", "Category").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller or category reference")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update saves every product column, footprint included.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Omit("Seller", "Category", "CreatedAt").Save(productM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller or category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product. Products referenced by orders cannot be removed.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List returns the products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := applyProductFilter(repo.withAssociations(ctx).Clauses(dbresolver.Read), filter)
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// ListRecent returns at most limit products, newest first, with their seller.
func (repo *productRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Seller").
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent products")
	}

	return toProductDomains(productModels), nil
}

// Count returns the number of products matching the filter.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64

	query := applyProductFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.ProductModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// SumCarbonScore returns the total carbon score of the matching products.
func (repo *productRepository) SumCarbonScore(ctx context.Context, filter repository.ProductFilter) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	query := applyProductFilter(repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.ProductModel{}), filter)
	if err := query.Select("COALESCE(SUM(carbon_score), 0) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum carbon score")
	}

	return row.Total, nil
}

// TotalsBySeller aggregates the catalog per seller in one grouped query.
func (repo *productRepository) TotalsBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]repository.SellerCatalogTotals, error) {
	var rows []repository.SellerCatalogTotals

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Select(`seller_id,
			COUNT(*) AS product_count,
			COUNT(*) FILTER (WHERE is_active) AS active_product_count,
			COALESCE(SUM(carbon_score), 0) AS carbon_impact,
			COALESCE(SUM(carbon_reduction), 0) AS carbon_reduction`).
		Group("seller_id")
	if len(sellerIDs) > 0 {
		query = query.Where("seller_id IN ?", sellerIDs)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate products by seller")
	}

	return rows, nil
}

// CountByCategory returns the product count of every category that has products.
func (repo *productRepository) CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		CategoryID   uuid.UUID
		ProductCount int64
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{}).
		Select("category_id, COUNT(*) AS product_count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.ProductCount
	}

	return counts, nil
}

func applyProductFilter(query *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.EcoOnly {
		query = query.Where("is_eco_friendly = ?", true)
	}

	return query
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}
