package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type productService struct {
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	engine       *carbon.Engine
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	Engine       *carbon.Engine
	Logger       *slog.Logger
}

// NewProductService creates the catalog use case.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		categoryRepo: params.CategoryRepo,
		engine:       params.Engine,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct scores and stores a new listing. New listings wait for admin approval.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.ProductInput) (*usecase.ProductDetails, error) {
	seller, err := findSeller(ctx, srv.userRepo, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("seller account is not approved")
	}

	category, err := srv.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	footprint, err := srv.engine.Score(input.WeightKg, input.ShippingDistanceKm, input.IsEcoFriendly)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New(),
		SellerID:  seller.ID,
		IsActive:  false,
		Footprint: footprint,
		CreatedAt: now,
		UpdatedAt: now,
		Seller:    seller,
		Category:  category,
	}
	applyProductInput(product, input)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("sellerID", sellerID),
		slog.String("carbonScore", footprint.CarbonScore().String()),
	)

	details := usecase.NewProductDetails(product)

	return &details, nil
}

// UpdateProduct replaces the editable fields of an owned listing and rescores it.
func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input usecase.ProductInput) (*usecase.ProductDetails, error) {
	product, err := srv.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	category, err := srv.resolveCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	footprint, err := srv.engine.Score(input.WeightKg, input.ShippingDistanceKm, input.IsEcoFriendly)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input)
	product.Category = category
	product.Footprint = footprint
	product.UpdatedAt = time.Now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	details := usecase.NewProductDetails(product)

	return &details, nil
}

// GetProduct returns a single listing.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetails, error) {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	details := usecase.NewProductDetails(product)

	return &details, nil
}

// ListProducts returns the listings matching the filter, newest first.
func (srv *productService) ListProducts(ctx context.Context, filter usecase.ProductFilter) ([]usecase.ProductDetails, error) {
	repoFilter := repository.ProductFilter{
		SellerID:   filter.SellerID,
		CategoryID: filter.CategoryID,
		EcoOnly:    filter.EcoOnly,
	}
	switch {
	case filter.PendingOnly:
		repoFilter.IsActive = boolPtr(false)
	case filter.ActiveOnly:
		repoFilter.IsActive = boolPtr(true)
	}

	products, err := srv.productRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := make([]usecase.ProductDetails, 0, len(products))
	for _, product := range products {
		result = append(result, usecase.NewProductDetails(product))
	}

	return result, nil
}

// DeleteProduct removes an owned listing.
func (srv *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("sellerID", sellerID))

	return nil
}

// PreviewScore scores product attributes without storing anything.
func (srv *productService) PreviewScore(_ context.Context, weightKg, shippingDistanceKm decimal.Decimal, ecoFriendly bool) (*usecase.ScoreResult, error) {
	footprint, err := srv.engine.Score(weightKg, shippingDistanceKm, ecoFriendly)
	if err != nil {
		return nil, err
	}

	return &usecase.ScoreResult{
		CarbonScore:     footprint.CarbonScore(),
		EcoPoints:       footprint.EcoPoints(),
		CarbonReduction: footprint.CarbonReduction(),
	}, nil
}

func (srv *productService) ownedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, domainerrors.ErrProductOwnershipViolation
	}

	return product, nil
}

func (srv *productService) resolveCategory(ctx context.Context, categoryID *uuid.UUID) (*entity.Category, error) {
	if categoryID == nil {
		return nil, nil
	}

	return findCategory(ctx, srv.categoryRepo, *categoryID)
}

func applyProductInput(product *entity.Product, input usecase.ProductInput) {
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockQuantity = input.StockQuantity
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID
}
