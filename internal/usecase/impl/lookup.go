// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// findSeller loads a seller account. Accounts of other roles are reported as missing sellers.
func findSeller(ctx context.Context, userRepo repository.UserRepository, sellerID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, sellerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrSellerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find seller")
	}
	if !user.IsSeller() {
		return nil, domainerrors.ErrSellerNotFound
	}

	return user, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func findCategory(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func boolPtr(v bool) *bool {
	return &v
}
