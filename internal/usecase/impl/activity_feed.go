package impl

import (
	"context"

	"ecobazaar/config"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/pkg/errors"
)

// Per-source caps of the recent activity feed.
const (
	recentSellersCap  = 5
	recentProductsCap = 5
	recentOrdersCap   = 3

	defaultActivityLimit = 10
)

type activityFeedBuilder struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	defaultLimit int
}

// NewActivityFeedBuilder creates the recent activity feed builder.
func NewActivityFeedBuilder(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	cfg *config.Config,
) usecase.ActivityFeedBuilder {
	limit := defaultActivityLimit
	if cfg != nil && cfg.Dashboard != nil && cfg.Dashboard.ActivityLimit > 0 {
		limit = cfg.Dashboard.ActivityLimit
	}

	return &activityFeedBuilder{
		userRepo:     userRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		defaultLimit: limit,
	}
}

// Build projects the newest sellers, products and orders into events, in that
// order, then sorts them newest first and keeps at most limit entries.
func (b *activityFeedBuilder) Build(ctx context.Context, limit int) ([]entity.ActivityEvent, error) {
	if limit <= 0 {
		limit = b.defaultLimit
	}

	sellers, err := b.userRepo.ListRecentByRole(ctx, entity.RoleSeller, recentSellersCap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent sellers")
	}

	products, err := b.productRepo.ListRecent(ctx, recentProductsCap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent products")
	}

	orders, err := b.orderRepo.ListRecent(ctx, recentOrdersCap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	events := make([]entity.ActivityEvent, 0, len(sellers)+len(products)+len(orders))
	for _, seller := range sellers {
		events = append(events, entity.NewSellerRegisteredEvent(seller))
	}
	for _, product := range products {
		events = append(events, entity.NewProductAddedEvent(product))
	}
	for _, order := range orders {
		events = append(events, entity.NewOrderPlacedEvent(order))
	}

	entity.SortActivityNewestFirst(events)
	if len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}
