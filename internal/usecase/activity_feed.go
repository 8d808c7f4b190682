package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"
)

// ActivityFeedBuilder merges recent sellers, products and orders into one feed.
type ActivityFeedBuilder interface {
	// Build returns at most limit events, newest first. A non-positive limit
	// selects the configured default.
	Build(ctx context.Context, limit int) ([]entity.ActivityEvent, error)
}
