package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new account notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser returns the notifications of one account, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
