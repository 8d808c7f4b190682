package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for reading account notifications
type NotificationUsecase interface {
	// ListNotifications returns the notifications of the signed-in account, newest first, with pagination
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
