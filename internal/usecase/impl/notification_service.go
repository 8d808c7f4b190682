package impl

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns one page of the account's notifications
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}
