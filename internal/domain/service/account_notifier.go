package service

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
)

// AccountNotifier delivers in-app notifications in two steps so that the
// stored notification can share a transaction with the change it reports.
type AccountNotifier interface {
	// Record stores the notification through notifications, which may be bound
	// to an open transaction.
	Record(ctx context.Context, notifications repository.NotificationRepository, notification *entity.Notification) error

	// Publish fans a recorded notification out to event consumers. Call it only
	// after the surrounding transaction committed. Failures are logged, not returned.
	Publish(ctx context.Context, notification *entity.Notification)
}
