// Package notification delivers account notifications: it stores them for the
// in-app inbox and fans them out through the configured event publisher.
package notification

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/domain/service"

	"github.com/pkg/errors"
)

type accountNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewAccountNotifier creates the persisting, publishing AccountNotifier.
func NewAccountNotifier(
	publisher service.EventPublisher,
	logger *slog.Logger,
) service.AccountNotifier {
	return &accountNotifier{
		publisher: publisher,
		logger:    logger,
	}
}

// Record stores the notification through the given repository.
func (n *accountNotifier) Record(
	ctx context.Context,
	notifications repository.NotificationRepository,
	notification *entity.Notification,
) error {
	if err := notifications.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to store notification")
	}

	return nil
}

// Publish sends a recorded notification to the event publisher. Failures are
// logged and swallowed since the stored notification is the source of truth.
func (n *accountNotifier) Publish(ctx context.Context, notification *entity.Notification) {
	occurredAt := notification.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	event := &service.MarketplaceEvent{
		RequestID:      deliverycontext.RequestIDFrom(ctx),
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID.String(),
		Type:           notification.Type,
		Title:          notification.Title,
		Message:        notification.Message,
		OccurredAt:     occurredAt,
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish marketplace event",
			slog.String("notification_id", event.NotificationID),
			slog.String("type", notification.Type),
			slog.Any("error", err),
		)
	}
}
