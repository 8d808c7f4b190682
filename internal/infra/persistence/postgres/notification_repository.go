package postgres

import (
	"context"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new account notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("notification recipient does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser returns the notifications of one account with pagination, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}
