package postgres

import (
	"context"

	"ecobazaar/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories builds repositories over one open *gorm.DB transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

func (f txRepositories) NewCategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// NewTransactionManager is the Fx provider of the transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a transaction through gorm, which rolls back on error
// or panic and commits otherwise. Errors from fn are returned unwrapped so that
// callers can still match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}
