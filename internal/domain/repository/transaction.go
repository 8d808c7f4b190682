package repository

import "context"

// TransactionManager runs multi-step writes atomically. fn receives
// repositories bound to the transaction; a non-nil error rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewProductRepository() ProductRepository
	NewCategoryRepository() CategoryRepository
	NewNotificationRepository() NotificationRepository
}
