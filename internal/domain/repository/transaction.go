package repository

import "context"

// TransactionManager runs multi-step writes atomically.
// Request transitions, review submission and preference saves all go through it.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// Only repositories obtained from txRepoFactory take part in the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one open transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewServiceRepository() ServiceRepository
	NewAvailabilityRepository() AvailabilityRepository
	NewRequestRepository() RequestRepository
	NewNotificationRepository() NotificationRepository
	NewReviewRepository() ReviewRepository
}
