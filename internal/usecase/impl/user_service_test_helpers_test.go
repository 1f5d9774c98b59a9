package impl

import (
	"context"
	"io"
	"log/slog"

	"neighborly/config"
	"neighborly/internal/domain/repository"
	mockRepo "neighborly/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(minPassword int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			MinPassword: minPassword,
		},
	}
}

// expectTransaction makes txManager run the callback against factory and return its error,
// the way the real transaction manager rolls back on error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
