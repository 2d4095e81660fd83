package impl

import (
	"context"
	"io"
	"log/slog"

	"storeradar/config"
	"storeradar/internal/domain/repository"
	mockRepo "storeradar/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Search: &config.SearchConfig{
			DefaultRadius:     200,
			MaxRadius:         5000,
			NeighborhoodLimit: 30,
		},
	}
}

// runInTx makes the transaction manager invoke the callback with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}
