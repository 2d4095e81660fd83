package repository

import (
	"context"

	"storeradar/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStoreToken is returned when a store token is already in use.
	ErrDuplicateStoreToken = errors.New("store token already exists")
)

// StoreRepository defines the interface for store directory queries and writes.
type StoreRepository interface {
	// FindInBound returns active, named stores with both coordinates inside bound
	// that match filter, ordered by latitude, longitude and id. Each store carries
	// its primary group code.
	FindInBound(ctx context.Context, bound orb.Bound, filter entity.StoreFilter) ([]*entity.Store, error)

	// CountByNeighborhood counts active stores whose address or SEO metadata contains neighborhood.
	CountByNeighborhood(ctx context.Context, neighborhood, city string) (int64, error)

	// ListByNeighborhood returns up to limit stores matching neighborhood. With a
	// center the rows are ordered by distance, otherwise by name.
	ListByNeighborhood(ctx context.Context, neighborhood, city string, center *orb.Point, limit int) ([]*entity.NeighborhoodStore, error)

	// FindByID retrieves a store by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Store, error)

	// FindByToken retrieves a store by its token.
	FindByToken(ctx context.Context, token string) (*entity.Store, error)

	// FindByTokens returns the stores among tokens that exist.
	FindByTokens(ctx context.Context, tokens []string) ([]*entity.Store, error)

	// TokenExists reports whether a store already uses token.
	TokenExists(ctx context.Context, token string) (bool, error)

	// Create persists a new store and fills its ID and timestamps.
	Create(ctx context.Context, store *entity.Store) error

	// UpdateWorkshop sets the workshop flag.
	UpdateWorkshop(ctx context.Context, id int64, hasWorkshop bool) error

	// Deactivate marks the store inactive.
	Deactivate(ctx context.Context, id int64) error
}
