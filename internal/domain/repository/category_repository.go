package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// CategoryRepository defines the interface for the store category catalog.
type CategoryRepository interface {
	// ListActive returns active main categories with their active sub-categories.
	ListActive(ctx context.Context) ([]*entity.MainCategory, error)
}
