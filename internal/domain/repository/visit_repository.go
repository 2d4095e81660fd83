package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// VisitRepository defines the interface for visit records.
type VisitRepository interface {
	// Create persists a new visit record.
	Create(ctx context.Context, visit *entity.VisitRecord) error

	// List returns visit records ordered by visit date then creation, newest first.
	List(ctx context.Context, filter entity.VisitFilter) ([]*entity.VisitRecord, error)
}
