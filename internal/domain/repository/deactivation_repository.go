package repository

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for deactivation requests.
var (
	// ErrDeactivationRequestNotFound is returned when no pending request matches.
	ErrDeactivationRequestNotFound = errors.New("deactivation request not found")
)

// DeactivationRepository defines the interface for store deactivation requests.
type DeactivationRepository interface {
	// Create persists a new request.
	Create(ctx context.Context, req *entity.DeactivationRequest) error

	// HasPending reports whether the store already has a pending request.
	HasPending(ctx context.Context, storeID int64) (bool, error)

	// FindPendingByID retrieves a request that is still pending.
	FindPendingByID(ctx context.Context, id int64) (*entity.DeactivationRequest, error)

	// MarkReviewed records the review outcome.
	MarkReviewed(ctx context.Context, id int64, status string, reviewerID uuid.UUID, at time.Time) error

	// List returns requests, newest first, optionally filtered by status.
	List(ctx context.Context, status *string) ([]*entity.DeactivationRequest, error)
}
