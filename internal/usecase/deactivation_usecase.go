package usecase

import (
	"context"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// DeactivationOutput reports whether a request was accepted. A store with a
// pending request yields Accepted=false and a message instead of an error.
type DeactivationOutput struct {
	Accepted  bool
	Message   string
	RequestID int64
}

// ReviewOutput reports the review outcome.
type ReviewOutput struct {
	Status  string
	Message string
}

// DeactivationUsecase defines the store deactivation workflow.
type DeactivationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, storeID int64, reason *string) (*DeactivationOutput, error)
	Review(ctx context.Context, reviewerID uuid.UUID, requestID int64, action string) (*ReviewOutput, error)
	List(ctx context.Context, status *string) ([]*entity.DeactivationRequest, error)
}
