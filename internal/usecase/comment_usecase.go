package usecase

import (
	"context"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateCommentInput defines a new comment on a store.
type CreateCommentInput struct {
	StoreID      int64
	Text         string
	Rating       *int
	UserLocation *orb.Point
	ImageURLs    []string
}

// CommentUsecase defines the store comment operations.
type CommentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Comment, error)
}
