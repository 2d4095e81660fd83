package repository

import (
	"context"

	"storeradar/internal/domain/entity"
)

// CommentRepository defines the interface for store comments.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByStore returns the comments of a store, newest first, with their authors.
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Comment, error)
}
