package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/geo"
	"storeradar/internal/domain/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minCommentRating = 1
	maxCommentRating = 10
)

type commentService struct {
	commentRepo repository.CommentRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	StoreRepo   repository.StoreRepository
	Logger      *slog.Logger
}

// NewCommentService creates the store comment use case.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		storeRepo:   params.StoreRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a comment to an existing store.
func (srv *commentService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment text is required")
	}
	if input.Rating != nil && (*input.Rating < minCommentRating || *input.Rating > maxCommentRating) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 10")
	}
	if input.UserLocation != nil && !geo.Valid(*input.UserLocation) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	if _, err := srv.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	comment := &entity.Comment{
		StoreID:      input.StoreID,
		UserID:       userID,
		Text:         text,
		Rating:       input.Rating,
		UserLocation: input.UserLocation,
		ImageURLs:    input.ImageURLs,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Int64("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListByStore returns the comments of a store, newest first.
func (srv *commentService) ListByStore(ctx context.Context, storeID int64) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}
