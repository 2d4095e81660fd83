package postgres

import (
	"context"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.StoreCommentModel{
		StoreID:     comment.StoreID,
		UserID:      comment.UserID,
		CommentText: comment.Text,
		Rating:      comment.Rating,
		ImageURLs:   comment.ImageURLs,
	}
	if comment.UserLocation != nil {
		lat, lng := comment.UserLocation.Lat(), comment.UserLocation.Lon()
		commentM.UserLat = &lat
		commentM.UserLng = &lng
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(commentM).Error; err != nil {
		switch {
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 10")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListByStore returns the comments of a store, newest first, with their authors.
func (repo *commentRepository) ListByStore(ctx context.Context, storeID int64) ([]*entity.Comment, error) {
	var commentModels []*model.StoreCommentModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("store_id = ?", storeID).
		Order("created_at DESC, id DESC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comment := &entity.Comment{
			ID:        commentM.ID,
			StoreID:   commentM.StoreID,
			UserID:    commentM.UserID,
			Text:      commentM.CommentText,
			Rating:    commentM.Rating,
			ImageURLs: []string(commentM.ImageURLs),
			CreatedAt: commentM.CreatedAt,
			Author:    toUserSummary(commentM.User.ID, commentM.User.Username, commentM.User.FullName),
		}
		if commentM.UserLat != nil && commentM.UserLng != nil {
			comment.UserLocation = &orb.Point{*commentM.UserLng, *commentM.UserLat}
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
