package postgres

import (
	"context"
	"time"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deactivationRepository implements the repository.DeactivationRepository interface.
type deactivationRepository struct {
	db *gorm.DB
}

// NewDeactivationRepository is the constructor for deactivationRepository.
func NewDeactivationRepository(db *gorm.DB) repository.DeactivationRepository {
	return &deactivationRepository{db: db}
}

// Create persists a new request.
func (repo *deactivationRepository) Create(ctx context.Context, req *entity.DeactivationRequest) error {
	reqM := &model.DeactivationRequestModel{
		StoreID:           req.StoreID,
		StoreToken:        req.StoreToken,
		RequestedByUserID: req.RequestedBy,
		Reason:            req.Reason,
		Status:            req.Status,
	}
	if reqM.Status == "" {
		reqM.Status = constants.DeactivationStatusPending
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reqM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("store already has a pending deactivation request")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deactivation request")
	}

	req.ID = reqM.ID
	req.Status = reqM.Status
	req.CreatedAt = reqM.CreatedAt

	return nil
}

// HasPending reports whether the store already has a pending request.
func (repo *deactivationRepository) HasPending(ctx context.Context, storeID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeactivationRequestModel{}).
		Where("store_id = ? AND status = ?", storeID, constants.DeactivationStatusPending).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check pending deactivation requests")
	}

	return count > 0, nil
}

// FindPendingByID retrieves a request that is still pending.
func (repo *deactivationRepository) FindPendingByID(ctx context.Context, id int64) (*entity.DeactivationRequest, error) {
	var reqM model.DeactivationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, constants.DeactivationStatusPending).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeactivationRequestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find deactivation request")
	}

	return toDeactivationDomain(&reqM), nil
}

// MarkReviewed records the review outcome. Only pending requests are updated.
func (repo *deactivationRepository) MarkReviewed(ctx context.Context, id int64, status string, reviewerID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeactivationRequestModel{}).
		Where("id = ? AND status = ?", id, constants.DeactivationStatusPending).
		Updates(map[string]any{
			"status":              status,
			"reviewed_by_user_id": reviewerID,
			"reviewed_at":         at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to review deactivation request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeactivationRequestNotFound
	}

	return nil
}

type deactivationJoinRow struct {
	model.DeactivationRequestModel `gorm:"embedded"`

	StoreName         *string
	StoreAddress      *string
	RequesterUsername *string
	RequesterFullName *string
	ReviewerUsername  *string
	ReviewerFullName  *string
}

// List returns requests, newest first, optionally filtered by status.
func (repo *deactivationRepository) List(ctx context.Context, status *string) ([]*entity.DeactivationRequest, error) {
	q := repo.db.WithContext(ctx).
		Table("store_deactivation_requests dr").
		Select(`dr.id, dr.store_id, dr.store_token, dr.requested_by_user_id, dr.reason, dr.status,
			dr.reviewed_by_user_id, dr.reviewed_at, dr.created_at,
			s.place_name AS store_name, s.place_address AS store_address,
			ru.username AS requester_username, ru.full_name AS requester_full_name,
			vu.username AS reviewer_username, vu.full_name AS reviewer_full_name`).
		Joins("LEFT JOIN stores s ON s.id = dr.store_id").
		Joins("LEFT JOIN users ru ON ru.id = dr.requested_by_user_id").
		Joins("LEFT JOIN users vu ON vu.id = dr.reviewed_by_user_id")

	if status != nil {
		q = q.Where("dr.status = ?", *status)
	}

	var rows []*deactivationJoinRow
	if err := q.Order("dr.created_at DESC, dr.id DESC").Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list deactivation requests")
	}

	requests := make([]*entity.DeactivationRequest, 0, len(rows))
	for _, row := range rows {
		req := toDeactivationDomain(&row.DeactivationRequestModel)
		req.StoreName = row.StoreName
		req.StoreAddress = row.StoreAddress
		if row.RequesterUsername != nil {
			req.Requester = toUserSummary(req.RequestedBy, *row.RequesterUsername, row.RequesterFullName)
		}
		if row.ReviewerUsername != nil && req.ReviewedBy != nil {
			req.Reviewer = toUserSummary(*req.ReviewedBy, *row.ReviewerUsername, row.ReviewerFullName)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func toDeactivationDomain(data *model.DeactivationRequestModel) *entity.DeactivationRequest {
	return &entity.DeactivationRequest{
		ID:          data.ID,
		StoreID:     data.StoreID,
		StoreToken:  data.StoreToken,
		RequestedBy: data.RequestedByUserID,
		Reason:      data.Reason,
		Status:      data.Status,
		ReviewedBy:  data.ReviewedByUserID,
		ReviewedAt:  data.ReviewedAt,
		CreatedAt:   data.CreatedAt,
	}
}
