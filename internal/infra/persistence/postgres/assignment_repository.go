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

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Upsert inserts the assignment or refreshes the notes of the existing (user, token, date) row.
func (repo *assignmentRepository) Upsert(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)
	if assignmentM.Status == "" {
		assignmentM.Status = constants.AssignmentStatusPending
	}

	db := repo.db.WithContext(ctx)
	if err := db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "store_token"}, {Name: "assigned_date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"notes":               assignmentM.Notes,
				"assigned_by_user_id": assignmentM.AssignedByUserID,
				"updated_at":          time.Now(),
			}),
		}).
		Create(assignmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert assignment")
	}

	var stored model.StoreAssignmentModel
	if err := db.
		Where("user_id = ? AND store_token = ? AND assigned_date = ?",
			assignmentM.UserID, assignmentM.StoreToken, assignmentM.AssignedDate.Format(time.DateOnly)).
		First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload assignment")
	}

	*assignment = *toAssignmentDomain(&stored)

	return nil
}

// FindByID retrieves an assignment by its ID.
func (repo *assignmentRepository) FindByID(ctx context.Context, id int64) (*entity.Assignment, error) {
	var assignmentM model.StoreAssignmentModel

	if err := repo.db.WithContext(ctx).First(&assignmentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// assignmentJoinRow is one row of the assignment listing join.
type assignmentJoinRow struct {
	ID               int64
	UserID           uuid.UUID
	StoreToken       string
	AssignedDate     time.Time
	VisitDate        *time.Time
	Status           string
	Notes            *string
	AssignedByUserID *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Username *string
	FullName *string

	StoreName     *string
	StoreAddress  *string
	StoreLat      *float64
	StoreLng      *float64
	StoreCategory *string
	StoreCity     *string
}

// List returns assignments joined with their stores and users.
func (repo *assignmentRepository) List(ctx context.Context, filter entity.AssignmentFilter) ([]entity.AssignmentRow, error) {
	db := repo.db.WithContext(ctx)

	q := db.Table("store_assignments sa").
		Select(`sa.id, sa.user_id, sa.store_token, sa.assigned_date, sa.visit_date, sa.status, sa.notes,
			sa.assigned_by_user_id, sa.created_at, sa.updated_at,
			u.username, u.full_name,
			COALESCE(s.place_name, ?) AS store_name,
			COALESCE(s.place_address, '') AS store_address,
			s.place_coordinates_lat AS store_lat,
			s.place_coordinates_lng AS store_lng,
			COALESCE(s.category_display, '') AS store_category,
			COALESCE(s.city_name, '') AS store_city`, constants.UnknownLabel).
		Joins("LEFT JOIN stores s ON s.place_token = sa.store_token").
		Joins("LEFT JOIN users u ON u.id = sa.user_id")

	if filter.UserID != nil {
		q = q.Where("sa.user_id = ?", *filter.UserID)
	}
	if filter.AssignedDate != nil {
		q = q.Where("sa.assigned_date = ?", filter.AssignedDate.Format(time.DateOnly))
	}
	if filter.Status != nil {
		q = q.Where("sa.status = ?", *filter.Status)
	}

	var joined []assignmentJoinRow
	if err := q.Order("sa.assigned_date DESC, store_name ASC, sa.id").Scan(&joined).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list assignments")
	}

	rawStores, err := repo.storesByToken(db, joined)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.AssignmentRow, 0, len(joined))
	for i := range joined {
		j := &joined[i]
		row := entity.AssignmentRow{
			Assignment: entity.Assignment{
				ID:           j.ID,
				UserID:       j.UserID,
				StoreToken:   j.StoreToken,
				AssignedDate: j.AssignedDate,
				VisitDate:    j.VisitDate,
				Status:       j.Status,
				Notes:        j.Notes,
				AssignedBy:   j.AssignedByUserID,
				CreatedAt:    j.CreatedAt,
				UpdatedAt:    j.UpdatedAt,
			},
			Store: entity.StoreRow{
				Token: j.StoreToken,
				Projected: entity.StoreProjection{
					Name:     j.StoreName,
					Address:  j.StoreAddress,
					Lat:      j.StoreLat,
					Lng:      j.StoreLng,
					Category: j.StoreCategory,
					City:     j.StoreCity,
				},
				Raw: rawStores[j.StoreToken],
			},
		}
		if j.Username != nil {
			row.User = toUserSummary(j.UserID, *j.Username, j.FullName)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (repo *assignmentRepository) storesByToken(db *gorm.DB, joined []assignmentJoinRow) (map[string]*entity.Store, error) {
	tokens := make([]string, 0, len(joined))
	seen := make(map[string]struct{}, len(joined))
	for _, j := range joined {
		if _, ok := seen[j.StoreToken]; ok {
			continue
		}
		seen[j.StoreToken] = struct{}{}
		tokens = append(tokens, j.StoreToken)
	}

	byToken := make(map[string]*entity.Store, len(tokens))
	if len(tokens) == 0 {
		return byToken, nil
	}

	var storeModels []*model.StoreModel
	if err := db.Where("place_token IN ?", tokens).Find(&storeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load assignment stores")
	}
	for _, storeM := range storeModels {
		byToken[storeM.PlaceToken] = toStoreDomain(storeM)
	}

	return byToken, nil
}

// Complete sets the visit date and marks the assignment completed.
func (repo *assignmentRepository) Complete(ctx context.Context, id int64, visitDate time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreAssignmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"visit_date": visitDate,
			"status":     constants.AssignmentStatusCompleted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete assignment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAssignmentDomain(data *model.StoreAssignmentModel) *entity.Assignment {
	return &entity.Assignment{
		ID:           data.ID,
		UserID:       data.UserID,
		StoreToken:   data.StoreToken,
		AssignedDate: data.AssignedDate,
		VisitDate:    data.VisitDate,
		Status:       data.Status,
		Notes:        data.Notes,
		AssignedBy:   data.AssignedByUserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAssignmentDomain(data *entity.Assignment) *model.StoreAssignmentModel {
	return &model.StoreAssignmentModel{
		ID:               data.ID,
		UserID:           data.UserID,
		StoreToken:       data.StoreToken,
		AssignedDate:     data.AssignedDate,
		VisitDate:        data.VisitDate,
		Status:           data.Status,
		Notes:            data.Notes,
		AssignedByUserID: data.AssignedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
