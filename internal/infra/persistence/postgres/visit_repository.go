package postgres

import (
	"context"
	"encoding/json"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// Create persists a new visit record.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.VisitRecord) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAssignmentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit record")
	}

	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt

	return nil
}

// List returns visit records ordered by visit date then creation, newest first.
func (repo *visitRepository) List(ctx context.Context, filter entity.VisitFilter) ([]*entity.VisitRecord, error) {
	q := repo.db.WithContext(ctx).
		Model(&model.MarketVisitModel{}).
		Select("market_visits.*, COALESCE(s.place_name, ?) AS store_name", constants.UnknownLabel).
		Joins("LEFT JOIN stores s ON s.place_token = market_visits.store_token")

	if filter.AssignmentID != nil {
		q = q.Where("market_visits.assignment_id = ?", *filter.AssignmentID)
	}
	if filter.StoreID != nil {
		q = q.Where("s.id = ?", *filter.StoreID)
	}
	if filter.StoreToken != nil {
		q = q.Where("market_visits.store_token = ?", *filter.StoreToken)
	}
	if filter.UserID != nil {
		q = q.Where("market_visits.user_id = ?", *filter.UserID)
	}

	var visitModels []*model.MarketVisitModel
	if err := q.
		Order("market_visits.visit_date DESC, market_visits.created_at DESC").
		Find(&visitModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list visit records")
	}

	visits := make([]*entity.VisitRecord, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// --- Mapper Functions ---

func toVisitDomain(data *model.MarketVisitModel) *entity.VisitRecord {
	visit := &entity.VisitRecord{
		ID:             data.ID,
		AssignmentID:   data.AssignmentID,
		UserID:         data.UserID,
		StoreToken:     data.StoreToken,
		VisitDate:      data.VisitDate,
		VisitTime:      data.VisitTime,
		ImageURLs:      []string(data.ImageURLs),
		AdditionalInfo: json.RawMessage(data.AdditionalInfo),
		CreatedAt:      data.CreatedAt,
		StoreName:      data.StoreName,
	}
	if data.Latitude != nil && data.Longitude != nil {
		visit.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return visit
}

func fromVisitDomain(data *entity.VisitRecord) *model.MarketVisitModel {
	visitM := &model.MarketVisitModel{
		ID:             data.ID,
		AssignmentID:   data.AssignmentID,
		UserID:         data.UserID,
		StoreToken:     data.StoreToken,
		VisitDate:      data.VisitDate,
		VisitTime:      data.VisitTime,
		ImageURLs:      data.ImageURLs,
		AdditionalInfo: jsonColumn(data.AdditionalInfo),
		CreatedAt:      data.CreatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat(), data.Location.Lon()
		visitM.Latitude = &lat
		visitM.Longitude = &lng
	}

	return visitM
}
