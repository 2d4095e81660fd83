package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// primaryGroupCodeColumn selects the store's primary group: the membership
// flagged primary, else the earliest one.
const primaryGroupCodeColumn = `(SELECT m.group_code FROM store_group_members m
	WHERE m.store_id = stores.id
	ORDER BY m.is_primary DESC, m.created_at ASC
	LIMIT 1) AS group_code`

// sphericalDistanceSQL is the spherical law of cosines in meters; args are lat, lng, lat.
const sphericalDistanceSQL = `6371000 * acos(LEAST(1, GREATEST(-1,
	cos(radians(?)) * cos(radians(place_coordinates_lat)) * cos(radians(place_coordinates_lng) - radians(?))
	+ sin(radians(?)) * sin(radians(place_coordinates_lat)))))`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// searchable restricts a query to active, named stores with both coordinates.
func searchable(q *gorm.DB) *gorm.DB {
	return q.
		Where("stores.place_name IS NOT NULL AND stores.place_name <> ''").
		Where("stores.place_coordinates_lat IS NOT NULL AND stores.place_coordinates_lng IS NOT NULL").
		Where("COALESCE(stores.is_active, TRUE)")
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func whereNeighborhood(q *gorm.DB, neighborhood string) *gorm.DB {
	pattern := containsPattern(neighborhood)

	return q.Where("(stores.place_address LIKE ? OR stores.place_seo_details::text LIKE ?)", pattern, pattern)
}

// FindInBound returns candidate stores inside bound, ordered so that position dedup is deterministic.
func (repo *storeRepository) FindInBound(ctx context.Context, bound orb.Bound, filter entity.StoreFilter) ([]*entity.Store, error) {
	q := searchable(repo.db.WithContext(ctx).Model(&model.StoreModel{})).
		Select("stores.*, "+primaryGroupCodeColumn).
		Where("stores.place_coordinates_lat BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("stores.place_coordinates_lng BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())

	if filter.Category != "" {
		q = q.Where("(stores.category_display = ? OR stores.category_slug = ?)", filter.Category, filter.Category)
	}
	if filter.City != "" {
		q = q.Where("stores.city_name = ?", filter.City)
	}
	if filter.Neighborhood != "" {
		q = whereNeighborhood(q, filter.Neighborhood)
	}

	var storeModels []*model.StoreModel
	if err := q.
		Order("stores.place_coordinates_lat, stores.place_coordinates_lng, stores.id").
		Find(&storeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query nearby stores")
	}

	return toStoreDomains(storeModels), nil
}

// CountByNeighborhood counts active stores whose address or SEO metadata contains neighborhood.
func (repo *storeRepository) CountByNeighborhood(ctx context.Context, neighborhood, city string) (int64, error) {
	q := whereNeighborhood(searchable(repo.db.WithContext(ctx).Model(&model.StoreModel{})), neighborhood)
	if city != "" {
		q = q.Where("stores.city_name = ?", city)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count stores by neighborhood")
	}

	return count, nil
}

type storeWithDistance struct {
	model.StoreModel `gorm:"embedded"`

	Distance *float64
}

// ListByNeighborhood returns up to limit stores matching neighborhood.
func (repo *storeRepository) ListByNeighborhood(ctx context.Context, neighborhood, city string, center *orb.Point, limit int) ([]*entity.NeighborhoodStore, error) {
	q := whereNeighborhood(searchable(repo.db.WithContext(ctx).Table("stores")), neighborhood)
	if city != "" {
		q = q.Where("stores.city_name = ?", city)
	}

	if center != nil {
		lat, lng := center.Lat(), center.Lon()
		q = q.Select("stores.*, "+primaryGroupCodeColumn+", "+sphericalDistanceSQL+" AS distance", lat, lng, lat).
			Order("distance ASC, stores.id")
	} else {
		q = q.Select("stores.*, " + primaryGroupCodeColumn).
			Order("stores.place_name ASC, stores.id")
	}

	var rows []*storeWithDistance
	if err := q.Limit(limit).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stores by neighborhood")
	}

	out := make([]*entity.NeighborhoodStore, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.NeighborhoodStore{
			Store:    toStoreDomain(&row.StoreModel),
			Distance: row.Distance,
		})
	}

	return out, nil
}

// FindByID retrieves a store by its numeric ID.
func (repo *storeRepository) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	return repo.findOne(ctx, "stores.id = ?", id)
}

// FindByToken retrieves a store by its token.
func (repo *storeRepository) FindByToken(ctx context.Context, token string) (*entity.Store, error) {
	return repo.findOne(ctx, "stores.place_token = ?", token)
}

func (repo *storeRepository) findOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Select("stores.*, "+primaryGroupCodeColumn).
		Where(query, arg).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find store")
	}

	return toStoreDomain(&storeM), nil
}

// FindByTokens returns the stores among tokens that exist.
func (repo *storeRepository) FindByTokens(ctx context.Context, tokens []string) ([]*entity.Store, error) {
	if len(tokens) == 0 {
		return []*entity.Store{}, nil
	}

	var storeModels []*model.StoreModel
	if err := repo.db.WithContext(ctx).
		Where("place_token IN ?", tokens).
		Find(&storeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stores by token")
	}

	return toStoreDomains(storeModels), nil
}

// TokenExists reports whether a store already uses token.
func (repo *storeRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("place_token = ?", token).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check store token")
	}

	return count > 0, nil
}

// Create persists a new store and fills its ID and timestamps.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStoreToken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// UpdateWorkshop sets the workshop flag.
func (repo *storeRepository) UpdateWorkshop(ctx context.Context, id int64, hasWorkshop bool) error {
	return repo.update(ctx, id, map[string]any{"has_workshop": hasWorkshop, "updated_at": time.Now()})
}

// Deactivate marks the store inactive.
func (repo *storeRepository) Deactivate(ctx context.Context, id int64) error {
	return repo.update(ctx, id, map[string]any{"is_active": false, "updated_at": time.Now()})
}

func (repo *storeRepository) update(ctx context.Context, id int64, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStoreDomains(models []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for _, storeM := range models {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	return &entity.Store{
		ID:              data.ID,
		Token:           data.PlaceToken,
		Name:            data.PlaceName,
		Address:         data.PlaceAddress,
		Lat:             data.PlaceCoordinatesLat,
		Lng:             data.PlaceCoordinatesLng,
		CategoryDisplay: data.CategoryDisplay,
		CategorySlug:    data.CategorySlug,
		CityName:        data.CityName,
		ProvinceName:    data.ProvinceName,
		Phone:           data.PlacePhone,
		Rating:          data.PlaceRating,
		RatingCount:     data.PlaceRatingCount,
		Description:     data.PlaceDescription,
		Website:         data.PlaceWebsite,
		Email:           data.PlaceEmail,
		PriceRange:      data.PlacePriceRange,
		PlateNumber:     data.PlacePlateNumber,
		PostalCode:      data.PlacePostalCode,
		ImageURLs:       []string(data.PlaceImages),
		SeoDetails:      json.RawMessage(data.PlaceSeoDetails),
		FullData:        json.RawMessage(data.PlaceFullData),
		IsActive:        isActive,
		HasWorkshop:     data.HasWorkshop,
		CreatedBy:       data.CreatedByUserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		GroupCode:       data.GroupCode,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	isActive := data.IsActive

	return &model.StoreModel{
		ID:                  data.ID,
		PlaceToken:          data.Token,
		PlaceName:           data.Name,
		PlaceAddress:        data.Address,
		PlaceCoordinatesLat: data.Lat,
		PlaceCoordinatesLng: data.Lng,
		CategoryDisplay:     data.CategoryDisplay,
		CategorySlug:        data.CategorySlug,
		CityName:            data.CityName,
		ProvinceName:        data.ProvinceName,
		PlacePhone:          data.Phone,
		PlaceRating:         data.Rating,
		PlaceRatingCount:    data.RatingCount,
		PlaceDescription:    data.Description,
		PlaceWebsite:        data.Website,
		PlaceEmail:          data.Email,
		PlacePriceRange:     data.PriceRange,
		PlacePlateNumber:    data.PlateNumber,
		PlacePostalCode:     data.PostalCode,
		PlaceImages:         data.ImageURLs,
		PlaceSeoDetails:     jsonColumn(data.SeoDetails),
		PlaceFullData:       jsonColumn(data.FullData),
		IsActive:            &isActive,
		HasWorkshop:         data.HasWorkshop,
		CreatedByUserID:     data.CreatedBy,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// jsonColumn maps an empty payload to SQL NULL.
func jsonColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}

	return datatypes.JSON(raw)
}
