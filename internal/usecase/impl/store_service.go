package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"storeradar/config"
	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/catalog"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/geo"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/domain/storedoc"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchRadius      = 200.0
	defaultNeighborhoodLimit = 30
	maxNeighborhoodLimit     = 200
	maxStoreTokenAttempts    = 10

	storeTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	storeTokenRandLen  = 12
)

type storeService struct {
	storeRepo         repository.StoreRepository
	categoryRepo      repository.CategoryRepository
	geocoder          service.Geocoder
	qrCodeSvc         service.QRCodeService
	defaultRadius     float64
	maxRadius         float64
	neighborhoodLimit int
	now               func() time.Time
	logger            *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo    repository.StoreRepository
	CategoryRepo repository.CategoryRepository
	Geocoder     service.Geocoder
	QRCodeSvc    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStoreService creates the store directory use case.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	srv := &storeService{
		storeRepo:         params.StoreRepo,
		categoryRepo:      params.CategoryRepo,
		geocoder:          params.Geocoder,
		qrCodeSvc:         params.QRCodeSvc,
		defaultRadius:     defaultSearchRadius,
		neighborhoodLimit: defaultNeighborhoodLimit,
		now:               time.Now,
		logger:            params.Logger,
	}

	if params.Config != nil && params.Config.Search != nil {
		search := params.Config.Search
		if search.DefaultRadius > 0 {
			srv.defaultRadius = search.DefaultRadius
		}
		if search.MaxRadius > 0 {
			srv.maxRadius = search.MaxRadius
		}
		if search.NeighborhoodLimit > 0 {
			srv.neighborhoodLimit = search.NeighborhoodLimit
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearby returns the stores within the search radius, nearest first.
func (srv *storeService) FindNearby(ctx context.Context, query usecase.NearbyQuery) (*usecase.NearbyResult, error) {
	if !geo.Valid(query.Center) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	radius, err := srv.resolveRadius(query.RadiusMeters)
	if err != nil {
		return nil, err
	}

	bound := geo.BoundingBox(query.Center, radius)
	filter := entity.StoreFilter{
		Category:     strings.TrimSpace(query.Category),
		City:         strings.TrimSpace(query.City),
		Neighborhood: strings.TrimSpace(query.Neighborhood),
	}

	candidates, err := srv.storeRepo.FindInBound(ctx, bound, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to load nearby candidates", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find stores in bound")
	}

	unique := catalog.DedupByPosition(candidates)
	stores := make([]usecase.NearbyStore, 0, len(unique))
	for _, store := range unique {
		location, _ := store.Location()
		distance := geo.Distance(query.Center, location)
		// NaN distances fail this comparison and are dropped.
		if !(distance <= radius) {
			continue
		}

		stores = append(stores, usecase.NearbyStore{
			StoreSummary: toStoreSummary(store),
			Neighborhood: catalog.ResolveNeighborhood(deref(store.Address), deref(store.CityName), storedoc.Parse(store.SeoDetails)),
			Distance:     distance,
		})
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].Distance < stores[j].Distance
	})
	for i := range stores {
		stores[i].Distance = geo.Round(stores[i].Distance, 1)
	}

	srv.log(ctx).Debug("Nearby search completed",
		slog.Float64("radius", radius),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(stores)),
	)

	return &usecase.NearbyResult{
		Stores:       stores,
		Count:        len(stores),
		Center:       query.Center,
		RadiusMeters: radius,
		Debug: usecase.NearbyDebug{
			TotalRows: len(unique),
			LatRange:  usecase.Range{Min: bound.Min.Lat(), Max: bound.Max.Lat()},
			LngRange:  usecase.Range{Min: bound.Min.Lon(), Max: bound.Max.Lon()},
		},
	}, nil
}

func (srv *storeService) resolveRadius(requested *float64) (float64, error) {
	radius := srv.defaultRadius
	if requested != nil {
		radius = *requested
	}

	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("radius must be a finite non-negative number")
	}

	if srv.maxRadius > 0 && radius > srv.maxRadius {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("radius must not exceed %.0f meters", srv.maxRadius))
	}

	return radius, nil
}

// ListByNeighborhood returns one page of the stores of a neighborhood.
func (srv *storeService) ListByNeighborhood(ctx context.Context, query usecase.NeighborhoodQuery) (*usecase.NeighborhoodResult, error) {
	neighborhood := strings.TrimSpace(query.Neighborhood)
	if neighborhood == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("neighborhood is required")
	}
	if query.Center != nil && !geo.Valid(*query.Center) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	limit := query.Limit
	if limit <= 0 {
		limit = srv.neighborhoodLimit
	}
	limit = min(limit, maxNeighborhoodLimit)
	city := strings.TrimSpace(query.City)

	total, err := srv.storeRepo.CountByNeighborhood(ctx, neighborhood, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores by neighborhood")
	}

	rows, err := srv.storeRepo.ListByNeighborhood(ctx, neighborhood, city, query.Center, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by neighborhood")
	}

	stores := make([]usecase.NeighborhoodStore, 0, len(rows))
	for _, row := range rows {
		item := usecase.NeighborhoodStore{StoreSummary: toStoreSummary(row.Store)}
		if row.Distance != nil {
			rounded := geo.Round(*row.Distance, 2)
			item.Distance = &rounded
		}
		stores = append(stores, item)
	}

	return &usecase.NeighborhoodResult{
		Stores:       stores,
		Count:        len(stores),
		TotalCount:   total,
		Neighborhood: neighborhood,
		HasMore:      total > int64(limit),
	}, nil
}

// Register stores a manually entered store under a freshly generated token.
func (srv *storeService) Register(ctx context.Context, userID uuid.UUID, input *usecase.RegisterStoreInput) (*entity.Store, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	category := strings.TrimSpace(input.Category)
	if name == "" || address == "" || category == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, address and category are required")
	}

	token, err := srv.generateStoreToken(ctx)
	if err != nil {
		return nil, err
	}

	location, hasLocation := srv.resolveLocation(ctx, input)
	city, province := srv.resolveLocality(ctx, input, location, hasLocation)

	slug := strings.ReplaceAll(strings.ToLower(category), " ", "_")
	if input.CategorySlug != nil && strings.TrimSpace(*input.CategorySlug) != "" {
		slug = strings.TrimSpace(*input.CategorySlug)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	store := &entity.Store{
		Token:           token,
		Name:            &name,
		Address:         &address,
		CategoryDisplay: &category,
		CategorySlug:    &slug,
		CityName:        &city,
		ProvinceName:    province,
		Phone:           input.Phone,
		PlateNumber:     input.PlateNumber,
		PostalCode:      input.PostalCode,
		ImageURLs:       input.ImageURLs,
		FullData:        input.PlaceFullData,
		IsActive:        isActive,
		CreatedBy:       &userID,
	}
	if hasLocation {
		lat, lng := location.Lat(), location.Lon()
		store.Lat, store.Lng = &lat, &lng
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to register store", slog.String("token", token), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create store")
	}
	srv.log(ctx).Info("Store registered", slog.Int64("storeID", store.ID), slog.String("token", token))

	return store, nil
}

func (srv *storeService) generateStoreToken(ctx context.Context) (string, error) {
	for range maxStoreTokenAttempts {
		token := newStoreToken(srv.now())

		exists, err := srv.storeRepo.TokenExists(ctx, token)
		if err != nil {
			return "", errors.Wrap(err, "failed to check store token")
		}
		if !exists {
			return token, nil
		}
	}

	srv.log(ctx).Error("Store token attempts exhausted", slog.Int("attempts", maxStoreTokenAttempts))

	return "", domainerrors.ErrStoreTokenExhausted
}

// newStoreToken returns store_{unixMillis}_{12 lowercase alphanumerics}.
func newStoreToken(now time.Time) string {
	return "store_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomString(storeTokenAlphabet, storeTokenRandLen)
}

func randomString(alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}

	return string(buf)
}

// resolveLocation picks the request coordinates, then the payload geometry,
// then forward geocoding of the address.
func (srv *storeService) resolveLocation(ctx context.Context, input *usecase.RegisterStoreInput) (orb.Point, bool) {
	if input.Lat != nil && input.Lng != nil {
		return orb.Point{*input.Lng, *input.Lat}, true
	}

	if point, ok := payloadPoint(storedoc.Parse(input.PlaceFullData)); ok {
		return point, true
	}

	point, err := srv.geocoder.Forward(ctx, input.Address)
	if err != nil {
		srv.log(ctx).Warn("Forward geocoding failed", slog.Any("error", err))

		return orb.Point{}, false
	}

	return point, true
}

func payloadPoint(doc storedoc.Document) (orb.Point, bool) {
	if kind, _ := doc.String("geometry", "type"); kind != "Point" {
		return orb.Point{}, false
	}

	coords, ok := doc.List("geometry", "coordinates")
	if !ok || len(coords) < 2 {
		return orb.Point{}, false
	}

	lng, okLng := storedoc.ToNumber(coords[0])
	lat, okLat := storedoc.ToNumber(coords[1])
	if !okLng || !okLat {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// resolveLocality picks the request city, then reverse geocoding, then the
// last address segment, then the default city. The province follows the
// request, falling back to the geocoded county.
func (srv *storeService) resolveLocality(ctx context.Context, input *usecase.RegisterStoreInput, location orb.Point, hasLocation bool) (string, *string) {
	city := strings.TrimSpace(deref(input.City))
	province := input.Province

	if city == "" && hasLocation {
		result, err := srv.geocoder.Reverse(ctx, location)
		if err != nil {
			srv.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))
		} else {
			city = result.City
			if province == nil && result.County != "" {
				county := result.County
				province = &county
			}
		}
	}

	if city == "" {
		city = catalog.CityFromAddress(input.Address)
	}
	if city == "" {
		city = constants.DefaultCity
	}

	return city, province
}

// UpdateWorkshop sets whether a store has a workshop.
func (srv *storeService) UpdateWorkshop(ctx context.Context, storeID int64, hasWorkshop bool) error {
	if err := srv.storeRepo.UpdateWorkshop(ctx, storeID, hasWorkshop); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to update workshop")
	}

	return nil
}

// StoreQRCode renders the QR code printed on the plate of a store.
func (srv *storeService) StoreQRCode(ctx context.Context, token string) ([]byte, error) {
	if _, err := srv.storeRepo.FindByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	png, err := srv.qrCodeSvc.GenerateStoreQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// ResolveQRCode parses scanned plate content and loads the store it names.
func (srv *storeService) ResolveQRCode(ctx context.Context, content string) (*entity.StoreView, error) {
	token, err := srv.qrCodeSvc.ParseStoreQR(content)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unrecognized QR code")
	}

	store, err := srv.storeRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	view := catalog.NormalizeStore(store)

	return &view, nil
}

// Categories returns the active category catalog.
func (srv *storeService) Categories(ctx context.Context) ([]*entity.MainCategory, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func toStoreSummary(store *entity.Store) usecase.StoreSummary {
	summary := usecase.StoreSummary{
		ID:           store.ID,
		Name:         deref(store.Name),
		Address:      deref(store.Address),
		Category:     firstNonEmpty(deref(store.CategoryDisplay), deref(store.CategorySlug), constants.UnknownLabel),
		CategorySlug: deref(store.CategorySlug),
		City:         deref(store.CityName),
		Province:     deref(store.ProvinceName),
		Phone:        deref(store.Phone),
		Rating:       store.Rating,
		Token:        store.Token,
		HasWorkshop:  store.HasWorkshop,
		GroupCode:    store.GroupCode,
	}
	if store.Lat != nil {
		summary.Lat = *store.Lat
	}
	if store.Lng != nil {
		summary.Lng = *store.Lng
	}

	return summary
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
