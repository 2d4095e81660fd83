package impl

import (
	"context"
	"encoding/json"
	"math"
	"regexp"
	"testing"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/geo"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	mockRepo "storeradar/internal/mocks/repository"
	mockSvc "storeradar/internal/mocks/service"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// metersPerDegreeLat converts a northward offset in meters to degrees on the haversine sphere.
const metersPerDegreeLat = 6371000.0 * 3.141592653589793 / 180

var tehran = orb.Point{51.3890, 35.6892}

type storeServiceFixtures struct {
	service      usecase.StoreUsecase
	storeRepo    *mockRepo.MockStoreRepository
	categoryRepo *mockRepo.MockCategoryRepository
	geocoder     *mockSvc.MockGeocoder
	qrCodeSvc    *mockSvc.MockQRCodeService
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	qrCodeSvc := mockSvc.NewMockQRCodeService(t)

	srv := NewStoreService(StoreServiceParams{
		StoreRepo:    storeRepo,
		CategoryRepo: categoryRepo,
		Geocoder:     geocoder,
		QRCodeSvc:    qrCodeSvc,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:      srv,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		geocoder:     geocoder,
		qrCodeSvc:    qrCodeSvc,
	}
}

func storeNorthOf(center orb.Point, meters float64, token, name string) *entity.Store {
	lat := center.Lat() + meters/metersPerDegreeLat
	lng := center.Lon()

	return &entity.Store{
		ID:       int64(meters),
		Token:    token,
		Name:     ptr(name),
		Address:  ptr("تهران، ونک، خیابان ملاصدرا"),
		CityName: ptr("تهران"),
		Lat:      &lat,
		Lng:      &lng,
		IsActive: true,
	}
}

func TestStoreService_FindNearby_RanksWithinRadius(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	far := storeNorthOf(tehran, 300, "store_far", "Far")
	near := storeNorthOf(tehran, 50, "store_near", "Near")
	mid := storeNorthOf(tehran, 150, "store_mid", "Mid")

	fx.storeRepo.EXPECT().
		FindInBound(ctx, geo.BoundingBox(tehran, 200), entity.StoreFilter{}).
		Return([]*entity.Store{far, near, mid}, nil)

	result, err := fx.service.FindNearby(ctx, usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(200.0)})
	require.NoError(t, err)

	require.Len(t, result.Stores, 2)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "store_near", result.Stores[0].Token)
	assert.InDelta(t, 50.0, result.Stores[0].Distance, 0.1)
	assert.Equal(t, "store_mid", result.Stores[1].Token)
	assert.InDelta(t, 150.0, result.Stores[1].Distance, 0.1)
	assert.Equal(t, "ونک", result.Stores[0].Neighborhood)
	assert.InDelta(t, 200.0, result.RadiusMeters, 1e-9)
	assert.Equal(t, 3, result.Debug.TotalRows)
	assert.Less(t, result.Debug.LatRange.Min, tehran.Lat())
	assert.Greater(t, result.Debug.LatRange.Max, tehran.Lat())
}

func TestStoreService_FindNearby_CollapsesDuplicatePositions(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	first := storeNorthOf(tehran, 20, "store_a", "Bakery")
	second := storeNorthOf(tehran, 20, "store_b", "Bakery")
	filter := entity.StoreFilter{Category: "bakery", City: "تهران"}

	fx.storeRepo.EXPECT().
		FindInBound(ctx, geo.BoundingBox(tehran, 200), filter).
		Return([]*entity.Store{first, second}, nil)

	result, err := fx.service.FindNearby(ctx, usecase.NearbyQuery{
		Center:   tehran,
		Category: " bakery ",
		City:     "تهران",
	})
	require.NoError(t, err)

	require.Len(t, result.Stores, 1)
	assert.Equal(t, "store_a", result.Stores[0].Token)
	assert.Equal(t, 1, result.Debug.TotalRows)
}

func TestStoreService_FindNearby_CategoryFallsBackToSlugThenUnknown(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	withSlug := storeNorthOf(tehran, 10, "store_slug", "A")
	withSlug.CategorySlug = ptr("bakery")
	bare := storeNorthOf(tehran, 30, "store_bare", "B")

	fx.storeRepo.EXPECT().
		FindInBound(ctx, mock.Anything, mock.Anything).
		Return([]*entity.Store{withSlug, bare}, nil)

	result, err := fx.service.FindNearby(ctx, usecase.NearbyQuery{Center: tehran})
	require.NoError(t, err)

	require.Len(t, result.Stores, 2)
	assert.Equal(t, "bakery", result.Stores[0].Category)
	assert.Equal(t, "نامشخص", result.Stores[1].Category)
	assert.Empty(t, result.Stores[1].CategorySlug)
}

func TestStoreService_FindNearby_NoCandidates(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		FindInBound(ctx, mock.Anything, mock.Anything).
		Return(nil, nil)

	result, err := fx.service.FindNearby(ctx, usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(0.0)})
	require.NoError(t, err)
	assert.NotNil(t, result.Stores)
	assert.Empty(t, result.Stores)
	assert.Equal(t, 0, result.Count)
}

func TestStoreService_FindNearby_RadiusAtMaxKeepsFarStores(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	far := storeNorthOf(tehran, 4900, "store_far", "Far")
	fx.storeRepo.EXPECT().
		FindInBound(ctx, geo.BoundingBox(tehran, 5000), entity.StoreFilter{}).
		Return([]*entity.Store{far}, nil)

	result, err := fx.service.FindNearby(ctx, usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(5000.0)})
	require.NoError(t, err)

	assert.InDelta(t, 5000.0, result.RadiusMeters, 1e-9)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "store_far", result.Stores[0].Token)
}

func TestStoreService_FindNearby_RepeatedCallsAreIdentical(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	// east and west sit at the same distance from the center.
	offset := 100 / (metersPerDegreeLat * math.Cos(tehran.Lat()*math.Pi/180))
	east := storeNorthOf(tehran, 0, "store_east", "East")
	east.Lng = ptr(tehran.Lon() + offset)
	west := storeNorthOf(tehran, 0, "store_west", "West")
	west.Lng = ptr(tehran.Lon() - offset)
	north := storeNorthOf(tehran, 100, "store_north", "North")
	near := storeNorthOf(tehran, 30, "store_near", "Near")

	fx.storeRepo.EXPECT().
		FindInBound(ctx, geo.BoundingBox(tehran, 200), entity.StoreFilter{}).
		RunAndReturn(func(context.Context, orb.Bound, entity.StoreFilter) ([]*entity.Store, error) {
			return []*entity.Store{east, north, west, near}, nil
		}).
		Times(2)

	query := usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(200.0)}
	first, err := fx.service.FindNearby(ctx, query)
	require.NoError(t, err)
	second, err := fx.service.FindNearby(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.Stores, 4)
	assert.Equal(t, "store_near", first.Stores[0].Token)
	for i := 1; i < len(first.Stores); i++ {
		assert.LessOrEqual(t, first.Stores[i-1].Distance, first.Stores[i].Distance)
	}
}

func TestStoreService_FindNearby_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		query   usecase.NearbyQuery
		wantErr error
	}{
		{
			name:    "latitude out of range",
			query:   usecase.NearbyQuery{Center: orb.Point{51.3, 95}},
			wantErr: domainerrors.ErrInvalidCoordinates,
		},
		{
			name:    "negative radius",
			query:   usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(-1.0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "infinite radius",
			query:   usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(math.Inf(1))},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "radius above maximum",
			query:   usecase.NearbyQuery{Center: tehran, RadiusMeters: ptr(10000.0)},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStoreService(t)

			_, err := fx.service.FindNearby(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStoreService_ListByNeighborhood(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	center := tehran

	fx.storeRepo.EXPECT().CountByNeighborhood(ctx, "ونک", "").Return(int64(45), nil)
	fx.storeRepo.EXPECT().
		ListByNeighborhood(ctx, "ونک", "", &center, 30).
		Return([]*entity.NeighborhoodStore{
			{Store: storeNorthOf(tehran, 12, "store_1", "One"), Distance: ptr(12.3456)},
		}, nil)

	result, err := fx.service.ListByNeighborhood(ctx, usecase.NeighborhoodQuery{Neighborhood: " ونک ", Center: &center})
	require.NoError(t, err)

	require.Len(t, result.Stores, 1)
	require.NotNil(t, result.Stores[0].Distance)
	assert.InDelta(t, 12.35, *result.Stores[0].Distance, 1e-9)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, int64(45), result.TotalCount)
	assert.True(t, result.HasMore)
	assert.Equal(t, "ونک", result.Neighborhood)
}

func TestStoreService_ListByNeighborhood_RequiresName(t *testing.T) {
	fx := createTestStoreService(t)

	_, err := fx.service.ListByNeighborhood(context.Background(), usecase.NeighborhoodQuery{Neighborhood: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_Register_UsesPayloadGeometryAndReverseGeocoding(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	userID := uuid.New()

	payload := json.RawMessage(`{"geometry":{"type":"Point","coordinates":["51.41","35.75"]}}`)

	fx.storeRepo.EXPECT().TokenExists(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	fx.geocoder.EXPECT().
		Reverse(ctx, orb.Point{51.41, 35.75}).
		Return(&service.ReverseGeocodeResult{City: "تهران", County: "شمیرانات"}, nil)
	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, store *entity.Store) error {
			store.ID = 99

			return nil
		})

	store, err := fx.service.Register(ctx, userID, &usecase.RegisterStoreInput{
		Name:          "نانوایی",
		Address:       "ونک، خیابان ملاصدرا",
		Category:      "Bread Shop",
		PlaceFullData: payload,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), store.ID)
	assert.Regexp(t, regexp.MustCompile(`^store_\d+_[a-z0-9]{12}$`), store.Token)
	require.NotNil(t, store.Lat)
	assert.InDelta(t, 35.75, *store.Lat, 1e-9)
	assert.InDelta(t, 51.41, *store.Lng, 1e-9)
	assert.Equal(t, "تهران", *store.CityName)
	assert.Equal(t, "شمیرانات", *store.ProvinceName)
	assert.Equal(t, "bread_shop", *store.CategorySlug)
	assert.True(t, store.IsActive)
	assert.Equal(t, userID, *store.CreatedBy)
}

func TestStoreService_Register_CityFallsBackToAddress(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().TokenExists(ctx, mock.Anything).Return(false, nil).Once()
	fx.geocoder.EXPECT().
		Reverse(ctx, mock.Anything).
		Return(nil, service.ErrGeocodingUnavailable)
	fx.storeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	store, err := fx.service.Register(ctx, uuid.New(), &usecase.RegisterStoreInput{
		Name:     "Shop",
		Address:  "خیابان آزادی، شیراز",
		Category: "grocery",
		Lat:      ptr(29.6),
		Lng:      ptr(52.5),
		IsActive: ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "شیراز", *store.CityName)
	assert.Nil(t, store.ProvinceName)
	assert.False(t, store.IsActive)
}

func TestStoreService_Register_ForwardGeocodesWithoutCoordinates(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().TokenExists(ctx, mock.Anything).Return(false, nil).Once()
	fx.geocoder.EXPECT().Forward(ctx, "ونک").Return(orb.Point{51.4, 35.76}, nil)
	fx.storeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	store, err := fx.service.Register(ctx, uuid.New(), &usecase.RegisterStoreInput{
		Name:     "Shop",
		Address:  "ونک",
		Category: "grocery",
		City:     ptr("تهران"),
	})
	require.NoError(t, err)

	require.NotNil(t, store.Lat)
	assert.InDelta(t, 35.76, *store.Lat, 1e-9)
	assert.Equal(t, "تهران", *store.CityName)
}

func TestStoreService_Register_TokenAttemptsExhausted(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().TokenExists(ctx, mock.Anything).Return(true, nil).Times(maxStoreTokenAttempts)

	_, err := fx.service.Register(ctx, uuid.New(), &usecase.RegisterStoreInput{
		Name:     "Shop",
		Address:  "ونک",
		Category: "grocery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrStoreTokenExhausted)
}

func TestStoreService_UpdateWorkshop_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().UpdateWorkshop(ctx, int64(7), true).Return(repository.ErrStoreNotFound)

	err := fx.service.UpdateWorkshop(ctx, 7, true)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_StoreQRCode(t *testing.T) {
	t.Run("renders known store", func(t *testing.T) {
		fx := createTestStoreService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByToken(ctx, "store_1").Return(&entity.Store{Token: "store_1"}, nil)
		fx.qrCodeSvc.EXPECT().GenerateStoreQR("store_1").Return([]byte("png"), nil)

		png, err := fx.service.StoreQRCode(ctx, "store_1")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown store", func(t *testing.T) {
		fx := createTestStoreService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByToken(ctx, "store_x").Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.StoreQRCode(ctx, "store_x")
		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})
}

func TestStoreService_ResolveQRCode(t *testing.T) {
	t.Run("scanned payload", func(t *testing.T) {
		fx := createTestStoreService(t)
		ctx := context.Background()
		payload := `{"type":"store","store_token":"store_1"}`

		fx.qrCodeSvc.EXPECT().ParseStoreQR(payload).Return("store_1", nil)
		fx.storeRepo.EXPECT().FindByToken(ctx, "store_1").
			Return(&entity.Store{ID: 1, Token: "store_1", Name: ptr("Bakery One")}, nil)

		view, err := fx.service.ResolveQRCode(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, "store_1", view.Token)
		assert.Equal(t, "Bakery One", view.Name)
	})

	t.Run("unreadable content", func(t *testing.T) {
		fx := createTestStoreService(t)

		fx.qrCodeSvc.EXPECT().ParseStoreQR("garbage").Return("", errors.New("bad json"))

		_, err := fx.service.ResolveQRCode(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStoreService_Categories_PropagatesError(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().ListActive(ctx).Return(nil, errors.New("boom"))

	_, err := fx.service.Categories(ctx)
	assert.Error(t, err)
}
