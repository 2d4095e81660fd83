package impl

import (
	"context"
	"testing"

	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	mockSvc "storeradar/internal/mocks/service"
	"storeradar/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocalityService(t *testing.T) (usecase.LocalityUsecase, *mockSvc.MockGeocoder) {
	geocoder := mockSvc.NewMockGeocoder(t)

	return NewLocalityService(LocalityServiceParams{Geocoder: geocoder, Logger: newDiscardLogger()}), geocoder
}

func TestLocalityService_GetAddress(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(g *mockSvc.MockGeocoder)
		expect usecase.AddressResult
	}{
		{
			name: "formatted address from provider",
			setup: func(g *mockSvc.MockGeocoder) {
				g.EXPECT().Reverse(context.Background(), tehran).Return(&service.ReverseGeocodeResult{
					FormattedAddress: "تهران، ونک",
					City:             "تهران",
					Neighborhood:     "ونک",
				}, nil)
			},
			expect: usecase.AddressResult{
				Found:      true,
				Address:    "تهران، ونک",
				Components: usecase.AddressComponents{City: "تهران", Neighborhood: "ونک"},
			},
		},
		{
			name: "joins components when formatted address is missing",
			setup: func(g *mockSvc.MockGeocoder) {
				g.EXPECT().Reverse(context.Background(), tehran).Return(&service.ReverseGeocodeResult{
					City:         "تهران",
					County:       "شمیرانات",
					Neighborhood: "ونک",
					Street:       "ملاصدرا",
				}, nil)
			},
			expect: usecase.AddressResult{
				Found:   true,
				Address: "ملاصدرا، ونک، شمیرانات، تهران",
				Components: usecase.AddressComponents{
					City: "تهران", Neighborhood: "ونک", Street: "ملاصدرا", County: "شمیرانات",
				},
			},
		},
		{
			name: "falls back to feature lookups",
			setup: func(g *mockSvc.MockGeocoder) {
				ctx := context.Background()
				g.EXPECT().Reverse(ctx, tehran).Return(nil, service.ErrGeocodingUnavailable)
				g.EXPECT().FeatureName(ctx, tehran, service.FeatureStreet).Return("", service.ErrGeocodingUnavailable)
				g.EXPECT().FeatureName(ctx, tehran, service.FeatureNeighborhood).Return("ونک", nil)
				g.EXPECT().FeatureName(ctx, tehran, service.FeatureCity).Return("تهران", nil)
			},
			expect: usecase.AddressResult{
				Found:      true,
				Address:    "ونک، تهران",
				Components: usecase.AddressComponents{City: "تهران", Neighborhood: "ونک"},
			},
		},
		{
			name: "nothing found",
			setup: func(g *mockSvc.MockGeocoder) {
				ctx := context.Background()
				g.EXPECT().Reverse(ctx, tehran).Return(nil, service.ErrGeocodingUnavailable)
				g.EXPECT().FeatureName(ctx, tehran, mock.AnythingOfType("string")).Return("", service.ErrGeocodingUnavailable).Times(3)
			},
			expect: usecase.AddressResult{Found: false, Message: addressNotFoundMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, geocoder := createTestLocalityService(t)
			tt.setup(geocoder)

			result, err := uc.GetAddress(context.Background(), tehran)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, *result)
		})
	}
}

func TestLocalityService_GetNeighborhood(t *testing.T) {
	t.Run("neighborhood feature", func(t *testing.T) {
		uc, geocoder := createTestLocalityService(t)
		geocoder.EXPECT().FeatureName(context.Background(), tehran, service.FeatureNeighborhood).Return("ونک", nil)

		result, err := uc.GetNeighborhood(context.Background(), tehran)
		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "ونک", result.Neighborhood)
	})

	t.Run("city fallback", func(t *testing.T) {
		uc, geocoder := createTestLocalityService(t)
		ctx := context.Background()
		geocoder.EXPECT().FeatureName(ctx, tehran, service.FeatureNeighborhood).Return("", nil)
		geocoder.EXPECT().FeatureName(ctx, tehran, service.FeatureCity).Return("تهران", nil)

		result, err := uc.GetNeighborhood(ctx, tehran)
		require.NoError(t, err)
		assert.Equal(t, "تهران", result.Neighborhood)
	})

	t.Run("not found", func(t *testing.T) {
		uc, geocoder := createTestLocalityService(t)
		geocoder.EXPECT().FeatureName(context.Background(), tehran, mock.AnythingOfType("string")).Return("", service.ErrGeocodingUnavailable).Times(2)

		result, err := uc.GetNeighborhood(context.Background(), tehran)
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Equal(t, neighborhoodNotFoundMessage, result.Message)
	})

	t.Run("invalid point", func(t *testing.T) {
		uc, _ := createTestLocalityService(t)

		_, err := uc.GetNeighborhood(context.Background(), orb.Point{0, -91})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}
