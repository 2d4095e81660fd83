package catalog

import (
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64     { return &i }

func TestNormalize_NamePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		row      entity.StoreRow
		wantName string
	}{
		{
			name: "full data name wins over relational name",
			row: entity.StoreRow{
				Token:     "store_1",
				Projected: entity.StoreProjection{Name: strPtr("Unknown Store")},
				Raw:       &entity.Store{Name: strPtr("Unknown Store"), FullData: []byte(`{"name":"Acme Bakery"}`)},
			},
			wantName: "Acme Bakery",
		},
		{
			name: "relational name without full data",
			row: entity.StoreRow{
				Token:     "store_1",
				Projected: entity.StoreProjection{Name: strPtr("Unknown Store")},
				Raw:       &entity.Store{Name: strPtr("Unknown Store")},
			},
			wantName: "Unknown Store",
		},
		{
			name: "seo name when direct name is empty",
			row: entity.StoreRow{
				Raw: &entity.Store{FullData: []byte(`{"name":"","seo_details":{"name":"Seo Name"}}`)},
			},
			wantName: "Seo Name",
		},
		{
			name: "placeholder projection falls back to raw column",
			row: entity.StoreRow{
				Projected: entity.StoreProjection{Name: strPtr(constants.UnknownLabel)},
				Raw:       &entity.Store{Name: strPtr("Raw Name")},
			},
			wantName: "Raw Name",
		},
		{
			name:     "malformed full data is treated as absent",
			row:      entity.StoreRow{Raw: &entity.Store{Name: strPtr("Raw Name"), FullData: []byte(`{"name":`)}},
			wantName: "Raw Name",
		},
		{
			name:     "nothing known",
			row:      entity.StoreRow{Token: "store_x"},
			wantName: constants.UnknownLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, Normalize(tt.row).Name)
		})
	}
}

func TestNormalize_CoordinateInversion(t *testing.T) {
	row := entity.StoreRow{
		Token: "store_1",
		Raw: &entity.Store{
			Lat:      floatPtr(1),
			Lng:      floatPtr(2),
			FullData: []byte(`{"geometry":{"type":"Point","coordinates":[51.39, 35.70]}}`),
		},
	}

	view := Normalize(row)

	require.NotNil(t, view.Lat)
	require.NotNil(t, view.Lng)
	assert.InDelta(t, 35.70, *view.Lat, 1e-9)
	assert.InDelta(t, 51.39, *view.Lng, 1e-9)

	loc, ok := view.Location()
	require.True(t, ok)
	assert.InDelta(t, 35.70, loc.Lat(), 1e-9)
	assert.InDelta(t, 51.39, loc.Lon(), 1e-9)
}

func TestNormalize_CoordinateGuards(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantLat *float64
		wantLng *float64
	}{
		{
			name:    "nested element is absent, not zero",
			payload: `{"geometry":{"type":"Point","coordinates":[{"v":51.39}, 35.70]}}`,
			wantLat: floatPtr(35.70),
			wantLng: floatPtr(9),
		},
		{
			name:    "numeric strings are coerced",
			payload: `{"geometry":{"type":"Point","coordinates":["51.39","35.70"]}}`,
			wantLat: floatPtr(35.70),
			wantLng: floatPtr(51.39),
		},
		{
			name:    "non point geometry is ignored",
			payload: `{"geometry":{"type":"Polygon","coordinates":[51.39, 35.70]}}`,
			wantLat: floatPtr(8),
			wantLng: floatPtr(9),
		},
		{
			name:    "short coordinate list is ignored",
			payload: `{"geometry":{"type":"Point","coordinates":[51.39]}}`,
			wantLat: floatPtr(8),
			wantLng: floatPtr(9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Normalize(entity.StoreRow{
				Raw: &entity.Store{Lat: floatPtr(8), Lng: floatPtr(9), FullData: []byte(tt.payload)},
			})
			require.NotNil(t, view.Lat)
			require.NotNil(t, view.Lng)
			assert.InDelta(t, *tt.wantLat, *view.Lat, 1e-9)
			assert.InDelta(t, *tt.wantLng, *view.Lng, 1e-9)
		})
	}
}

func TestNormalize_FullDataFields(t *testing.T) {
	payload := `{
		"name": "Acme",
		"category": "Bakery",
		"phone_link": "tel:021123",
		"rating": 8.5,
		"reviews": {"total": 42},
		"description": "fresh bread",
		"price_range": "$$",
		"fields": [
			{"type": "text", "value": ""},
			{"type": "phone", "value": "021"},
			{"type": "text", "value": "تهران، ونک، خیابان ملاصدرا"}
		],
		"seo_details": {
			"url_title": "acme-bakery-tehran_bakery",
			"schemas": [{"geo": {"addressLocality": "تهران"}}]
		}
	}`
	row := entity.StoreRow{
		Token:     "store_1",
		Projected: entity.StoreProjection{Address: strPtr("projected address"), Category: strPtr("projected"), City: strPtr("Shiraz")},
		Raw: &entity.Store{
			ID:           7,
			CategorySlug: strPtr("raw-slug"),
			ProvinceName: strPtr("Tehran"),
			Website:      strPtr("https://acme.example"),
			Email:        strPtr("hi@acme.example"),
			Phone:        strPtr("raw phone"),
			Rating:       floatPtr(1),
			RatingCount:  int64Ptr(1),
			HasWorkshop:  true,
			FullData:     []byte(payload),
		},
	}

	view := Normalize(row)

	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "Acme", view.Name)
	assert.Equal(t, "تهران، ونک، خیابان ملاصدرا", view.Address)
	assert.Equal(t, "Bakery", view.Category)
	require.NotNil(t, view.CategorySlug)
	assert.Equal(t, "bakery", *view.CategorySlug)
	assert.Equal(t, "تهران", view.City)
	assert.Equal(t, "tel:021123", *view.Phone)
	assert.InDelta(t, 8.5, *view.Rating, 1e-9)
	assert.Equal(t, int64(42), *view.RatingCount)
	assert.Equal(t, "fresh bread", *view.Description)
	assert.Equal(t, "$$", *view.PriceRange)
	assert.Equal(t, "Tehran", *view.Province)
	assert.Equal(t, "https://acme.example", *view.Website)
	assert.Equal(t, "hi@acme.example", *view.Email)
	assert.True(t, view.HasWorkshop)
}

func TestNormalize_StructuredValuesAreAbsent(t *testing.T) {
	row := entity.StoreRow{
		Raw: &entity.Store{
			Rating:      floatPtr(6),
			RatingCount: int64Ptr(3),
			FullData:    []byte(`{"rating":{"value":9},"reviews":{"total":{"count":10}}}`),
		},
	}

	view := Normalize(row)

	require.NotNil(t, view.Rating)
	assert.InDelta(t, 6.0, *view.Rating, 1e-9, "structured rating falls through to the column")
	require.NotNil(t, view.RatingCount)
	assert.Equal(t, int64(3), *view.RatingCount)
}

func TestNormalize_ReviewsWithoutTotal(t *testing.T) {
	view := Normalize(entity.StoreRow{
		Raw: &entity.Store{RatingCount: int64Ptr(3), FullData: []byte(`{"reviews":{"average":4}}`)},
	})

	require.NotNil(t, view.RatingCount)
	assert.Equal(t, int64(0), *view.RatingCount)
}

func TestNormalize_Fallbacks(t *testing.T) {
	row := entity.StoreRow{
		Token: "store_9",
		Projected: entity.StoreProjection{
			Name:     strPtr(constants.UnknownLabel),
			Address:  strPtr(""),
			Category: strPtr(""),
			City:     strPtr(""),
		},
		Raw: &entity.Store{
			Address:         strPtr("raw address"),
			CategoryDisplay: strPtr("raw category"),
			CityName:        strPtr("raw city"),
			FullData:        []byte(`{"seo_details":{"url_title":"no-underscore"}}`),
		},
	}

	view := Normalize(row)

	assert.Equal(t, constants.UnknownLabel, view.Name)
	assert.Equal(t, "raw address", view.Address)
	assert.Equal(t, "raw category", view.Category)
	assert.Equal(t, "raw city", view.City)
	assert.Nil(t, view.CategorySlug)
	assert.Nil(t, view.Lat)
	assert.Nil(t, view.Rating)
	_, ok := view.Location()
	assert.False(t, ok)
}

func TestNormalize_DoubleEncodedPayload(t *testing.T) {
	view := Normalize(entity.StoreRow{
		Raw: &entity.Store{FullData: []byte(`"{\"name\":\"Encoded\"}"`)},
	})

	assert.Equal(t, "Encoded", view.Name)
}

func TestNormalize_CategoryPlaceholderIsEmpty(t *testing.T) {
	view := Normalize(entity.StoreRow{
		Token:     "store_3",
		Projected: entity.StoreProjection{Category: strPtr(constants.UnknownLabel)},
	})

	assert.Empty(t, view.Category)
	assert.Empty(t, view.Address)
	assert.Empty(t, view.City)
}

func TestNormalize_OutOfRangeReviewTotalIsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "huge total", payload: `{"reviews":{"total":1e300}}`},
		{name: "huge negative total", payload: `{"reviews":{"total":-1e300}}`},
		{name: "just past int64", payload: `{"reviews":{"total":9223372036854775808}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Normalize(entity.StoreRow{
				Raw: &entity.Store{RatingCount: int64Ptr(4), FullData: []byte(tt.payload)},
			})

			require.NotNil(t, view.RatingCount)
			assert.Equal(t, int64(4), *view.RatingCount)
		})
	}
}
