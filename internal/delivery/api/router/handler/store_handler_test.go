package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "storeradar/internal/domain/errors"
	mockUC "storeradar/internal/mocks/usecase"
	"storeradar/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStoreHandler(t *testing.T) (*StoreHandler, *mockUC.MockStoreUsecase) {
	storeUC := mockUC.NewMockStoreUsecase(t)

	return NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()}), storeUC
}

func TestStoreHandler_Nearby(t *testing.T) {
	t.Run("passes filters and echoes center", func(t *testing.T) {
		h, storeUC := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/nearby?lat=35.7&lng=51.4&maxDistance=300&category=bakery", "", nil)
		center := orb.Point{51.4, 35.7}

		storeUC.EXPECT().
			FindNearby(mock.Anything, mock.MatchedBy(func(q usecase.NearbyQuery) bool {
				return q.Center == center && q.RadiusMeters != nil && *q.RadiusMeters == 300 && q.Category == "bakery"
			})).
			Return(&usecase.NearbyResult{
				Stores:       []usecase.NearbyStore{{StoreSummary: usecase.StoreSummary{ID: 1, Name: "Bakery One"}, Distance: 42.5}},
				Count:        1,
				Center:       center,
				RadiusMeters: 300,
			}, nil)

		require.NoError(t, h.Nearby(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out struct {
			Stores      []usecase.NearbyStore `json:"stores"`
			Count       int                   `json:"count"`
			MaxDistance float64               `json:"maxDistance"`
			Center      Center                `json:"center"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, 1, out.Count)
		assert.Equal(t, 300.0, out.MaxDistance)
		assert.Equal(t, Center{Lat: 35.7, Lng: 51.4}, out.Center)
		assert.Equal(t, 42.5, out.Stores[0].Distance)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		h, _ := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/nearby?lat=35.7", "", nil)

		require.NoError(t, h.Nearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non numeric radius", func(t *testing.T) {
		h, _ := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/nearby?lat=35.7&lng=51.4&maxDistance=far", "", nil)

		require.NoError(t, h.Nearby(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoreHandler_ByNeighborhood(t *testing.T) {
	t.Run("optional center and limit", func(t *testing.T) {
		h, storeUC := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/by-neighborhood?neighborhood=vanak&limit=10", "", nil)

		storeUC.EXPECT().
			ListByNeighborhood(mock.Anything, usecase.NeighborhoodQuery{Neighborhood: "vanak", Limit: 10}).
			Return(&usecase.NeighborhoodResult{Neighborhood: "vanak"}, nil)

		require.NoError(t, h.ByNeighborhood(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("neighborhood required", func(t *testing.T) {
		h, _ := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/by-neighborhood", "", nil)

		require.NoError(t, h.ByNeighborhood(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoreHandler_QRCode(t *testing.T) {
	t.Run("png body", func(t *testing.T) {
		h, storeUC := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/store_1/qr", "", nil)
		c.SetParamNames("token")
		c.SetParamValues("store_1")

		storeUC.EXPECT().StoreQRCode(mock.Anything, "store_1").Return([]byte("png"), nil)

		require.NoError(t, h.QRCode(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png", rec.Body.String())
	})

	t.Run("unknown store", func(t *testing.T) {
		h, storeUC := newTestStoreHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/stores/store_x/qr", "", nil)
		c.SetParamNames("token")
		c.SetParamValues("store_x")

		storeUC.EXPECT().StoreQRCode(mock.Anything, "store_x").Return(nil, domainerrors.ErrStoreNotFound)

		require.NoError(t, h.QRCode(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStoreHandler_UpdateWorkshop_RequiresFlag(t *testing.T) {
	h, _ := newTestStoreHandler(t)
	c, rec := newTestContext(http.MethodPatch, "/api/v1/stores/5/workshop", `{}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.UpdateWorkshop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
