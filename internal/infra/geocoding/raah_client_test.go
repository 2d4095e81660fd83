package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.Geocoder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Geocoding: &config.GeocodingConfig{
		ReverseBaseURL: srv.URL + "/reverse/",
		ForwardBaseURL: srv.URL + "/forward",
		Timeout:        time.Second,
	}}

	return NewRaahClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRaahClient_Reverse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse/", r.URL.Path)
		assert.Equal(t, "51.389,35.6892", r.URL.Query().Get("location"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"formatted_address": " تهران، ونک ",
			"components": [
				{"type": "city", "full_name": "تهران"},
				{"type": "county", "short_name": "شمیرانات"},
				{"type": "neighborhood", "full_name": "ونک"},
				{"type": "street", "full_name": "ملاصدرا"}
			]
		}`)
	})

	result, err := client.Reverse(context.Background(), orb.Point{51.389, 35.6892})
	require.NoError(t, err)
	assert.Equal(t, "تهران، ونک", result.FormattedAddress)
	assert.Equal(t, "تهران", result.City)
	assert.Equal(t, "شمیرانات", result.County)
	assert.Equal(t, "ونک", result.Neighborhood)
	assert.Equal(t, "ملاصدرا", result.Street)
}

func TestRaahClient_ReverseUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Reverse(context.Background(), orb.Point{51.389, 35.6892})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGeocodingUnavailable))
}

func TestRaahClient_FeatureName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "properties name", body: `{"features":[{"properties":{"name":" ونک "}}]}`, want: "ونک"},
		{name: "properties title", body: `{"features":[{"properties":{"title":"یوسف آباد"}}]}`, want: "یوسف آباد"},
		{name: "feature name", body: `{"features":[{"name":"جردن"}]}`, want: "جردن"},
		{name: "root name", body: `{"name":"تهران"}`, want: "تهران"},
		{name: "root properties", body: `{"properties":{"name":"کرج"}}`, want: "کرج"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/reverse/features", r.URL.Path)
				assert.Equal(t, service.FeatureNeighborhood, r.URL.Query().Get("result_type"))
				_, _ = io.WriteString(w, tt.body)
			})

			name, err := client.FeatureName(context.Background(), orb.Point{51.4, 35.7}, service.FeatureNeighborhood)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestRaahClient_FeatureNameMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"features":[]}`)
	})

	_, err := client.FeatureName(context.Background(), orb.Point{51.4, 35.7}, service.FeatureCity)
	assert.True(t, errors.Is(err, service.ErrGeocodingUnavailable))
}

func TestRaahClient_Forward(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forward/", r.URL.Path)
		assert.Equal(t, "تهران، ونک", r.URL.Query().Get("address"))
		_, _ = io.WriteString(w, `{"location":{"lat":35.757,"lng":"51.41"}}`)
	})

	point, err := client.Forward(context.Background(), "تهران، ونک")
	require.NoError(t, err)
	assert.InDelta(t, 35.757, point.Lat(), 1e-9)
	assert.InDelta(t, 51.41, point.Lon(), 1e-9)
}

func TestRaahClient_ForwardWithoutLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.Forward(context.Background(), "ناکجا")
	assert.True(t, errors.Is(err, service.ErrGeocodingUnavailable))
}

func TestRaahClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{Geocoding: &config.GeocodingConfig{
		ReverseBaseURL: srv.URL,
		Timeout:        20 * time.Millisecond,
	}}
	client := NewRaahClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Reverse(context.Background(), orb.Point{51.4, 35.7})
	assert.True(t, errors.Is(err, service.ErrGeocodingUnavailable))
}
