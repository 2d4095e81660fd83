// Package geocoding implements service.Geocoder against the Raah HTTP geocoding API.
package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storeradar/config"
	"storeradar/internal/domain/service"
	"storeradar/internal/domain/storedoc"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultReverseBaseURL = "https://reverse-geocoding.raah.ir/v1"
	defaultForwardBaseURL = "https://geocoding.raah.ir/v1"
	defaultTimeout        = 10 * time.Second
	maxResponseBytes      = 1 << 20
)

// raahClient talks to the reverse and forward geocoding endpoints.
type raahClient struct {
	reverseBaseURL string
	forwardBaseURL string
	apiKey         string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewRaahClient builds the geocoder from the geocoding config section.
func NewRaahClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	client := &raahClient{
		reverseBaseURL: defaultReverseBaseURL,
		forwardBaseURL: defaultForwardBaseURL,
		httpClient:     &http.Client{Timeout: defaultTimeout},
		logger:         logger,
	}

	if gc := cfg.Geocoding; gc != nil {
		if gc.ReverseBaseURL != "" {
			client.reverseBaseURL = strings.TrimRight(gc.ReverseBaseURL, "/")
		}
		if gc.ForwardBaseURL != "" {
			client.forwardBaseURL = strings.TrimRight(gc.ForwardBaseURL, "/")
		}
		if gc.Timeout > 0 {
			client.httpClient.Timeout = gc.Timeout
		}
		client.apiKey = gc.APIKey
	}

	return client
}

// Reverse returns the formatted address and named components of a point.
func (c *raahClient) Reverse(ctx context.Context, point orb.Point) (*service.ReverseGeocodeResult, error) {
	doc, err := c.get(ctx, c.reverseBaseURL+"/", url.Values{"location": {formatLocation(point)}})
	if err != nil {
		return nil, err
	}

	formatted, _ := doc.NonEmptyString("formatted_address")
	result := &service.ReverseGeocodeResult{
		FormattedAddress: strings.TrimSpace(formatted),
	}

	components, _ := doc.List("components")
	for i := range components {
		component, ok := storedoc.Index(components, i)
		if !ok {
			continue
		}

		name, ok := component.NonEmptyString("full_name")
		if !ok {
			name, _ = component.NonEmptyString("short_name")
		}

		kind, _ := component.String("type")
		switch kind {
		case "city":
			result.City = name
		case "county":
			result.County = name
		case service.FeatureNeighborhood:
			result.Neighborhood = name
		case service.FeatureStreet:
			result.Street = name
		}
	}

	return result, nil
}

// FeatureName returns the name of the first feature of kind at point.
func (c *raahClient) FeatureName(ctx context.Context, point orb.Point, kind string) (string, error) {
	doc, err := c.get(ctx, c.reverseBaseURL+"/features", url.Values{
		"result_type": {kind},
		"location":    {formatLocation(point)},
	})
	if err != nil {
		return "", err
	}

	name := featureName(doc)
	if name == "" {
		return "", errors.Wrapf(service.ErrGeocodingUnavailable, "no %s feature at point", kind)
	}

	return name, nil
}

// Forward resolves free-form address text to a point.
func (c *raahClient) Forward(ctx context.Context, address string) (orb.Point, error) {
	doc, err := c.get(ctx, c.forwardBaseURL+"/", url.Values{"address": {address}})
	if err != nil {
		return orb.Point{}, err
	}

	lat, latOK := doc.Number("location", "lat")
	lng, lngOK := doc.Number("location", "lng")
	if !latOK || !lngOK {
		return orb.Point{}, errors.Wrap(service.ErrGeocodingUnavailable, "address has no location")
	}

	return orb.Point{lng, lat}, nil
}

// featureName walks the response shapes the feature endpoint is known to return.
func featureName(doc storedoc.Document) string {
	candidates := [][]string{
		{"features", "0", "properties", "name"},
		{"features", "0", "properties", "neighborhood"},
		{"features", "0", "properties", "title"},
		{"features", "0", "properties", "label"},
		{"features", "0", "name"},
		{"name"},
		{"properties", "name"},
	}

	for _, path := range candidates {
		if name, ok := doc.String(path...); ok && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}

	return ""
}

func (c *raahClient) get(ctx context.Context, endpoint string, query url.Values) (storedoc.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return storedoc.Document{}, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "Geocoding request failed",
			slog.String("endpoint", endpoint),
			slog.Any("error", err),
		)

		return storedoc.Document{}, errors.Wrap(service.ErrGeocodingUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return storedoc.Document{}, errors.Wrapf(service.ErrGeocodingUnavailable, "geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return storedoc.Document{}, errors.Wrap(service.ErrGeocodingUnavailable, err.Error())
	}

	return storedoc.Parse(body), nil
}

// formatLocation renders a point as the "lng,lat" pair the API expects.
func formatLocation(point orb.Point) string {
	return strconv.FormatFloat(point.Lon(), 'f', -1, 64) + "," + strconv.FormatFloat(point.Lat(), 'f', -1, 64)
}
