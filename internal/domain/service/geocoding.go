package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrGeocodingUnavailable is returned when the geocoding provider fails, times
// out or has nothing for the requested point.
var ErrGeocodingUnavailable = errors.New("geocoding unavailable")

// Feature kinds supported by FeatureName.
const (
	FeatureStreet       = "street"
	FeatureNeighborhood = "neighborhood"
	FeatureCity         = "city"
)

// ReverseGeocodeResult is the best-effort address of a point.
type ReverseGeocodeResult struct {
	FormattedAddress string
	City             string
	County           string
	Neighborhood     string
	Street           string
}

// Geocoder resolves coordinates to addresses and back. Calls are bounded in time.
type Geocoder interface {
	// Reverse returns the address document for a point.
	Reverse(ctx context.Context, point orb.Point) (*ReverseGeocodeResult, error)

	// FeatureName returns the name of the feature of the given kind at a point.
	FeatureName(ctx context.Context, point orb.Point, kind string) (string, error)

	// Forward resolves free-form address text to a point.
	Forward(ctx context.Context, address string) (orb.Point, error)
}
