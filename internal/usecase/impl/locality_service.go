package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storeradar/internal/delivery/context"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/geo"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	addressNotFoundMessage      = "آدرس یافت نشد"
	neighborhoodNotFoundMessage = "محله یافت نشد"
	addressSeparator            = "، "
)

type localityService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// LocalityServiceParams holds dependencies for LocalityService, injected by Fx.
type LocalityServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewLocalityService creates the reverse geocoding use case.
func NewLocalityService(params LocalityServiceParams) usecase.LocalityUsecase {
	return &localityService{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

func (srv *localityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAddress returns the address of a point. Provider failures degrade to a
// not-found result instead of an error.
func (srv *localityService) GetAddress(ctx context.Context, point orb.Point) (*usecase.AddressResult, error) {
	if !geo.Valid(point) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	var components usecase.AddressComponents
	formatted := ""

	result, err := srv.geocoder.Reverse(ctx, point)
	if err == nil {
		components = usecase.AddressComponents{
			City:         result.City,
			Neighborhood: result.Neighborhood,
			Street:       result.Street,
			County:       result.County,
		}
		formatted = strings.TrimSpace(result.FormattedAddress)
	} else {
		srv.log(ctx).Warn("Reverse geocoding failed, trying feature lookups", slog.Any("error", err))

		components = usecase.AddressComponents{
			Street:       srv.featureName(ctx, point, service.FeatureStreet),
			Neighborhood: srv.featureName(ctx, point, service.FeatureNeighborhood),
			City:         srv.featureName(ctx, point, service.FeatureCity),
		}
	}

	if formatted == "" {
		formatted = joinNonEmpty(addressSeparator, components.Street, components.Neighborhood, components.County, components.City)
	}
	if formatted == "" {
		return &usecase.AddressResult{Found: false, Message: addressNotFoundMessage}, nil
	}

	return &usecase.AddressResult{
		Found:      true,
		Address:    formatted,
		Components: components,
	}, nil
}

// GetNeighborhood returns the neighborhood of a point, falling back to its city.
func (srv *localityService) GetNeighborhood(ctx context.Context, point orb.Point) (*usecase.NeighborhoodNameResult, error) {
	if !geo.Valid(point) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	for _, kind := range []string{service.FeatureNeighborhood, service.FeatureCity} {
		if name := srv.featureName(ctx, point, kind); name != "" {
			return &usecase.NeighborhoodNameResult{Found: true, Neighborhood: name}, nil
		}
	}

	return &usecase.NeighborhoodNameResult{Found: false, Message: neighborhoodNotFoundMessage}, nil
}

func (srv *localityService) featureName(ctx context.Context, point orb.Point, kind string) string {
	name, err := srv.geocoder.FeatureName(ctx, point, kind)
	if err != nil {
		srv.log(ctx).Debug("Feature lookup failed", slog.String("kind", kind), slog.Any("error", err))

		return ""
	}

	return strings.TrimSpace(name)
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, sep)
}
