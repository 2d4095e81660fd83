package usecase

import (
	"context"
	"encoding/json"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// NearbyQuery describes a proximity search. Empty filters are ignored.
type NearbyQuery struct {
	Center       orb.Point
	RadiusMeters *float64 // nil selects the configured default
	Category     string
	City         string
	Neighborhood string
}

// StoreSummary is the listing shape of a store.
type StoreSummary struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Category     string   `json:"category"`
	CategorySlug string   `json:"categorySlug"`
	City         string   `json:"city"`
	Province     string   `json:"province"`
	Phone        string   `json:"phone"`
	Rating       *float64 `json:"rating"`
	Token        string   `json:"token"`
	HasWorkshop  bool     `json:"hasWorkshop"`
	GroupCode    *string  `json:"groupCode"`
}

// NearbyStore is a store within the search radius.
type NearbyStore struct {
	StoreSummary
	Neighborhood string  `json:"neighborhood"`
	Distance     float64 `json:"distance"` // meters, one decimal
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NearbyDebug describes the prefilter of a proximity search.
type NearbyDebug struct {
	TotalRows int   `json:"totalRows"`
	LatRange  Range `json:"latRange"`
	LngRange  Range `json:"lngRange"`
}

// NearbyResult holds the stores within the radius, nearest first.
type NearbyResult struct {
	Stores       []NearbyStore `json:"stores"`
	Count        int           `json:"count"`
	Center       orb.Point     `json:"-"`
	RadiusMeters float64       `json:"maxDistance"`
	Debug        NearbyDebug   `json:"debug"`
}

// NeighborhoodQuery selects the stores of a neighborhood.
type NeighborhoodQuery struct {
	Neighborhood string
	City         string
	Center       *orb.Point
	Limit        int // zero selects the configured default
}

// NeighborhoodStore is a store listed by neighborhood.
type NeighborhoodStore struct {
	StoreSummary
	Distance *float64 `json:"distance"` // meters, two decimals, only with a center
}

// NeighborhoodResult is one page of a neighborhood listing.
type NeighborhoodResult struct {
	Stores       []NeighborhoodStore `json:"stores"`
	Count        int                 `json:"count"`
	TotalCount   int64               `json:"totalCount"`
	Neighborhood string              `json:"neighborhood"`
	HasMore      bool                `json:"hasMore"`
}

// RegisterStoreInput defines the data required to register a store manually.
type RegisterStoreInput struct {
	Name          string
	Address       string
	Lat           *float64
	Lng           *float64
	Category      string
	CategorySlug  *string
	Phone         *string
	City          *string
	Province      *string
	PlateNumber   *string
	PostalCode    *string
	IsActive      *bool
	ImageURLs     []string
	PlaceFullData json.RawMessage
}

// StoreUsecase defines the store directory operations.
type StoreUsecase interface {
	FindNearby(ctx context.Context, query NearbyQuery) (*NearbyResult, error)
	ListByNeighborhood(ctx context.Context, query NeighborhoodQuery) (*NeighborhoodResult, error)
	Register(ctx context.Context, userID uuid.UUID, input *RegisterStoreInput) (*entity.Store, error)
	UpdateWorkshop(ctx context.Context, storeID int64, hasWorkshop bool) error
	StoreQRCode(ctx context.Context, token string) ([]byte, error)
	// ResolveQRCode returns the store printed on a scanned plate.
	ResolveQRCode(ctx context.Context, content string) (*entity.StoreView, error)
	Categories(ctx context.Context) ([]*entity.MainCategory, error)
}
