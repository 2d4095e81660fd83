package usecase

import (
	"context"

	"github.com/paulmach/orb"
)

// AddressComponents are the named parts of a reverse geocoded address.
type AddressComponents struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	County       string `json:"county"`
}

// AddressResult is the address of a point. Found is false when no source answered.
type AddressResult struct {
	Found      bool              `json:"found"`
	Address    string            `json:"address"`
	Components AddressComponents `json:"components"`
	Message    string            `json:"message,omitempty"`
}

// NeighborhoodNameResult is the neighborhood a point falls in.
type NeighborhoodNameResult struct {
	Found        bool   `json:"found"`
	Neighborhood string `json:"neighborhood"`
	Message      string `json:"message,omitempty"`
}

// LocalityUsecase resolves human-readable places for coordinates.
type LocalityUsecase interface {
	GetAddress(ctx context.Context, point orb.Point) (*AddressResult, error)
	GetNeighborhood(ctx context.Context, point orb.Point) (*NeighborhoodNameResult, error)
}
