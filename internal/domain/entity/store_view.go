package entity

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// StoreProjection holds the aliased store columns of a join. The query
// substitutes placeholders (the unknown label, empty strings) for NULLs.
type StoreProjection struct {
	Name     *string
	Address  *string
	Lat      *float64
	Lng      *float64
	Category *string
	City     *string
}

// StoreRow is a store as it arrives through a join from another table: the
// aliased projection, the raw columns and the opaque full-data payload.
type StoreRow struct {
	Token     string
	Projected StoreProjection
	Raw       *Store // nil when the join found no store row.
}

// StoreView is the canonical, display-ready store record.
type StoreView struct {
	ID           int64           `json:"id,omitempty"`
	Token        string          `json:"token"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Lat          *float64        `json:"lat"`
	Lng          *float64        `json:"lng"`
	Category     string          `json:"category"`
	CategorySlug *string         `json:"categorySlug"`
	City         string          `json:"city"`
	Province     *string         `json:"province"`
	Phone        *string         `json:"phone"`
	Rating       *float64        `json:"rating"`
	RatingCount  *int64          `json:"ratingCount"`
	Description  *string         `json:"description"`
	Website      *string         `json:"website"`
	Email        *string         `json:"email"`
	PriceRange   *string         `json:"priceRange"`
	HasWorkshop  bool            `json:"hasWorkshop"`
	FullData     json.RawMessage `json:"fullData,omitempty"`
}

// Location returns the store position when both coordinates are present.
func (v *StoreView) Location() (orb.Point, bool) {
	if v.Lat == nil || v.Lng == nil {
		return orb.Point{}, false
	}

	return orb.Point{*v.Lng, *v.Lat}, true
}
