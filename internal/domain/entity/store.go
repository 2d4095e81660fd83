package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store is a row of the store directory as persisted.
type Store struct {
	ID              int64
	Token           string // Globally unique, the only key safe for cross-source joins.
	Name            *string
	Address         *string
	Lat             *float64
	Lng             *float64
	CategoryDisplay *string
	CategorySlug    *string
	CityName        *string
	ProvinceName    *string
	Phone           *string
	Rating          *float64
	RatingCount     *int64
	Description     *string
	Website         *string
	Email           *string
	PriceRange      *string
	PlateNumber     *string
	PostalCode      *string
	ImageURLs       []string
	SeoDetails      json.RawMessage // Opaque SEO metadata, read by the neighborhood resolver.
	FullData        json.RawMessage // Opaque externally sourced payload.
	IsActive        bool
	HasWorkshop     bool
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// GroupCode is the primary group of the store, filled by queries that join memberships.
	GroupCode *string
}

// Location returns the store position when both coordinates are present.
func (s *Store) Location() (orb.Point, bool) {
	if s.Lat == nil || s.Lng == nil {
		return orb.Point{}, false
	}

	return orb.Point{*s.Lng, *s.Lat}, true
}

// StoreFilter narrows store searches. Empty fields are ignored.
type StoreFilter struct {
	Category     string // Matches the display label or the slug.
	City         string
	Neighborhood string // Substring of the address or the serialized SEO metadata.
}

// NeighborhoodStore is a store returned by the neighborhood listing.
type NeighborhoodStore struct {
	Store    *Store
	Distance *float64 // Meters, only when the caller supplied a reference point.
}
