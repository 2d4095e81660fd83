package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Comment is a user's note about a store, optionally rated 1..10.
type Comment struct {
	ID           int64
	StoreID      int64
	UserID       uuid.UUID
	Text         string
	Rating       *int
	UserLocation *orb.Point
	ImageURLs    []string
	CreatedAt    time.Time

	// Author is filled by listing queries.
	Author *UserSummary
}
