package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// VisitRecord is evidence that an assignment was carried out.
type VisitRecord struct {
	ID             int64
	AssignmentID   int64
	UserID         uuid.UUID
	StoreToken     string
	VisitDate      time.Time
	VisitTime      *string // HH:MM as entered by the agent.
	Location       *orb.Point
	ImageURLs      []string
	AdditionalInfo json.RawMessage
	CreatedAt      time.Time

	// StoreName is filled by listing queries.
	StoreName string
}

// VisitFilter narrows visit listings. Nil fields are ignored.
type VisitFilter struct {
	AssignmentID *int64
	StoreID      *int64
	StoreToken   *string
	UserID       *uuid.UUID
}
