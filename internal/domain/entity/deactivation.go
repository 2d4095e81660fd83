package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeactivationRequest asks a reviewer to take a store out of listings.
type DeactivationRequest struct {
	ID          int64
	StoreID     int64
	StoreToken  string
	RequestedBy uuid.UUID
	Reason      *string
	Status      string
	ReviewedBy  *uuid.UUID
	ReviewedAt  *time.Time
	CreatedAt   time.Time

	// Filled by listing queries.
	StoreName    *string
	StoreAddress *string
	Requester    *UserSummary
	Reviewer     *UserSummary
}
