package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreGroup is a named set of stores identified by a unique code.
type StoreGroup struct {
	ID         int64
	Code       string
	Name       *string
	CreatedBy  *uuid.UUID
	CreatedAt  time.Time
	StoreCount int64 // Filled by listing queries.
}

// GroupMember links a store to a group. At most one membership per pair.
type GroupMember struct {
	ID        int64
	GroupCode string
	StoreID   int64
	IsPrimary bool
	CreatedAt time.Time

	// Store is filled by queries that join the store table.
	Store *Store
}
