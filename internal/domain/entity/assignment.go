package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment schedules a visit of one user to one store on one date.
type Assignment struct {
	ID           int64
	UserID       uuid.UUID
	StoreToken   string
	AssignedDate time.Time
	VisitDate    *time.Time
	Status       string
	Notes        *string
	AssignedBy   *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AssignmentFilter narrows assignment listings. Nil fields are ignored.
type AssignmentFilter struct {
	UserID       *uuid.UUID
	AssignedDate *time.Time
	Status       *string
}

// AssignmentRow is an assignment joined with its store and user.
type AssignmentRow struct {
	Assignment Assignment
	Store      StoreRow
	User       *UserSummary
}
