package repository

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for assignment persistence.
var (
	// ErrAssignmentNotFound is returned when an assignment is not found.
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// AssignmentRepository defines the interface for visit assignments.
type AssignmentRepository interface {
	// Upsert inserts the assignment or, when (user, token, date) exists, updates its notes.
	// The stored row is written back into assignment.
	Upsert(ctx context.Context, assignment *entity.Assignment) error

	// FindByID retrieves an assignment by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Assignment, error)

	// List returns assignments joined with their stores and users, ordered by
	// assigned date descending then store name.
	List(ctx context.Context, filter entity.AssignmentFilter) ([]entity.AssignmentRow, error)

	// Complete sets the visit date and marks the assignment completed.
	Complete(ctx context.Context, id int64, visitDate time.Time) error
}
