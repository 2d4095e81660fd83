// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when the username or email is already taken.
	ErrUserConflict = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateLocation stores the last location reported by the user.
	UpdateLocation(ctx context.Context, id uuid.UUID, location orb.Point) error

	// AcquireSessionMutex locks the user row for the rest of the transaction.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
