package repository

import (
	"context"

	"storeradar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group code is unknown.
	ErrGroupNotFound = errors.New("group not found")
)

// GroupRepository defines the interface for store groups and their memberships.
type GroupRepository interface {
	// Create persists a new group.
	Create(ctx context.Context, group *entity.StoreGroup) error

	// FindByCode retrieves a group by its code.
	FindByCode(ctx context.Context, code string) (*entity.StoreGroup, error)

	// List returns all groups with their member counts, newest first.
	List(ctx context.Context) ([]*entity.StoreGroup, error)

	// AddMember inserts a membership. It reports false when the pair already exists.
	AddMember(ctx context.Context, member *entity.GroupMember) (bool, error)

	// ListMembers returns the memberships of a group with their stores, primary first.
	ListMembers(ctx context.Context, code string) ([]*entity.GroupMember, error)

	// ListByStore returns the groups a store belongs to.
	ListByStore(ctx context.Context, storeID int64) ([]*entity.StoreGroup, error)

	// RemoveMember deletes one membership.
	RemoveMember(ctx context.Context, code string, storeID int64) error

	// Delete removes a group and its memberships.
	Delete(ctx context.Context, code string) error
}
