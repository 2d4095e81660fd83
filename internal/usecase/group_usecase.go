package usecase

import (
	"context"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput groups stores. Without a code a new group is created.
type CreateGroupInput struct {
	StoreIDs  []int64
	GroupCode *string
	GroupName *string
}

// GroupOutput is a group with its memberships, primary first.
type GroupOutput struct {
	Group      *entity.StoreGroup
	Members    []*entity.GroupMember
	AddedCount int
}

// GroupUsecase defines the store grouping operations.
type GroupUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateGroupInput) (*GroupOutput, error)
	Get(ctx context.Context, code string) (*GroupOutput, error)
	ListByStore(ctx context.Context, storeID int64) ([]*entity.StoreGroup, error)
	List(ctx context.Context) ([]*entity.StoreGroup, error)
	// Delete removes one store from the group, or the whole group when storeID is nil.
	Delete(ctx context.Context, code string, storeID *int64) error
}
