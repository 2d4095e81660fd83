package usecase

import (
	"context"
	"time"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignInput assigns stores to an agent for one date.
type AssignInput struct {
	UserID       uuid.UUID
	StoreTokens  []string
	AssignedDate time.Time
	Notes        *string
}

// AssignOutput lists the assignments that were written and the tokens that
// were not. Requested counts distinct tokens.
type AssignOutput struct {
	Message       string
	Requested     int
	Assignments   []*entity.Assignment
	SkippedTokens []string // unknown stores
	FailedTokens  []string // known stores whose row could not be written
}

// AssignedStore is an assignment with its canonical store record.
type AssignedStore struct {
	Assignment entity.Assignment
	Store      entity.StoreView
	User       *entity.UserSummary
}

// AssignmentUsecase defines the visit planning operations.
type AssignmentUsecase interface {
	Assign(ctx context.Context, assignedBy uuid.UUID, input *AssignInput) (*AssignOutput, error)
	List(ctx context.Context, filter entity.AssignmentFilter) ([]AssignedStore, error)
	Export(ctx context.Context, filter entity.AssignmentFilter) ([]byte, error)
}
