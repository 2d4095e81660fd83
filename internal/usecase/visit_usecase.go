package usecase

import (
	"context"
	"encoding/json"
	"time"

	"storeradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// SubmitVisitInput records the evidence of a visit.
type SubmitVisitInput struct {
	AssignmentID   int64
	VisitDate      time.Time
	VisitTime      *string
	ImageURLs      []string
	AdditionalInfo json.RawMessage
	Location       *orb.Point
}

// VisitUsecase defines the visit evidence operations.
type VisitUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, input *SubmitVisitInput) (*entity.VisitRecord, error)
	List(ctx context.Context, filter entity.VisitFilter) ([]*entity.VisitRecord, error)
}
