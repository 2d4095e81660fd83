package impl

import (
	"context"
	"log/slog"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/geo"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type visitService struct {
	txManager repository.TransactionManager
	visitRepo repository.VisitRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VisitRepo repository.VisitRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewVisitService creates the visit evidence use case.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager: params.TxManager,
		visitRepo: params.VisitRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a visit and completes its assignment in one transaction.
func (srv *visitService) Submit(ctx context.Context, userID uuid.UUID, input *usecase.SubmitVisitInput) (*entity.VisitRecord, error) {
	if input.AssignmentID <= 0 || input.VisitDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("assignmentId and visitDate are required")
	}
	if input.Location != nil && !geo.Valid(*input.Location) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	var (
		visit      *entity.VisitRecord
		assignment *entity.Assignment
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.AssignmentRepo()

		var err error
		assignment, err = assignmentRepo.FindByID(ctx, input.AssignmentID)
		if err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return domainerrors.ErrAssignmentNotFound
			}

			return errors.Wrap(err, "failed to find assignment")
		}
		if assignment.UserID != userID {
			return domainerrors.ErrAssignmentForbidden
		}

		visit = &entity.VisitRecord{
			AssignmentID:   assignment.ID,
			UserID:         userID,
			StoreToken:     assignment.StoreToken,
			VisitDate:      input.VisitDate,
			VisitTime:      input.VisitTime,
			Location:       input.Location,
			ImageURLs:      input.ImageURLs,
			AdditionalInfo: input.AdditionalInfo,
		}
		if err := repoFactory.VisitRepo().Create(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to create visit record")
		}

		if err := assignmentRepo.Complete(ctx, assignment.ID, input.VisitDate); err != nil {
			return errors.Wrap(err, "failed to complete assignment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Visit submission failed", slog.Int64("assignmentID", input.AssignmentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit transaction")
	}
	srv.log(ctx).Info("Visit recorded", slog.Int64("visitID", visit.ID), slog.Int64("assignmentID", assignment.ID))

	srv.publishCompleted(ctx, assignment, visit)

	return visit, nil
}

func (srv *visitService) publishCompleted(ctx context.Context, assignment *entity.Assignment, visit *entity.VisitRecord) {
	event := &service.AssignmentEvent{
		Type:          constants.EventVisitCompleted,
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		UserID:        assignment.UserID.String(),
		AssignmentIDs: []int64{assignment.ID},
		StoreTokens:   []string{assignment.StoreToken},
		AssignedDate:  assignment.AssignedDate.Format(isoDateLayout),
		VisitID:       visit.ID,
	}
	if assignment.AssignedBy != nil {
		event.AssignedBy = assignment.AssignedBy.String()
	}

	if err := srv.publisher.PublishAssignmentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish visit event", slog.Any("error", err))
	}
}

// List returns visit records, newest first.
func (srv *visitService) List(ctx context.Context, filter entity.VisitFilter) ([]*entity.VisitRecord, error) {
	visits, err := srv.visitRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}
