package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Persian user-facing messages of the deactivation workflow.
const (
	deactivationPendingMessage  = "درخواست غیرفعال کردن این مغازه در حال بررسی است"
	deactivationCreatedMessage  = "درخواست غیرفعال کردن مغازه با موفقیت ثبت شد"
	deactivationApprovedMessage = "مغازه با موفقیت غیرفعال شد"
	deactivationRejectedMessage = "درخواست رد شد"
)

type deactivationService struct {
	txManager        repository.TransactionManager
	storeRepo        repository.StoreRepository
	deactivationRepo repository.DeactivationRepository
	now              func() time.Time
	logger           *slog.Logger
}

// DeactivationServiceParams holds dependencies for DeactivationService, injected by Fx.
type DeactivationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	StoreRepo        repository.StoreRepository
	DeactivationRepo repository.DeactivationRepository
	Logger           *slog.Logger
}

// NewDeactivationService creates the store deactivation use case.
func NewDeactivationService(params DeactivationServiceParams) usecase.DeactivationUsecase {
	return &deactivationService{
		txManager:        params.TxManager,
		storeRepo:        params.StoreRepo,
		deactivationRepo: params.DeactivationRepo,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *deactivationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create files a request unless the store already has one pending.
func (srv *deactivationService) Create(ctx context.Context, userID uuid.UUID, storeID int64, reason *string) (*usecase.DeactivationOutput, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	pending, err := srv.deactivationRepo.HasPending(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pending requests")
	}
	if pending {
		return &usecase.DeactivationOutput{Accepted: false, Message: deactivationPendingMessage}, nil
	}

	req := &entity.DeactivationRequest{
		StoreID:     storeID,
		StoreToken:  store.Token,
		RequestedBy: userID,
		Reason:      reason,
		Status:      constants.DeactivationStatusPending,
	}
	if err := srv.deactivationRepo.Create(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to create deactivation request")
	}
	srv.log(ctx).Info("Deactivation requested", slog.Int64("storeID", storeID), slog.Int64("requestID", req.ID))

	return &usecase.DeactivationOutput{Accepted: true, Message: deactivationCreatedMessage, RequestID: req.ID}, nil
}

// Review approves or rejects a pending request. Approval deactivates the store
// in the same transaction.
func (srv *deactivationService) Review(ctx context.Context, reviewerID uuid.UUID, requestID int64, action string) (*usecase.ReviewOutput, error) {
	var output *usecase.ReviewOutput

	switch action {
	case constants.ReviewActionApprove:
		output = &usecase.ReviewOutput{Status: constants.DeactivationStatusApproved, Message: deactivationApprovedMessage}
	case constants.ReviewActionReject:
		output = &usecase.ReviewOutput{Status: constants.DeactivationStatusRejected, Message: deactivationRejectedMessage}
	default:
		return nil, domainerrors.ErrInvalidReviewAction
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deactivationRepo := repoFactory.DeactivationRepo()

		req, err := deactivationRepo.FindPendingByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrDeactivationRequestNotFound) {
				return domainerrors.ErrDeactivationRequestNotFound
			}

			return errors.Wrap(err, "failed to find deactivation request")
		}

		if action == constants.ReviewActionApprove {
			if err := repoFactory.StoreRepo().Deactivate(ctx, req.StoreID); err != nil {
				return errors.Wrap(err, "failed to deactivate store")
			}
		}

		if err := deactivationRepo.MarkReviewed(ctx, requestID, output.Status, reviewerID, srv.now()); err != nil {
			return errors.Wrap(err, "failed to mark request reviewed")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review transaction")
	}
	srv.log(ctx).Info("Deactivation request reviewed", slog.Int64("requestID", requestID), slog.String("status", output.Status))

	return output, nil
}

// List returns requests, newest first.
func (srv *deactivationService) List(ctx context.Context, status *string) ([]*entity.DeactivationRequest, error) {
	requests, err := srv.deactivationRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deactivation requests")
	}

	return requests, nil
}
