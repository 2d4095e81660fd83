package impl

import (
	"context"
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	mockRepo "storeradar/internal/mocks/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deactivationServiceFixtures struct {
	service          usecase.DeactivationUsecase
	txManager        *mockRepo.MockTransactionManager
	storeRepo        *mockRepo.MockStoreRepository
	deactivationRepo *mockRepo.MockDeactivationRepository
}

func createTestDeactivationService(t *testing.T) deactivationServiceFixtures {
	fx := deactivationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		storeRepo:        mockRepo.NewMockStoreRepository(t),
		deactivationRepo: mockRepo.NewMockDeactivationRepository(t),
	}
	fx.service = NewDeactivationService(DeactivationServiceParams{
		TxManager:        fx.txManager,
		StoreRepo:        fx.storeRepo,
		DeactivationRepo: fx.deactivationRepo,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestDeactivationService_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("files request", func(t *testing.T) {
		fx := createTestDeactivationService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Store{ID: 5, Token: "store_5"}, nil)
		fx.deactivationRepo.EXPECT().HasPending(ctx, int64(5)).Return(false, nil)
		fx.deactivationRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *entity.DeactivationRequest) bool {
				return r.StoreToken == "store_5" && r.Status == constants.DeactivationStatusPending && r.RequestedBy == userID
			})).
			RunAndReturn(func(_ context.Context, r *entity.DeactivationRequest) error {
				r.ID = 31

				return nil
			})

		out, err := fx.service.Create(ctx, userID, 5, ptr("closed"))
		require.NoError(t, err)
		assert.True(t, out.Accepted)
		assert.Equal(t, int64(31), out.RequestID)
		assert.Equal(t, deactivationCreatedMessage, out.Message)
	})

	t.Run("pending request exists", func(t *testing.T) {
		fx := createTestDeactivationService(t)
		ctx := context.Background()

		fx.storeRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Store{ID: 5}, nil)
		fx.deactivationRepo.EXPECT().HasPending(ctx, int64(5)).Return(true, nil)

		out, err := fx.service.Create(ctx, userID, 5, nil)
		require.NoError(t, err)
		assert.False(t, out.Accepted)
		assert.Equal(t, deactivationPendingMessage, out.Message)
	})

	t.Run("missing store", func(t *testing.T) {
		fx := createTestDeactivationService(t)

		fx.storeRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.Create(context.Background(), userID, 5, nil)
		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})
}

func TestDeactivationService_Review(t *testing.T) {
	reviewer := uuid.New()

	newTx := func(t *testing.T, fx deactivationServiceFixtures) (*mockRepo.MockRepositoryFactory, *mockRepo.MockDeactivationRepository) {
		factory := mockRepo.NewMockRepositoryFactory(t)
		txRequests := mockRepo.NewMockDeactivationRepository(t)
		factory.EXPECT().DeactivationRepo().Return(txRequests)
		runInTx(fx.txManager, factory)

		return factory, txRequests
	}

	t.Run("approve deactivates store", func(t *testing.T) {
		fx := createTestDeactivationService(t)
		factory, txRequests := newTx(t, fx)
		txStores := mockRepo.NewMockStoreRepository(t)
		ctx := context.Background()

		factory.EXPECT().StoreRepo().Return(txStores)
		txRequests.EXPECT().FindPendingByID(ctx, int64(31)).Return(&entity.DeactivationRequest{ID: 31, StoreID: 5}, nil)
		txStores.EXPECT().Deactivate(ctx, int64(5)).Return(nil)
		txRequests.EXPECT().
			MarkReviewed(ctx, int64(31), constants.DeactivationStatusApproved, reviewer, mock.AnythingOfType("time.Time")).
			Return(nil)

		out, err := fx.service.Review(ctx, reviewer, 31, constants.ReviewActionApprove)
		require.NoError(t, err)
		assert.Equal(t, constants.DeactivationStatusApproved, out.Status)
		assert.Equal(t, deactivationApprovedMessage, out.Message)
	})

	t.Run("reject leaves store active", func(t *testing.T) {
		fx := createTestDeactivationService(t)
		_, txRequests := newTx(t, fx)
		ctx := context.Background()

		txRequests.EXPECT().FindPendingByID(ctx, int64(31)).Return(&entity.DeactivationRequest{ID: 31, StoreID: 5}, nil)
		txRequests.EXPECT().
			MarkReviewed(ctx, int64(31), constants.DeactivationStatusRejected, reviewer, mock.AnythingOfType("time.Time")).
			Return(nil)

		out, err := fx.service.Review(ctx, reviewer, 31, constants.ReviewActionReject)
		require.NoError(t, err)
		assert.Equal(t, deactivationRejectedMessage, out.Message)
	})

	t.Run("already reviewed", func(t *testing.T) {
		fx := createTestDeactivationService(t)
		_, txRequests := newTx(t, fx)

		txRequests.EXPECT().FindPendingByID(mock.Anything, int64(31)).Return(nil, repository.ErrDeactivationRequestNotFound)

		_, err := fx.service.Review(context.Background(), reviewer, 31, constants.ReviewActionApprove)
		assert.ErrorIs(t, err, domainerrors.ErrDeactivationRequestNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		fx := createTestDeactivationService(t)

		_, err := fx.service.Review(context.Background(), reviewer, 31, "archive")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReviewAction)
	})
}
