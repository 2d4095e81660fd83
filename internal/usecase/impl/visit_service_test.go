package impl

import (
	"context"
	"testing"
	"time"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	mockRepo "storeradar/internal/mocks/repository"
	mockSvc "storeradar/internal/mocks/service"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visitServiceFixtures struct {
	service       usecase.VisitUsecase
	txManager     *mockRepo.MockTransactionManager
	visitRepo     *mockRepo.MockVisitRepository
	publisher     *mockSvc.MockEventPublisher
	txAssignments *mockRepo.MockAssignmentRepository
	txVisits      *mockRepo.MockVisitRepository
	txRepoFactory *mockRepo.MockRepositoryFactory
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	fx := visitServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		visitRepo:     mockRepo.NewMockVisitRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		txAssignments: mockRepo.NewMockAssignmentRepository(t),
		txVisits:      mockRepo.NewMockVisitRepository(t),
		txRepoFactory: mockRepo.NewMockRepositoryFactory(t),
	}
	fx.service = NewVisitService(VisitServiceParams{
		TxManager: fx.txManager,
		VisitRepo: fx.visitRepo,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})
	fx.txRepoFactory.EXPECT().AssignmentRepo().Return(fx.txAssignments)
	runInTx(fx.txManager, fx.txRepoFactory)

	return fx
}

func TestVisitService_Submit_CompletesAssignment(t *testing.T) {
	fx := createTestVisitService(t)
	ctx := context.Background()
	agent, manager := uuid.New(), uuid.New()
	visitDate := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	fx.txRepoFactory.EXPECT().VisitRepo().Return(fx.txVisits)
	fx.txAssignments.EXPECT().FindByID(ctx, int64(11)).Return(&entity.Assignment{
		ID:           11,
		UserID:       agent,
		StoreToken:   "store_a",
		AssignedDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		AssignedBy:   &manager,
	}, nil)
	fx.txVisits.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRecord")).
		RunAndReturn(func(_ context.Context, v *entity.VisitRecord) error {
			v.ID = 99

			return nil
		})
	fx.txAssignments.EXPECT().Complete(ctx, int64(11), visitDate).Return(nil)
	fx.publisher.EXPECT().
		PublishAssignmentEvent(ctx, mock.MatchedBy(func(e *service.AssignmentEvent) bool {
			return e.Type == constants.EventVisitCompleted && e.VisitID == 99 && e.AssignedBy == manager.String()
		})).
		Return(nil)

	visit, err := fx.service.Submit(ctx, agent, &usecase.SubmitVisitInput{
		AssignmentID: 11,
		VisitDate:    visitDate,
		VisitTime:    ptr("10:30"),
		Location:     &tehran,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), visit.ID)
	assert.Equal(t, "store_a", visit.StoreToken)
	assert.Equal(t, agent, visit.UserID)
}

func TestVisitService_Submit_Rejects(t *testing.T) {
	agent := uuid.New()

	tests := []struct {
		name    string
		find    func(*mockRepo.MockAssignmentRepository)
		wantErr error
	}{
		{
			name: "missing assignment",
			find: func(r *mockRepo.MockAssignmentRepository) {
				r.EXPECT().FindByID(mock.Anything, int64(11)).Return(nil, repository.ErrAssignmentNotFound)
			},
			wantErr: domainerrors.ErrAssignmentNotFound,
		},
		{
			name: "assignment of another agent",
			find: func(r *mockRepo.MockAssignmentRepository) {
				r.EXPECT().FindByID(mock.Anything, int64(11)).Return(&entity.Assignment{ID: 11, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrAssignmentForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitService(t)
			tt.find(fx.txAssignments)

			_, err := fx.service.Submit(context.Background(), agent, &usecase.SubmitVisitInput{
				AssignmentID: 11,
				VisitDate:    time.Now(),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
