package impl

import (
	"context"
	"testing"
	"time"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	mockRepo "storeradar/internal/mocks/repository"
	mockSvc "storeradar/internal/mocks/service"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assignmentServiceFixtures struct {
	service        usecase.AssignmentUsecase
	storeRepo      *mockRepo.MockStoreRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	publisher      *mockSvc.MockEventPublisher
	exporter       *mockSvc.MockReportExporter
}

func createTestAssignmentService(t *testing.T) assignmentServiceFixtures {
	fx := assignmentServiceFixtures{
		storeRepo:      mockRepo.NewMockStoreRepository(t),
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		exporter:       mockSvc.NewMockReportExporter(t),
	}
	fx.service = NewAssignmentService(AssignmentServiceParams{
		StoreRepo:      fx.storeRepo,
		AssignmentRepo: fx.assignmentRepo,
		Publisher:      fx.publisher,
		Exporter:       fx.exporter,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestAssignmentService_Assign_PartialSuccess(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	agent, manager := uuid.New(), uuid.New()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tokens := []string{"store_a", "store_unknown", "store_b", "store_c"}

	fx.storeRepo.EXPECT().FindByTokens(ctx, tokens).
		Return([]*entity.Store{{Token: "store_a"}, {Token: "store_b"}, {Token: "store_c"}}, nil)

	var nextID int64
	fx.assignmentRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(a *entity.Assignment) bool { return a.StoreToken != "store_c" })).
		RunAndReturn(func(_ context.Context, a *entity.Assignment) error {
			nextID++
			a.ID = nextID

			return nil
		}).Times(2)
	fx.assignmentRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(a *entity.Assignment) bool { return a.StoreToken == "store_c" })).
		Return(errors.New("deadlock"))
	fx.publisher.EXPECT().
		PublishAssignmentEvent(ctx, mock.MatchedBy(func(e *service.AssignmentEvent) bool {
			return e.Type == constants.EventAssignmentCreated &&
				e.UserID == agent.String() &&
				e.AssignedBy == manager.String() &&
				e.AssignedDate == "2024-05-01" &&
				assert.ObjectsAreEqual([]int64{1, 2}, e.AssignmentIDs)
		})).
		Return(nil)

	out, err := fx.service.Assign(ctx, manager, &usecase.AssignInput{UserID: agent, StoreTokens: tokens, AssignedDate: date})
	require.NoError(t, err)

	assert.Equal(t, "2 stores assigned successfully", out.Message)
	assert.Equal(t, 4, out.Requested)
	assert.Equal(t, []string{"store_unknown"}, out.SkippedTokens)
	assert.Equal(t, []string{"store_c"}, out.FailedTokens)
	require.Len(t, out.Assignments, 2)
	assert.Equal(t, constants.AssignmentStatusPending, out.Assignments[0].Status)
	assert.Equal(t, manager, *out.Assignments[0].AssignedBy)
}

func TestAssignmentService_Assign_NothingKnown(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().FindByTokens(ctx, []string{"store_x"}).Return(nil, nil)

	out, err := fx.service.Assign(ctx, uuid.New(), &usecase.AssignInput{
		UserID:       uuid.New(),
		StoreTokens:  []string{"store_x"},
		AssignedDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "0 stores assigned successfully", out.Message)
	assert.Empty(t, out.Assignments)
	assert.Equal(t, 1, out.Requested)
	assert.Equal(t, []string{"store_x"}, out.SkippedTokens)
}

func TestAssignmentService_Assign_Validation(t *testing.T) {
	fx := createTestAssignmentService(t)

	_, err := fx.service.Assign(context.Background(), uuid.New(), &usecase.AssignInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssignmentService_List_NormalizesAndDedups(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	userID := uuid.New()
	filter := entity.AssignmentFilter{UserID: &userID}

	fx.assignmentRepo.EXPECT().List(ctx, filter).Return([]entity.AssignmentRow{
		{
			Assignment: entity.Assignment{ID: 1, StoreToken: "store_a"},
			Store: entity.StoreRow{
				Token: "store_a",
				Raw:   &entity.Store{Token: "store_a", FullData: []byte(`{"name":"Bakery One"}`)},
			},
		},
		{Assignment: entity.Assignment{ID: 2, StoreToken: "store_a"}},
		{Assignment: entity.Assignment{ID: 3, StoreToken: "store_b"}, Store: entity.StoreRow{Token: "store_b"}},
	}, nil)

	out, err := fx.service.List(ctx, filter)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].Assignment.ID)
	assert.Equal(t, "Bakery One", out[0].Store.Name)
	assert.Equal(t, constants.UnknownLabel, out[1].Store.Name)
}

func TestAssignmentService_Export_UsesJalaliDates(t *testing.T) {
	fx := createTestAssignmentService(t)
	ctx := context.Background()
	visited := time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC)

	fx.assignmentRepo.EXPECT().List(ctx, entity.AssignmentFilter{}).Return([]entity.AssignmentRow{{
		Assignment: entity.Assignment{
			ID:           7,
			StoreToken:   "store_a",
			AssignedDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			VisitDate:    &visited,
			Status:       constants.AssignmentStatusCompleted,
		},
		Store: entity.StoreRow{Token: "store_a"},
		User:  &entity.UserSummary{Username: "agent", FullName: ptr("Ali")},
	}}, nil)
	fx.exporter.EXPECT().
		AssignmentsXLSX(mock.MatchedBy(func(rows []service.AssignmentReportRow) bool {
			return len(rows) == 1 &&
				rows[0].AssignedDate == "1403/01/01" &&
				rows[0].VisitDate == "1403/01/02" &&
				rows[0].Username == "agent" &&
				rows[0].FullName == "Ali"
		})).
		Return([]byte("xlsx"), nil)

	report, err := fx.service.Export(ctx, entity.AssignmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), report)
}
