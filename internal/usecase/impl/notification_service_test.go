package impl

import (
	"context"
	"fmt"
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
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

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockDeviceRepository, *mockSvc.MockNotificationService) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	uc := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return uc, deviceRepo, notificationSvc
}

func devicesFor(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	return devices
}

func TestNotificationService_Dispatch_AssignmentCreated(t *testing.T) {
	uc, deviceRepo, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()
	agent := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, agent).Return(devicesFor(agent, 2), nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"),
			mock.MatchedBy(func(data map[string]string) bool {
				return data["type"] == constants.EventAssignmentCreated && data["assignment_ids"] == "4,5"
			})).
		Return(1, 1, []string{"token-1"}, nil)
	deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"token-1"}).Return(nil)

	result, err := uc.Dispatch(ctx, &service.AssignmentEvent{
		Type:          constants.EventAssignmentCreated,
		UserID:        agent.String(),
		AssignmentIDs: []int64{4, 5},
		StoreTokens:   []string{"store_a", "store_b"},
		AssignedDate:  "2024-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.DispatchResult{Recipients: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, *result)
}

func TestNotificationService_Dispatch_VisitCompletedNotifiesAssigner(t *testing.T) {
	uc, deviceRepo, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()
	manager := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, manager).Return(devicesFor(manager, 1), nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0"}, mock.Anything, mock.Anything,
			mock.MatchedBy(func(data map[string]string) bool { return data["visit_id"] == "9" })).
		Return(1, 0, nil, nil)

	result, err := uc.Dispatch(ctx, &service.AssignmentEvent{
		Type:       constants.EventVisitCompleted,
		UserID:     uuid.NewString(),
		AssignedBy: manager.String(),
		VisitID:    9,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_Dispatch_BatchesOf500(t *testing.T) {
	uc, deviceRepo, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()
	agent := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, agent).Return(devicesFor(agent, 1200), nil)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).Times(2)
	notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 200 }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("firebase down"))

	result, err := uc.Dispatch(ctx, &service.AssignmentEvent{Type: constants.EventAssignmentCreated, UserID: agent.String()})
	require.NoError(t, err)
	assert.Equal(t, 1000, result.Sent)
	assert.Equal(t, 200, result.Failed)
}

func TestNotificationService_Dispatch_RepositoryFailureIsRetryable(t *testing.T) {
	uc, deviceRepo, _ := createTestNotificationService(t)
	agent := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, agent).Return(nil, errors.New("connection refused"))

	_, err := uc.Dispatch(context.Background(), &service.AssignmentEvent{Type: constants.EventAssignmentCreated, UserID: agent.String()})
	require.Error(t, err)
	assert.True(t, usecase.IsRetryable(err))
}

func TestNotificationService_Dispatch_SkipsWithoutRecipient(t *testing.T) {
	uc, _, _ := createTestNotificationService(t)

	result, err := uc.Dispatch(context.Background(), &service.AssignmentEvent{Type: constants.EventVisitCompleted, UserID: uuid.NewString()})
	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
}

func TestNotificationService_Dispatch_UnknownType(t *testing.T) {
	uc, _, _ := createTestNotificationService(t)

	_, err := uc.Dispatch(context.Background(), &service.AssignmentEvent{Type: "store.deleted"})
	assert.ErrorIs(t, err, ErrUnknownEventType)
	assert.False(t, usecase.IsRetryable(err))
}
