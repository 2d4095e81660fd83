package impl

import (
	"context"
	"testing"

	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	mockRepo "storeradar/internal/mocks/repository"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "Android",
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, "android", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_KeepsStoredID(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	storedID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(_ context.Context, device *entity.UserDevice) {
			device.ID = storedID
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, storedID, device.ID)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.Anything).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to upsert device")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(devices, nil)

	result, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name    string
		setup   func(repo *mockRepo.MockDeviceRepository)
		wantErr error
	}{
		{
			name: "owner deactivates",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				repo.EXPECT().DeactivateDevice(mock.Anything, deviceID).Return(nil)
			},
		},
		{
			name: "unknown device",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "device of another user",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx.deviceRepo)

			err := fx.service.DeactivateDevice(context.Background(), userID, deviceID)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
