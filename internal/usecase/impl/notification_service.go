package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// ErrUnknownEventType is returned for events the dispatcher does not handle.
var ErrUnknownEventType = errors.New("unknown event type")

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch sends the push notifications of one event. assignment.created goes
// to the assigned agent, visit.completed to whoever made the assignment.
func (s *notificationService) Dispatch(ctx context.Context, event *service.AssignmentEvent) (*usecase.DispatchResult, error) {
	recipient, title, body, err := notificationContent(event)
	if err != nil {
		return nil, err
	}

	result := &usecase.DispatchResult{}
	if recipient == "" {
		s.log(ctx).Info("Event has no recipient, skipping", slog.String("type", event.Type))

		return result, nil
	}

	userID, err := uuid.Parse(recipient)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %q", recipient)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to fetch devices"))
	}
	if len(devices) == 0 {
		s.log(ctx).Info("No active devices for recipient", slog.String("userID", recipient))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}
	result.Recipients = len(tokens)

	data := notificationData(event)

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			// Continue with the remaining batches.
			s.log(ctx).Error("Failed to send notification batch", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := s.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
			return result, usecase.NewRetryableError(errors.Wrap(err, "failed to deactivate invalid devices"))
		}
	}

	s.log(ctx).Info("Notifications dispatched",
		slog.String("type", event.Type),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

// notificationContent picks the recipient and the Persian title and body of an event.
func notificationContent(event *service.AssignmentEvent) (recipient, title, body string, err error) {
	switch event.Type {
	case constants.EventAssignmentCreated:
		return event.UserID,
			"مغازه‌های جدید برای بازدید",
			fmt.Sprintf("%d مغازه برای تاریخ %s به شما اختصاص داده شد", len(event.StoreTokens), event.AssignedDate),
			nil
	case constants.EventVisitCompleted:
		return event.AssignedBy,
			"بازدید انجام شد",
			fmt.Sprintf("بازدید از %s ثبت شد", strings.Join(event.StoreTokens, "، ")),
			nil
	default:
		return "", "", "", errors.Wrap(ErrUnknownEventType, event.Type)
	}
}

func notificationData(event *service.AssignmentEvent) map[string]string {
	ids := make([]string, 0, len(event.AssignmentIDs))
	for _, id := range event.AssignmentIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	data := map[string]string{
		"type":           event.Type,
		"assignment_ids": strings.Join(ids, ","),
		"store_tokens":   strings.Join(event.StoreTokens, ","),
		"assigned_date":  event.AssignedDate,
	}
	if event.VisitID != 0 {
		data["visit_id"] = strconv.FormatInt(event.VisitID, 10)
	}

	return data
}
