// Package notification delivers push notifications to agents' devices through FCM.
package notification

import (
	"context"
	"log/slog"

	"storeradar/config"
	"storeradar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// MaxBatchSize is the FCM multicast limit.
const MaxBatchSize = 500

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService builds the FCM client from the firebase config section.
// Without a credentials path, application default credentials are used.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)
	if fc := cfg.Firebase; fc != nil {
		if fc.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: fc.ProjectID}
		}
		if fc.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(fc.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token:        token,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatchNotification multicasts to at most MaxBatchSize tokens and reports
// the tokens FCM rejected as invalid or unregistered.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > MaxBatchSize {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: title, Body: body},
		Data:         data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	s.logger.DebugContext(ctx, "FCM multicast finished",
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
		slog.Int("invalid", len(invalidTokens)),
	)

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
