package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storeradar/config"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/service"
	mockUC "storeradar/internal/mocks/usecase"
	"storeradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockNotificationUsecase) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.AssignmentEvent{
		Type:         constants.EventAssignmentCreated,
		UserID:       "0b5ad0f0-8a8b-4b36-9d7c-8d2b7c1f0a11",
		StoreTokens:  []string{"store_a"},
		AssignedDate: "2024-05-01",
		RequestID:    "req-from-event",
	}

	tests := []struct {
		name       string
		dispatch   func(*mockUC.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			dispatch: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().
					Dispatch(mock.Anything, mock.MatchedBy(func(e *service.AssignmentEvent) bool {
						return e.Type == constants.EventAssignmentCreated && e.AssignedDate == "2024-05-01"
					})).
					Return(&usecase.DispatchResult{Recipients: 1, Sent: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure",
			dispatch: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().Dispatch(mock.Anything, mock.Anything).
					Return(nil, usecase.NewRetryableError(errors.New("db down")))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acknowledged",
			dispatch: func(m *mockUC.MockNotificationUsecase) {
				m.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("unknown event type"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t, &config.Config{})
			tt.dispatch(notificationUC)

			rec := servePush(t, h, pushBody(t, event, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedData(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	rec := servePush(t, h, `{"message":{"data":"not base64!"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(t, h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("{"))+`"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesTokenWhenEnabled(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: true}}
	h, _ := newTestPushHandler(t, cfg)
	h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(t, h, pushBody(t, service.AssignmentEvent{Type: constants.EventVisitCompleted}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "req-from-attributes"}
	event := &service.AssignmentEvent{RequestID: "req-from-event"}

	assert.Equal(t, "req-from-attributes", h.extractRequestID(req.Context(), &msg, event))
	assert.Equal(t, "req-from-event", h.extractRequestID(req.Context(), &PubSubMessage{}, event))
	assert.NotEmpty(t, h.extractRequestID(req.Context(), &PubSubMessage{}, &service.AssignmentEvent{}))
}
