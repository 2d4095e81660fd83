package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAssignmentEvent(t *testing.T) {
	event := &service.AssignmentEvent{
		Type:          constants.EventAssignmentCreated,
		RequestID:     "req-1",
		UserID:        "agent-1",
		AssignmentIDs: []int64{7, 8},
		StoreTokens:   []string{"store_a", "store_b"},
		AssignedDate:  "2025-03-01",
	}

	var received PushMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishAssignmentEvent(context.Background(), event))

	assert.Equal(t, constants.EventAssignmentCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "agent-1", received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AssignmentEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishAssignmentEvent(context.Background(), &service.AssignmentEvent{Type: constants.EventVisitCompleted})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(&service.AssignmentEvent{Type: constants.EventVisitCompleted, UserID: "u", VisitID: 42})
	assert.Equal(t, map[string]string{"event_type": constants.EventVisitCompleted, "user_id": "u", "visit_id": "42"}, attrs)
}
