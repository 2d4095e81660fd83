package service

import (
	"context"
)

// AssignmentEvent is published when stores are assigned to an agent or when an
// agent completes a visit; the visit worker turns it into push notifications.
type AssignmentEvent struct {
	Type          string   `json:"type"`
	RequestID     string   `json:"request_id,omitempty"` // For distributed tracing
	UserID        string   `json:"user_id"`              // Agent the assignments belong to
	AssignedBy    string   `json:"assigned_by,omitempty"`
	AssignmentIDs []int64  `json:"assignment_ids"`
	StoreTokens   []string `json:"store_tokens"`
	AssignedDate  string   `json:"assigned_date,omitempty"` // YYYY-MM-DD
	VisitID       int64    `json:"visit_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAssignmentEvent publishes an assignment or visit event for async processing
	PublishAssignmentEvent(ctx context.Context, event *AssignmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
