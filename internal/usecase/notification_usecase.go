package usecase

import (
	"context"
	"fmt"

	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
)

// DispatchResult summarizes the push notifications sent for one event.
type DispatchResult struct {
	Recipients    int
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotificationUsecase turns assignment events into push notifications.
type NotificationUsecase interface {
	// Dispatch notifies the devices concerned by event. Failures that a
	// redelivery could fix are reported as retryable.
	Dispatch(ctx context.Context, event *service.AssignmentEvent) (*DispatchResult, error)
}

// RetryableError marks a failure that should trigger a redelivery.
type RetryableError struct {
	err error
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// IsRetryable reports whether err, or any error it wraps, is retryable.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
