package service

import (
	"strings"

	"github.com/glowderma/glowderma/internal/constants"
	"github.com/glowderma/glowderma/internal/logger"
	"github.com/glowderma/glowderma/internal/queue"
)

// NotificationService is a fire-and-forget sink for user- and operator-facing events.
// It logs every event and, when the queue is enabled, hands it to the worker
// for out-of-band delivery. Failures are swallowed: notifying must never
// break the operation that triggered it.
type NotificationService struct {
	queueClient *queue.Client
}

// NewNotificationService creates the notification sink.
func NewNotificationService(queueClient *queue.Client) *NotificationService {
	return &NotificationService{queueClient: queueClient}
}

// Notify records an event with the given severity.
func (s *NotificationService) Notify(scope, message, severity string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	switch severity {
	case constants.NotifySeverityError:
		logger.Errorw("notification", "scope", scope, "message", message)
	case constants.NotifySeverityWarning:
		logger.Warnw("notification", "scope", scope, "message", message)
	default:
		severity = constants.NotifySeverityInfo
		logger.Infow("notification", "scope", scope, "message", message)
	}

	if s == nil || s.queueClient == nil {
		return
	}
	if err := s.queueClient.EnqueueNotificationDispatch(queue.NotificationDispatchPayload{
		Scope:    scope,
		Message:  message,
		Severity: severity,
	}); err != nil {
		logger.Warnw("notification enqueue failed", "scope", scope, "error", err)
	}
}

// Info records an informational event.
func (s *NotificationService) Info(scope, message string) {
	s.Notify(scope, message, constants.NotifySeverityInfo)
}

// Warn records a warning event.
func (s *NotificationService) Warn(scope, message string) {
	s.Notify(scope, message, constants.NotifySeverityWarning)
}

// Error records an error event.
func (s *NotificationService) Error(scope, message string) {
	s.Notify(scope, message, constants.NotifySeverityError)
}
