package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskNotificationDispatch delivers a storefront notification.
	TaskNotificationDispatch = "notification:dispatch"
	// TaskOrderTimeoutCancel cancels an unpaid order after its window.
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// NotificationDispatchPayload is the notification task payload.
type NotificationDispatchPayload struct {
	Scope    string `json:"scope"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// OrderTimeoutCancelPayload is the timeout-cancel task payload.
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// NewNotificationDispatchTask builds a notification task.
func NewNotificationDispatchTask(payload NotificationDispatchPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskNotificationDispatch, body), nil
}

// NewOrderTimeoutCancelTask builds a timeout-cancel task.
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
