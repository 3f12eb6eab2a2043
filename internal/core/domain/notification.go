package domain

import "time"

// NotificationStatus records the outcome of a delivery attempt.
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification is a queued message drained from the Redis list by the worker
// and persisted with its delivery status.
type Notification struct {
	NotificationID string             `json:"notificationID"` // Primary Key (UUID)
	Message        string             `json:"message"`
	Status         NotificationStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
}
