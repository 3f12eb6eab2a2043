package models

import "time"

// Notification represents a drained queue message as stored in the database.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	Message        string    `db:"message"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}
