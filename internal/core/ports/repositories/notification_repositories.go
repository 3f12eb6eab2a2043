package repositories

import (
	"context"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// NotificationWriter defines write operations for delivered notification data
type NotificationWriter interface {
	// SaveNotification persists a notification with its delivery outcome.
	SaveNotification(ctx context.Context, notification domain.Notification) error
}

// NotificationReader defines read operations for delivered notification data
type NotificationReader interface {
	// FindNotifications retrieves a paginated list of notifications, newest first.
	FindNotifications(ctx context.Context, limit int, offset int) ([]domain.Notification, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}

// NotificationQueue is the outbound port for the Redis-backed delivery queue.
type NotificationQueue interface {
	// Publish enqueues a message for asynchronous delivery.
	Publish(ctx context.Context, message string) error

	// PopBlocking removes and returns the oldest queued message, blocking
	// until one is available or the timeout elapses. A timeout with no
	// message returns an empty string and a nil error.
	PopBlocking(ctx context.Context, timeout time.Duration) (string, error)
}
