package services

import (
	"context"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// NotificationPublisherSvc defines the enqueue side of notification delivery
type NotificationPublisherSvc interface {
	// Enqueue pushes a message onto the delivery queue. Failures are the
	// caller's to decide on; state-changing services treat them as best-effort.
	Enqueue(ctx context.Context, message string) error
}

// NotificationConsumerSvc defines the drain side of notification delivery,
// used by the background worker.
type NotificationConsumerSvc interface {
	// PopNext blocks for up to the adapter's poll timeout and returns the
	// next queued message, or an empty string when none arrived.
	PopNext(ctx context.Context) (string, error)

	// RecordDelivery persists the outcome of a delivery attempt.
	RecordDelivery(ctx context.Context, message string, status domain.NotificationStatus) (*domain.Notification, error)
}

// NotificationReaderSvc defines read operations for delivered notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves a paginated list of notifications, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]domain.Notification, error)
}

// NotificationSvcFacade combines all notification service interfaces
type NotificationSvcFacade interface {
	NotificationPublisherSvc
	NotificationConsumerSvc
	NotificationReaderSvc
}
