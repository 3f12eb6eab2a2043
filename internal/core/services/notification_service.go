package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/middleware"
	"github.com/google/uuid"
)

// defaultPopTimeout is how long a single queue poll blocks before returning
// empty, keeping the worker responsive to shutdown.
const defaultPopTimeout = 5 * time.Second

type notificationService struct {
	queue            portsrepo.NotificationQueue
	notificationRepo portsrepo.NotificationRepositoryFacade
	popTimeout       time.Duration
}

// NewNotificationService creates the notification service over the Redis
// queue and the delivery-outcome store.
func NewNotificationService(queue portsrepo.NotificationQueue, notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		queue:            queue,
		notificationRepo: notificationRepo,
		popTimeout:       defaultPopTimeout,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Enqueue pushes a message onto the delivery queue.
func (s *notificationService) Enqueue(ctx context.Context, message string) error {
	if err := s.queue.Publish(ctx, message); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to publish notification", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// PopNext blocks for up to the poll timeout and returns the next queued
// message, or an empty string when none arrived.
func (s *notificationService) PopNext(ctx context.Context) (string, error) {
	return s.queue.PopBlocking(ctx, s.popTimeout)
}

// RecordDelivery persists the outcome of a delivery attempt.
func (s *notificationService) RecordDelivery(ctx context.Context, message string, status domain.NotificationStatus) (*domain.Notification, error) {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Message:        message,
		Status:         status,
		CreatedAt:      time.Now(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to save notification outcome", slog.String("error", err.Error()), slog.String("notification_id", notification.NotificationID))
		return nil, err
	}

	return &notification, nil
}

// ListNotifications retrieves a paginated list of notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotifications(ctx, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list notifications", slog.String("error", err.Error()))
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}
