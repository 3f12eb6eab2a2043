package workers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
)

// SendFunc performs the actual delivery of one message. The default sender
// writes to the log stream; deployments can plug in email/SMS here.
type SendFunc func(ctx context.Context, message string) error

// NotificationWorker drains the Redis-backed queue and persists the outcome
// of every delivery attempt.
type NotificationWorker struct {
	notificationSvc portssvc.NotificationSvcFacade
	send            SendFunc
	logger          *slog.Logger
}

// NewNotificationWorker creates a worker over the notification service.
// A nil send falls back to log-stream delivery.
func NewNotificationWorker(notificationSvc portssvc.NotificationSvcFacade, send SendFunc, logger *slog.Logger) *NotificationWorker {
	w := &NotificationWorker{
		notificationSvc: notificationSvc,
		send:            send,
		logger:          logger,
	}
	if w.send == nil {
		w.send = func(_ context.Context, message string) error {
			logger.Info("Delivering notification", slog.String("message", message))
			return nil
		}
	}
	return w
}

// Run consumes messages until the context is cancelled. Each blocking pop
// times out periodically so cancellation is observed promptly.
func (w *NotificationWorker) Run(ctx context.Context) {
	w.logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Notification worker stopping")
			return
		default:
		}

		message, err := w.notificationSvc.PopNext(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			w.logger.Error("Failed to pop notification from queue", slog.String("error", err.Error()))
			continue
		}
		if message == "" {
			// Poll timeout, nothing queued.
			continue
		}

		w.deliver(ctx, message)
	}
}

// deliver attempts delivery and records the outcome. A message that fails to
// send is recorded as failed, never re-queued.
func (w *NotificationWorker) deliver(ctx context.Context, message string) {
	status := domain.NotificationSent
	if err := w.send(ctx, message); err != nil {
		w.logger.Error("Failed to deliver notification", slog.String("error", err.Error()))
		status = domain.NotificationFailed
	}

	if _, err := w.notificationSvc.RecordDelivery(ctx, message, status); err != nil {
		w.logger.Error("Failed to record notification delivery", slog.String("error", err.Error()))
	}
}
