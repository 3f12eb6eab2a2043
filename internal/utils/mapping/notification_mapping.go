package mapping

import (
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		Message:        d.Message,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		Message:        m.Message,
		Status:         domain.NotificationStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
