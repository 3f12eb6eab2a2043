package dto

import (
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// SendNotificationRequest defines the data needed to enqueue a notification.
type SendNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// NotificationResponse defines the data returned for a delivered notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Message:        n.Message,
		Status:         string(n.Status),
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationResponse converts a slice of domain.Notification to a slice of NotificationResponse DTOs
func ToListNotificationResponse(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return res
}
