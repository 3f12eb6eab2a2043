package handlers

import (
	"net/http"

	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("/send", h.sendNotification)
		notifications.GET("", h.listNotifications)
	}
}

// sendNotification enqueues a message for asynchronous delivery. The reply
// confirms queueing only; delivery outcome lands in the notification store.
func (h *notificationHandler) sendNotification(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.notificationService.Enqueue(c.Request.Context(), req.Message); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusAccepted, "Notification queued", nil)
}

// listNotifications retrieves a paginated list of delivered notifications.
func (h *notificationHandler) listNotifications(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusOK, "Notifications retrieved", len(notifications), dto.ToListNotificationResponse(notifications))
}
