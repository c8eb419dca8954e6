package transport

import (
	"net/http"
	"strconv"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	reminderService service.ReminderService
}

func NewNotificationHandler(reminderService service.ReminderService) *NotificationHandler {
	return &NotificationHandler{reminderService: reminderService}
}

// GetToday returns the day's unread notifications.
func (h *NotificationHandler) GetToday(c *gin.Context) {
	notifications, err := h.reminderService.TodayNotifications(c.Request.Context(), entity.Today())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.reminderService.MarkNotificationRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
