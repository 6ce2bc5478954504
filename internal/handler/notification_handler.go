package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// notificationSettingsSource exposes the current notification preferences
// so list output can honour the reader's filters.
type notificationSettingsSource interface {
	Notifications() models.NotificationSettings
}

// NotificationHandler manages notification endpoints.
type NotificationHandler struct {
	service  *service.NotificationService
	settings notificationSettingsSource
}

// NewNotificationHandler constructs handler.
func NewNotificationHandler(svc *service.NotificationService, settings notificationSettingsSource) *NotificationHandler {
	return &NotificationHandler{service: svc, settings: settings}
}

// List godoc
// @Summary List notifications, newest first
// @Tags Notifications
// @Produce json
// @Param priority query string false "Filter by priority"
// @Param type query string false "Filter by type"
// @Param unread query bool false "Only unread"
// @Param allowed query bool false "Apply the user's notification preferences"
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	if priority := c.Query("priority"); priority != "" {
		p := models.NotificationPriority(priority)
		if !models.ValidNotificationPriority(p) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown notification priority"))
			return
		}
		response.JSON(c, http.StatusOK, h.service.ByPriority(p))
		return
	}
	if nType := c.Query("type"); nType != "" {
		t := models.NotificationType(nType)
		if !models.ValidNotificationType(t) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown notification type"))
			return
		}
		response.JSON(c, http.StatusOK, h.service.ByType(t))
		return
	}
	if c.Query("unread") == "true" {
		response.JSON(c, http.StatusOK, h.service.Unread())
		return
	}
	if c.Query("allowed") == "true" {
		response.JSON(c, http.StatusOK, h.service.Allowed(h.settings.Notifications()))
		return
	}
	response.JSON(c, http.StatusOK, h.service.All())
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"count": h.service.UnreadCount()})
}

// Create godoc
// @Summary Add a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body service.AddNotificationRequest true "Notification payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req service.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notification payload"))
		return
	}
	notification, err := h.service.Add(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notification)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.service.MarkRead(c.Param("id"))
	response.NoContent(c)
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags Notifications
// @Produce json
// @Success 204
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	h.service.MarkAllRead()
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	h.service.Delete(c.Param("id"))
	response.NoContent(c)
}
