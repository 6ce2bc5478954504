package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// SettingsHandler manages profile and preference endpoints.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Profile godoc
// @Summary Current student profile
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /profile [get]
func (h *SettingsHandler) Profile(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Profile())
}

// SaveProfile godoc
// @Summary Replace the student profile
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.UserProfile true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /profile [put]
func (h *SettingsHandler) SaveProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.SaveProfile(c.Request.Context(), profile))
}

// All godoc
// @Summary Every settings group in one payload
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) All(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"voice":         h.service.Voice(),
		"visual":        h.service.Visual(),
		"accessibility": h.service.Accessibility(),
		"notifications": h.service.Notifications(),
	})
}

// Presentation godoc
// @Summary Derived visual presentation state
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/presentation [get]
func (h *SettingsHandler) Presentation(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Presentation())
}

// PatchVoice godoc
// @Summary Update voice settings
// @Description Absent fields keep their value. Speed and pitch are clamped
// to their supported ranges.
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.VoiceSettingsPatch true "Voice patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/voice [patch]
func (h *SettingsHandler) PatchVoice(c *gin.Context) {
	var patch models.VoiceSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid voice settings payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.UpdateVoice(c.Request.Context(), patch))
}

// PatchVisual godoc
// @Summary Update visual settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.VisualSettingsPatch true "Visual patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/visual [patch]
func (h *SettingsHandler) PatchVisual(c *gin.Context) {
	var patch models.VisualSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid visual settings payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.UpdateVisual(c.Request.Context(), patch))
}

// PatchAccessibility godoc
// @Summary Update accessibility settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.AccessibilitySettingsPatch true "Accessibility patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/accessibility [patch]
func (h *SettingsHandler) PatchAccessibility(c *gin.Context) {
	var patch models.AccessibilitySettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid accessibility settings payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.UpdateAccessibility(c.Request.Context(), patch))
}

// PatchNotifications godoc
// @Summary Update notification settings
// @Description Emergency alerts cannot be disabled.
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.NotificationSettingsPatch true "Notification patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/notifications [patch]
func (h *SettingsHandler) PatchNotifications(c *gin.Context) {
	var patch models.NotificationSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notification settings payload"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.UpdateNotifications(c.Request.Context(), patch))
}
