package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// VibrateRequest triggers either a named feedback pattern or a raw
// millisecond pattern.
type VibrateRequest struct {
	Name    string `json:"name"`
	Pattern []int  `json:"pattern"`
}

// HapticsHandler manages vibration feedback endpoints.
type HapticsHandler struct {
	service *service.HapticsService
}

// NewHapticsHandler constructs handler.
func NewHapticsHandler(svc *service.HapticsService) *HapticsHandler {
	return &HapticsHandler{service: svc}
}

// Vibrate godoc
// @Summary Trigger vibration feedback
// @Description Accepts a named pattern (tap, success, error) or a raw
// on/off millisecond pattern.
// @Tags Haptics
// @Accept json
// @Produce json
// @Param payload body VibrateRequest true "Pattern"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /haptics [post]
func (h *HapticsHandler) Vibrate(c *gin.Context) {
	var req VibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid haptics payload"))
		return
	}

	switch req.Name {
	case "tap":
		h.service.Tap()
	case "success":
		h.service.Success()
	case "error":
		h.service.Error()
	case "":
		if len(req.Pattern) == 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "name or pattern required"))
			return
		}
		h.service.Vibrate(req.Pattern)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown pattern name"))
		return
	}

	response.JSON(c, http.StatusAccepted, gin.H{"triggered": true})
}
