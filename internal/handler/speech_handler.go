package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// SpeakRequest queues one utterance.
type SpeakRequest struct {
	Text      string `json:"text" binding:"required"`
	Interrupt bool   `json:"interrupt"`
}

// SpeechHandler manages voice feedback endpoints.
type SpeechHandler struct {
	service *service.SpeechService
	metrics *service.MetricsService
}

// NewSpeechHandler constructs handler.
func NewSpeechHandler(svc *service.SpeechService, metrics *service.MetricsService) *SpeechHandler {
	return &SpeechHandler{service: svc, metrics: metrics}
}

// Speak godoc
// @Summary Read text aloud
// @Description Queue an utterance. With interrupt set, everything queued
// or playing is cancelled first.
// @Tags Speech
// @Accept json
// @Produce json
// @Param payload body SpeakRequest true "Utterance"
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /speech [post]
func (h *SpeechHandler) Speak(c *gin.Context) {
	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid speech payload"))
		return
	}
	if !h.service.Available() {
		response.Error(c, appErrors.ErrSpeechUnavailable)
		return
	}

	h.service.Speak(req.Text, req.Interrupt)
	h.metrics.RecordUtterance()
	response.JSON(c, http.StatusAccepted, gin.H{"queued": true})
}

// Stop godoc
// @Summary Cancel all speech output
// @Tags Speech
// @Produce json
// @Success 204
// @Router /speech/stop [post]
func (h *SpeechHandler) Stop(c *gin.Context) {
	h.service.Stop()
	response.NoContent(c)
}

// Status godoc
// @Summary Speech engine state
// @Tags Speech
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /speech/status [get]
func (h *SpeechHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"available": h.service.Available(),
		"speaking":  h.service.IsSpeaking(),
	})
}
