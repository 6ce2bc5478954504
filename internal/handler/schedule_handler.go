package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// ScheduleHandler manages schedule endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
	exports *service.ExportService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.ScheduleService, exports *service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{service: svc, exports: exports}
}

// Weekly godoc
// @Summary Full weekly schedule bucketed by day
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Weekly(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Weekly())
}

// Today godoc
// @Summary Today's classes sorted by start time
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/today [get]
func (h *ScheduleHandler) Today(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Today())
}

// Next godoc
// @Summary Next upcoming class
// @Description The soonest class after now, searching today then the
// following six days. Minutes until start ride along in meta and can be
// negative when the class is already in progress.
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/next [get]
func (h *ScheduleHandler) Next(c *gin.Context) {
	next := h.service.Next()
	if next == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no upcoming class"))
		return
	}
	meta := map[string]interface{}{}
	if minutes := h.service.MinutesUntilNext(); minutes != nil {
		meta["minutes_until_start"] = *minutes
	}
	response.JSON(c, http.StatusOK, next, meta)
}

// ByDay godoc
// @Summary Classes for a single weekday
// @Tags Schedule
// @Produce json
// @Param day path string true "Weekday name"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule/days/{day} [get]
func (h *ScheduleHandler) ByDay(c *gin.Context) {
	day, ok := models.ParseDay(c.Param("day"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown weekday"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.ByDay(day))
}

// Export godoc
// @Summary Export the weekly schedule
// @Tags Schedule
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err := h.exports.ScheduleCSV()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "horario.csv"))
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := h.exports.SchedulePDF()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "horario.pdf"))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported export format"))
	}
}
