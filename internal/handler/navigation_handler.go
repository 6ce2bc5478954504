package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// RouteRequest asks for walking directions between two locations.
type RouteRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// NavigationHandler manages campus directory and routing endpoints.
type NavigationHandler struct {
	service *service.NavigationService
	metrics *service.MetricsService
}

// NewNavigationHandler constructs handler.
func NewNavigationHandler(svc *service.NavigationService, metrics *service.MetricsService) *NavigationHandler {
	return &NavigationHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List campus locations
// @Tags Navigation
// @Produce json
// @Param q query string false "Search by name, building or type"
// @Success 200 {object} response.Envelope
// @Router /locations [get]
func (h *NavigationHandler) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		response.JSON(c, http.StatusOK, h.service.Search(q))
		return
	}
	response.JSON(c, http.StatusOK, h.service.All())
}

// Favorites godoc
// @Summary Frequently visited locations
// @Tags Navigation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /locations/favorites [get]
func (h *NavigationHandler) Favorites(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Favorites())
}

// Get godoc
// @Summary Fetch one location
// @Tags Navigation
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /locations/{id} [get]
func (h *NavigationHandler) Get(c *gin.Context) {
	loc := h.service.ByID(c.Param("id"))
	if loc == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "location not found"))
		return
	}
	response.JSON(c, http.StatusOK, loc)
}

// Accessibility godoc
// @Summary Wheelchair accessibility of one location
// @Tags Navigation
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /locations/{id}/accessibility [get]
func (h *NavigationHandler) Accessibility(c *gin.Context) {
	loc := h.service.ByID(c.Param("id"))
	if loc == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "location not found"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"id":         loc.ID,
		"accessible": loc.Accessibility.WheelchairAccessible,
		"details":    loc.Accessibility,
	})
}

// Route godoc
// @Summary Walking directions between two locations
// @Tags Navigation
// @Accept json
// @Produce json
// @Param payload body RouteRequest true "Route endpoints"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /routes [post]
func (h *NavigationHandler) Route(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid route payload"))
		return
	}

	route := h.service.Route(req.From, req.To)
	if route == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "unknown origin or destination"))
		return
	}
	h.metrics.RecordRoute()
	response.JSON(c, http.StatusOK, route)
}
