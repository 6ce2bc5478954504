package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// DocumentHandler manages scanned document endpoints.
type DocumentHandler struct {
	service *service.DocumentService
	metrics *service.MetricsService
}

// NewDocumentHandler constructs handler.
func NewDocumentHandler(svc *service.DocumentService, metrics *service.MetricsService) *DocumentHandler {
	return &DocumentHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List scanned documents, newest first
// @Tags Documents
// @Produce json
// @Param q query string false "Search title, content and tags"
// @Success 200 {object} response.Envelope
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		response.JSON(c, http.StatusOK, h.service.Search(q))
		return
	}
	response.JSON(c, http.StatusOK, h.service.All())
}

// Get godoc
// @Summary Fetch one scanned document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	doc := h.service.ByID(c.Param("id"))
	if doc == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "document not found"))
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Create godoc
// @Summary Store a scanned document
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body service.SaveDocumentRequest true "Document payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req service.SaveDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	doc, err := h.service.Save(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Update godoc
// @Summary Partially update a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param payload body service.UpdateDocumentRequest true "Patch payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documents/{id} [patch]
func (h *DocumentHandler) Update(c *gin.Context) {
	var req service.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid document payload"))
		return
	}
	doc := h.service.Update(c.Param("id"), req)
	if doc == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "document not found"))
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Delete godoc
// @Summary Delete a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 204
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	h.service.Delete(c.Param("id"))
	response.NoContent(c)
}

// Scan godoc
// @Summary Run text recognition on a captured image
// @Description Blocks until the scan finishes. Only one scan may run at a
// time; a concurrent request is rejected with 409.
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /documents/scan [post]
func (h *DocumentHandler) Scan(c *gin.Context) {
	result, err := h.service.Scan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordScan()
	response.JSON(c, http.StatusOK, result)
}

// ReadAloud godoc
// @Summary Speak a document's content
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /documents/{id}/read-aloud [post]
func (h *DocumentHandler) ReadAloud(c *gin.Context) {
	if err := h.service.ReadAloud(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"queued": true})
}
