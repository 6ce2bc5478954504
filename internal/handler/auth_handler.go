package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Authenticate the student
// @Description Validate the credential pair and issue an access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary End the session
// @Tags Authentication
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.NoContent(c)
}

// Status godoc
// @Summary Report the persisted session state
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": h.service.IsAuthenticated(c.Request.Context()),
	})
}
