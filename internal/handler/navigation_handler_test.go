package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

func newNavigationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	directory := []models.Location{
		{ID: "a101", Name: "Aula 101", Building: "Edificio A", Floor: 1, Room: "101", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true}},
		{ID: "biblio", Name: "Biblioteca Central", Building: "Edificio C", Floor: 1, Type: models.LocationLibrary,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true, HasBrailleSignage: true}},
	}
	handler := NewNavigationHandler(service.NewNavigationService(directory, nil), service.NewMetricsService())

	r := gin.New()
	r.GET("/locations", handler.List)
	r.GET("/locations/favorites", handler.Favorites)
	r.GET("/locations/:id", handler.Get)
	r.GET("/locations/:id/accessibility", handler.Accessibility)
	r.POST("/routes", handler.Route)
	return r
}

func TestNavigationHandlerListAndSearch(t *testing.T) {
	r := newNavigationRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/locations", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/locations?q=biblioteca", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)
}

func TestNavigationHandlerGetUnknown(t *testing.T) {
	r := newNavigationRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/locations/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNavigationHandlerAccessibility(t *testing.T) {
	r := newNavigationRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/locations/biblio/accessibility", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["accessible"])
}

func TestNavigationHandlerRoute(t *testing.T) {
	r := newNavigationRouter(t)

	body := bytes.NewBufferString(`{"from":"a101","to":"biblio"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/routes", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	route, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	steps, ok := route["steps"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, steps)
}

func TestNavigationHandlerRouteUnknownEndpoint(t *testing.T) {
	r := newNavigationRouter(t)

	body := bytes.NewBufferString(`{"from":"a101","to":"nope"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/routes", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNavigationHandlerRouteMissingBody(t *testing.T) {
	r := newNavigationRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/routes", bytes.NewBufferString(`{"from":"a101"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
