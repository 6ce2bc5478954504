package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/service"
	"github.com/inclusivo-app/campus-api/pkg/response"
)

type fixedNotificationSettings struct {
	settings models.NotificationSettings
}

func (f *fixedNotificationSettings) Notifications() models.NotificationSettings {
	return f.settings
}

func newNotificationRouter(t *testing.T, settings models.NotificationSettings) (*gin.Engine, *service.NotificationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := time.Now()
	seed := []models.Notification{
		{ID: "n1", Type: models.NotificationAcademic, Priority: models.PriorityMedium, Title: "Clase cancelada", Timestamp: base.Add(-2 * time.Hour)},
		{ID: "n2", Type: models.NotificationEmergency, Priority: models.PriorityCritical, Title: "Simulacro", Timestamp: base.Add(-1 * time.Hour)},
	}
	svc := service.NewNotificationService(seed, nil, nil)
	handler := NewNotificationHandler(svc, &fixedNotificationSettings{settings: settings})

	r := gin.New()
	r.GET("/notifications", handler.List)
	r.GET("/notifications/unread-count", handler.UnreadCount)
	r.POST("/notifications", handler.Create)
	r.POST("/notifications/:id/read", handler.MarkRead)
	r.POST("/notifications/read-all", handler.MarkAllRead)
	r.DELETE("/notifications/:id", handler.Delete)
	return r, svc
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	list, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	return list
}

func TestNotificationHandlerList(t *testing.T) {
	r, _ := newNotificationRouter(t, models.DefaultNotificationSettings())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestNotificationHandlerListAllowedFilter(t *testing.T) {
	settings := models.DefaultNotificationSettings()
	settings.Enabled = false
	r, _ := newNotificationRouter(t, settings)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications?allowed=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "emergency", first["type"])
}

func TestNotificationHandlerListUnknownPriority(t *testing.T) {
	r, _ := newNotificationRouter(t, models.DefaultNotificationSettings())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications?priority=extreme", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandlerCreate(t *testing.T) {
	r, svc := newNotificationRouter(t, models.DefaultNotificationSettings())

	body := bytes.NewBufferString(`{"type":"reminder","priority":"high","title":"Entrega","message":"Proyecto final mañana"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/notifications", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.All(), 3)
}

func TestNotificationHandlerCreateUnknownType(t *testing.T) {
	r, _ := newNotificationRouter(t, models.DefaultNotificationSettings())

	body := bytes.NewBufferString(`{"type":"gossip","priority":"high","title":"t","message":"m"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/notifications", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationHandlerReadFlow(t *testing.T) {
	r, svc := newNotificationRouter(t, models.DefaultNotificationSettings())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/notifications/n1/read", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, svc.UnreadCount())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/notifications/read-all", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, svc.UnreadCount())
}

func TestNotificationHandlerDelete(t *testing.T) {
	r, svc := newNotificationRouter(t, models.DefaultNotificationSettings())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/notifications/n2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, svc.All(), 1)
}
