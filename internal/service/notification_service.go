package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// AddNotificationRequest is the payload for adding a notification; the id
// is assigned by the store.
type AddNotificationRequest struct {
	Type     string `json:"type" validate:"required"`
	Priority string `json:"priority" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// NotificationService owns the in-memory notification collection. The
// collection is insertion-ordered internally but always read out sorted by
// timestamp descending. A mutex guards it because gin serves requests
// concurrently.
type NotificationService struct {
	mu            sync.Mutex
	notifications []models.Notification
	now           func() time.Time
	logger        *zap.Logger
}

// NewNotificationService seeds the store with the provided collection.
func NewNotificationService(seed []models.Notification, now func() time.Time, logger *zap.Logger) *NotificationService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	notifications := make([]models.Notification, len(seed))
	copy(notifications, seed)
	return &NotificationService{notifications: notifications, now: now, logger: logger}
}

// All returns every notification, newest first.
func (s *NotificationService) All() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Unread returns the unread subset, newest first.
func (s *NotificationService) Unread() []models.Notification {
	return s.filter(func(n models.Notification) bool { return !n.Read })
}

// UnreadCount counts unread notifications.
func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// ByPriority returns notifications of one priority, newest first.
func (s *NotificationService) ByPriority(p models.NotificationPriority) []models.Notification {
	return s.filter(func(n models.Notification) bool { return n.Priority == p })
}

// ByType returns notifications of one type, newest first.
func (s *NotificationService) ByType(t models.NotificationType) []models.Notification {
	return s.filter(func(n models.Notification) bool { return n.Type == t })
}

// Allowed returns the notifications the given settings let through.
// Emergency alerts always pass; when notifications are globally disabled
// nothing else does.
func (s *NotificationService) Allowed(settings models.NotificationSettings) []models.Notification {
	return s.filter(func(n models.Notification) bool {
		if n.Type == models.NotificationEmergency {
			return true
		}
		if !settings.Enabled {
			return false
		}
		switch n.Type {
		case models.NotificationAcademic, models.NotificationReminder, models.NotificationMaterial:
			return settings.Academic
		case models.NotificationGrade:
			return settings.Grades
		}
		return true
	})
}

// MarkRead flips the read flag; no-op when the id is absent.
func (s *NotificationService) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead marks everything read. Idempotent.
func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Delete removes a notification; no-op when the id is absent.
func (s *NotificationService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Add assigns a fresh id and timestamp and prepends the notification so it
// sorts first among equal timestamps.
func (s *NotificationService) Add(req AddNotificationRequest) (*models.Notification, error) {
	nType := models.NotificationType(req.Type)
	priority := models.NotificationPriority(req.Priority)
	if !models.ValidNotificationType(nType) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown notification type")
	}
	if !models.ValidNotificationPriority(priority) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown notification priority")
	}

	notification := models.Notification{
		ID:        uuid.NewString(),
		Type:      nType,
		Priority:  priority,
		Title:     req.Title,
		Message:   req.Message,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.notifications = append([]models.Notification{notification}, s.notifications...)
	s.mu.Unlock()

	return &notification, nil
}

func (s *NotificationService) filter(keep func(models.Notification) bool) []models.Notification {
	var out []models.Notification
	for _, n := range s.All() {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
