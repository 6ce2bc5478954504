package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/repository"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// settingsStore abstracts the persisted settings store.
type settingsStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	GetFlag(ctx context.Context, key string) (bool, error)
	SetFlag(ctx context.Context, key string, value bool) error
}

// SettingsGroup names one of the independently persisted preference
// categories in change events.
type SettingsGroup string

const (
	GroupProfile       SettingsGroup = "profile"
	GroupVoice         SettingsGroup = "voice"
	GroupVisual        SettingsGroup = "visual"
	GroupAccessibility SettingsGroup = "accessibility"
	GroupNotifications SettingsGroup = "notifications"
)

// ChangeEvent is broadcast to subscribers after a group commits.
type ChangeEvent struct {
	Group SettingsGroup
	Value interface{}
}

const subscriberBuffer = 8

// SettingsService is the process-wide accessibility state store. It owns
// the current profile and the four settings groups, mediates all reads and
// writes against the persisted store, and broadcasts typed change events.
// Updates merge a partial patch into the current group, persist
// synchronously, then notify; there is no debounce or batching. Visual
// updates additionally recompute the shared presentation flags.
type SettingsService struct {
	repo   settingsStore
	logger *zap.Logger

	mu            sync.RWMutex
	profile       models.UserProfile
	voice         models.VoiceSettings
	visual        models.VisualSettings
	accessibility models.AccessibilitySettings
	notifications models.NotificationSettings
	presentation  models.PresentationState

	subMu       sync.Mutex
	subscribers []chan ChangeEvent
}

// NewSettingsService constructs the store with documented defaults. Call
// Load before serving to hydrate from persistence.
func NewSettingsService(repo settingsStore, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SettingsService{
		repo:          repo,
		logger:        logger,
		profile:       models.DefaultProfile(),
		voice:         models.DefaultVoiceSettings(),
		visual:        models.DefaultVisualSettings(),
		accessibility: models.DefaultAccessibilitySettings(),
		notifications: models.DefaultNotificationSettings(),
	}
	s.presentation = models.PresentationFromVisual(s.visual)
	return s
}

// Load hydrates every group from the persisted store, once, at startup.
// Missing keys keep their defaults; corrupt values are discarded, reset to
// the default and rewritten. A missing profile is created with defaults
// and persisted (first run).
func (s *SettingsService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile models.UserProfile
	switch err := s.repo.Get(ctx, repository.KeyProfile, &profile); {
	case err == nil:
		s.profile = profile
	case errors.Is(err, appErrors.ErrSettingsMiss):
		if err := s.repo.Set(ctx, repository.KeyProfile, s.profile); err != nil {
			s.logger.Warn("persist first-run profile failed", zap.Error(err))
		}
	default:
		s.recover(ctx, repository.KeyProfile, err, s.profile)
	}

	s.loadGroup(ctx, repository.KeyVoiceSettings, &s.voice, models.DefaultVoiceSettings())
	s.loadGroup(ctx, repository.KeyVisualSettings, &s.visual, models.DefaultVisualSettings())
	s.loadGroup(ctx, repository.KeyAccessibilitySettings, &s.accessibility, models.DefaultAccessibilitySettings())
	s.loadGroup(ctx, repository.KeyNotificationSettings, &s.notifications, models.DefaultNotificationSettings())

	// Emergency alerts survive whatever was persisted.
	s.notifications.Emergency = true
	s.presentation = models.PresentationFromVisual(s.visual)
}

func (s *SettingsService) loadGroup(ctx context.Context, key string, dest interface{}, fallback interface{}) {
	err := s.repo.Get(ctx, key, dest)
	if err == nil || errors.Is(err, appErrors.ErrSettingsMiss) {
		return
	}
	s.recover(ctx, key, err, fallback)
	switch d := dest.(type) {
	case *models.VoiceSettings:
		*d = fallback.(models.VoiceSettings)
	case *models.VisualSettings:
		*d = fallback.(models.VisualSettings)
	case *models.AccessibilitySettings:
		*d = fallback.(models.AccessibilitySettings)
	case *models.NotificationSettings:
		*d = fallback.(models.NotificationSettings)
	}
}

// recover handles a corrupt or unreadable persisted value: keep the
// default in memory and rewrite the key so the next run is clean.
func (s *SettingsService) recover(ctx context.Context, key string, cause error, fallback interface{}) {
	s.logger.Warn("persisted settings unreadable, resetting to default", zap.String("key", key), zap.Error(cause))
	if err := s.repo.Set(ctx, key, fallback); err != nil {
		s.logger.Warn("reset persisted settings failed", zap.String("key", key), zap.Error(err))
	}
}

// Profile returns the current user profile.
func (s *SettingsService) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SaveProfile replaces and persists the profile.
func (s *SettingsService) SaveProfile(ctx context.Context, profile models.UserProfile) models.UserProfile {
	s.mu.Lock()
	if profile.ID == "" {
		profile.ID = s.profile.ID
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = s.profile.CreatedAt
	}
	s.profile = profile
	s.mu.Unlock()

	s.persist(ctx, repository.KeyProfile, profile)
	s.broadcast(ChangeEvent{Group: GroupProfile, Value: profile})
	return profile
}

// Voice returns the current voice settings.
func (s *SettingsService) Voice() models.VoiceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.voice
}

// Visual returns the current visual settings.
func (s *SettingsService) Visual() models.VisualSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visual
}

// Accessibility returns the current accessibility settings.
func (s *SettingsService) Accessibility() models.AccessibilitySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessibility
}

// Notifications returns the current notification settings.
func (s *SettingsService) Notifications() models.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications
}

// Presentation returns the shared presentation flags derived from the
// visual settings.
func (s *SettingsService) Presentation() models.PresentationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presentation
}

// UpdateVoice merges the patch, persists and broadcasts.
func (s *SettingsService) UpdateVoice(ctx context.Context, patch models.VoiceSettingsPatch) models.VoiceSettings {
	s.mu.Lock()
	s.voice = s.voice.Merge(patch)
	updated := s.voice
	s.mu.Unlock()

	s.persist(ctx, repository.KeyVoiceSettings, updated)
	s.broadcast(ChangeEvent{Group: GroupVoice, Value: updated})
	return updated
}

// UpdateVisual merges the patch, persists, recomputes the presentation
// flags and broadcasts.
func (s *SettingsService) UpdateVisual(ctx context.Context, patch models.VisualSettingsPatch) models.VisualSettings {
	s.mu.Lock()
	s.visual = s.visual.Merge(patch)
	s.presentation = models.PresentationFromVisual(s.visual)
	updated := s.visual
	s.mu.Unlock()

	s.persist(ctx, repository.KeyVisualSettings, updated)
	s.broadcast(ChangeEvent{Group: GroupVisual, Value: updated})
	return updated
}

// UpdateAccessibility merges the patch, persists and broadcasts.
func (s *SettingsService) UpdateAccessibility(ctx context.Context, patch models.AccessibilitySettingsPatch) models.AccessibilitySettings {
	s.mu.Lock()
	s.accessibility = s.accessibility.Merge(patch)
	updated := s.accessibility
	s.mu.Unlock()

	s.persist(ctx, repository.KeyAccessibilitySettings, updated)
	s.broadcast(ChangeEvent{Group: GroupAccessibility, Value: updated})
	return updated
}

// UpdateNotifications merges the patch, persists and broadcasts. The
// emergency category stays on no matter what the patch says.
func (s *SettingsService) UpdateNotifications(ctx context.Context, patch models.NotificationSettingsPatch) models.NotificationSettings {
	s.mu.Lock()
	s.notifications = s.notifications.Merge(patch)
	updated := s.notifications
	s.mu.Unlock()

	s.persist(ctx, repository.KeyNotificationSettings, updated)
	s.broadcast(ChangeEvent{Group: GroupNotifications, Value: updated})
	return updated
}

// AuthFlag reads the persisted authentication flag.
func (s *SettingsService) AuthFlag(ctx context.Context) bool {
	value, err := s.repo.GetFlag(ctx, repository.KeyAuthFlag)
	if err != nil {
		if !errors.Is(err, appErrors.ErrSettingsMiss) {
			s.logger.Warn("read auth flag failed", zap.Error(err))
		}
		return false
	}
	return value
}

// SetAuthFlag persists the authentication flag.
func (s *SettingsService) SetAuthFlag(ctx context.Context, value bool) {
	if err := s.repo.SetFlag(ctx, repository.KeyAuthFlag, value); err != nil {
		s.logger.Warn("persist auth flag failed", zap.Error(err))
	}
}

// Subscribe registers an observer. The returned channel is buffered;
// events are dropped, not blocked on, when a subscriber falls behind.
func (s *SettingsService) Subscribe() <-chan ChangeEvent {
	ch := make(chan ChangeEvent, subscriberBuffer)
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subMu.Unlock()
	return ch
}

// Unsubscribe removes an observer and closes its channel.
func (s *SettingsService) Unsubscribe(ch <-chan ChangeEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

func (s *SettingsService) persist(ctx context.Context, key string, value interface{}) {
	// Persistence is best effort: preference state must survive a flaky
	// store the way the app survives a missing one.
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.logger.Warn("persist settings failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *SettingsService) broadcast(event ChangeEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, sub := range s.subscribers {
		select {
		case sub <- event:
		default:
			s.logger.Debug("settings subscriber lagging, event dropped", zap.String("group", string(event.Group)))
		}
	}
}
