package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/repository"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// fakeSettingsStore keeps persisted values as JSON in memory and can be
// poisoned with corrupt payloads per key.
type fakeSettingsStore struct {
	values  map[string][]byte
	flags   map[string]bool
	corrupt map[string]bool
	sets    int
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		values:  map[string][]byte{},
		flags:   map[string]bool{},
		corrupt: map[string]bool{},
	}
}

func (f *fakeSettingsStore) Get(_ context.Context, key string, dest interface{}) error {
	if f.corrupt[key] {
		return appErrors.Clone(appErrors.ErrSettingsCorrupt, "corrupt value for "+key)
	}
	raw, ok := f.values[key]
	if !ok {
		return appErrors.ErrSettingsMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeSettingsStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = raw
	f.corrupt[key] = false
	f.sets++
	return nil
}

func (f *fakeSettingsStore) GetFlag(_ context.Context, key string) (bool, error) {
	value, ok := f.flags[key]
	if !ok {
		return false, appErrors.ErrSettingsMiss
	}
	return value, nil
}

func (f *fakeSettingsStore) SetFlag(_ context.Context, key string, value bool) error {
	f.flags[key] = value
	return nil
}

func TestSettingsLoadDefaultsOnEmptyStore(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store, nil)
	svc.Load(context.Background())

	assert.Equal(t, models.DefaultVoiceSettings(), svc.Voice())
	assert.Equal(t, models.DefaultVisualSettings(), svc.Visual())
	assert.Equal(t, models.DefaultAccessibilitySettings(), svc.Accessibility())
	assert.Equal(t, models.DefaultNotificationSettings(), svc.Notifications())

	// First run persists the default profile.
	_, ok := store.values[repository.KeyProfile]
	assert.True(t, ok)
	assert.Equal(t, "Juan Pérez", svc.Profile().Name)
}

func TestSettingsLoadHydratesPersistedValues(t *testing.T) {
	store := newFakeSettingsStore()
	require.NoError(t, store.Set(context.Background(), repository.KeyVoiceSettings, models.VoiceSettings{Speed: 1.5, Pitch: 0.8, AutoRead: false}))

	svc := NewSettingsService(store, nil)
	svc.Load(context.Background())

	voice := svc.Voice()
	assert.Equal(t, 1.5, voice.Speed)
	assert.Equal(t, 0.8, voice.Pitch)
	assert.False(t, voice.AutoRead)
}

func TestSettingsLoadResetsCorruptValue(t *testing.T) {
	store := newFakeSettingsStore()
	store.corrupt[repository.KeyVisualSettings] = true

	svc := NewSettingsService(store, nil)
	svc.Load(context.Background())

	assert.Equal(t, models.DefaultVisualSettings(), svc.Visual())

	// The key was rewritten with the default so the next run is clean.
	var persisted models.VisualSettings
	require.NoError(t, store.Get(context.Background(), repository.KeyVisualSettings, &persisted))
	assert.Equal(t, models.DefaultVisualSettings(), persisted)
}

func TestSettingsUpdateVoiceClamps(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store, nil)

	speed := 5.0
	pitch := 0.1
	updated := svc.UpdateVoice(context.Background(), models.VoiceSettingsPatch{Speed: &speed, Pitch: &pitch})

	assert.Equal(t, 2.0, updated.Speed)
	assert.Equal(t, 0.5, updated.Pitch)
	assert.True(t, updated.AutoRead)
}

func TestSettingsUpdateVisualRecomputesPresentation(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)

	contrast := true
	fontSize := 2.0
	animations := true
	svc.UpdateVisual(context.Background(), models.VisualSettingsPatch{
		HighContrast:      &contrast,
		FontSize:          &fontSize,
		AnimationsEnabled: &animations,
	})

	presentation := svc.Presentation()
	assert.True(t, presentation.HighContrast)
	assert.False(t, presentation.ReducedMotion)
	assert.Equal(t, 2.0, presentation.FontScale)
}

func TestSettingsUpdateAccessibilityIgnoresUnknownMode(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)

	mode := models.InteractionMode("telepathy")
	intensity := 9
	updated := svc.UpdateAccessibility(context.Background(), models.AccessibilitySettingsPatch{
		InteractionMode:    &mode,
		VibrationIntensity: &intensity,
	})

	assert.Equal(t, models.InteractionBoth, updated.InteractionMode)
	assert.Equal(t, 3, updated.VibrationIntensity)
}

func TestSettingsEmergencyCannotBeDisabled(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)

	off := false
	updated := svc.UpdateNotifications(context.Background(), models.NotificationSettingsPatch{Enabled: &off, Academic: &off, Grades: &off})

	assert.False(t, updated.Enabled)
	assert.False(t, updated.Academic)
	assert.False(t, updated.Grades)
	assert.True(t, updated.Emergency)
}

func TestSettingsSubscribeReceivesChanges(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)

	ch := svc.Subscribe()
	defer svc.Unsubscribe(ch)

	speed := 1.2
	svc.UpdateVoice(context.Background(), models.VoiceSettingsPatch{Speed: &speed})

	select {
	case event := <-ch:
		assert.Equal(t, GroupVoice, event.Group)
		voice, ok := event.Value.(models.VoiceSettings)
		require.True(t, ok)
		assert.Equal(t, 1.2, voice.Speed)
	default:
		t.Fatal("expected a change event")
	}
}

func TestSettingsAuthFlagRoundTrip(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)
	ctx := context.Background()

	assert.False(t, svc.AuthFlag(ctx))
	svc.SetAuthFlag(ctx, true)
	assert.True(t, svc.AuthFlag(ctx))
	svc.SetAuthFlag(ctx, false)
	assert.False(t, svc.AuthFlag(ctx))
}

func TestSettingsSaveProfileKeepsIdentity(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore(), nil)

	original := svc.Profile()
	saved := svc.SaveProfile(context.Background(), models.UserProfile{Name: "María López", Email: "maria.lopez@universidad.edu"})

	assert.Equal(t, original.ID, saved.ID)
	assert.Equal(t, original.CreatedAt, saved.CreatedAt)
	assert.Equal(t, "María López", svc.Profile().Name)
}
