package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
)

type fakeAccessibility struct {
	settings models.AccessibilitySettings
}

func (f *fakeAccessibility) Accessibility() models.AccessibilitySettings { return f.settings }

type recordingVibrator struct {
	patterns [][]int
}

func (r *recordingVibrator) Vibrate(pattern []int) error {
	r.patterns = append(r.patterns, pattern)
	return nil
}

func TestHapticsNamedPatterns(t *testing.T) {
	vibrator := &recordingVibrator{}
	svc := NewHapticsService(vibrator, &fakeAccessibility{settings: models.DefaultAccessibilitySettings()}, nil)

	svc.Tap()
	svc.Success()
	svc.Error()

	require.Len(t, vibrator.patterns, 3)
	// Default intensity 2 keeps durations unchanged.
	assert.Equal(t, []int{50}, vibrator.patterns[0])
	assert.Equal(t, []int{100, 50, 100}, vibrator.patterns[1])
	assert.Equal(t, []int{200, 100, 200}, vibrator.patterns[2])
}

func TestHapticsIntensityScaling(t *testing.T) {
	vibrator := &recordingVibrator{}
	settings := models.DefaultAccessibilitySettings()
	settings.VibrationIntensity = 3
	svc := NewHapticsService(vibrator, &fakeAccessibility{settings: settings}, nil)

	svc.Success()
	require.Len(t, vibrator.patterns, 1)
	assert.Equal(t, []int{150, 75, 150}, vibrator.patterns[0])
}

func TestHapticsDisabledSetting(t *testing.T) {
	vibrator := &recordingVibrator{}
	settings := models.DefaultAccessibilitySettings()
	settings.VibrationEnabled = false
	svc := NewHapticsService(vibrator, &fakeAccessibility{settings: settings}, nil)

	svc.Tap()
	assert.Empty(t, vibrator.patterns)
}

func TestHapticsNilVibrator(t *testing.T) {
	svc := NewHapticsService(nil, &fakeAccessibility{settings: models.DefaultAccessibilitySettings()}, nil)
	// Must not panic.
	svc.Tap()
	svc.Vibrate([]int{10, 20})
}
