package service

import (
	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/haptics"
	"github.com/inclusivo-app/campus-api/internal/models"
)

// accessibilitySource provides the accessibility settings current at call
// time.
type accessibilitySource interface {
	Accessibility() models.AccessibilitySettings
}

// Built-in feedback patterns, millisecond durations.
var (
	patternTap     = []int{50}
	patternSuccess = []int{100, 50, 100}
	patternError   = []int{200, 100, 200}
)

// HapticsService plays vibration feedback. A nil vibrator or disabled
// vibration setting turns every call into a silent no-op; the intensity
// setting scales durations around its middle value.
type HapticsService struct {
	vibrator haptics.Vibrator
	settings accessibilitySource
	logger   *zap.Logger
}

// NewHapticsService constructs the service.
func NewHapticsService(vibrator haptics.Vibrator, settings accessibilitySource, logger *zap.Logger) *HapticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HapticsService{vibrator: vibrator, settings: settings, logger: logger}
}

// Vibrate plays an arbitrary pattern.
func (s *HapticsService) Vibrate(pattern []int) {
	if s.vibrator == nil {
		return
	}
	prefs := s.settings.Accessibility()
	if !prefs.VibrationEnabled {
		return
	}

	scaled := make([]int, len(pattern))
	for i, d := range pattern {
		scaled[i] = d * prefs.VibrationIntensity / 2
	}

	if err := s.vibrator.Vibrate(scaled); err != nil {
		s.logger.Debug("vibration unsupported", zap.Error(err))
	}
}

// Tap is the short feedback used for button presses.
func (s *HapticsService) Tap() {
	s.Vibrate(patternTap)
}

// Success is the confirmation pattern.
func (s *HapticsService) Success() {
	s.Vibrate(patternSuccess)
}

// Error is the failure pattern.
func (s *HapticsService) Error() {
	s.Vibrate(patternError)
}
