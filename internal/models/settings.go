package models

// InteractionMode selects how the student drives the app.
type InteractionMode string

const (
	InteractionVoice    InteractionMode = "voice"
	InteractionGestures InteractionMode = "gestures"
	InteractionBoth     InteractionMode = "both"
)

// ValidInteractionMode reports whether m names a known mode.
func ValidInteractionMode(m InteractionMode) bool {
	switch m {
	case InteractionVoice, InteractionGestures, InteractionBoth:
		return true
	}
	return false
}

// VoiceSettings controls text-to-speech output.
type VoiceSettings struct {
	Speed    float64 `json:"speed"`
	Pitch    float64 `json:"pitch"`
	AutoRead bool    `json:"auto_read"`
}

// VisualSettings controls global presentation.
type VisualSettings struct {
	HighContrast      bool    `json:"high_contrast"`
	FontSize          float64 `json:"font_size"`
	AnimationsEnabled bool    `json:"animations_enabled"`
}

// AccessibilitySettings controls interaction aids.
type AccessibilitySettings struct {
	InteractionMode    InteractionMode `json:"interaction_mode"`
	BrailleEnabled     bool            `json:"braille_enabled"`
	VibrationEnabled   bool            `json:"vibration_enabled"`
	VibrationIntensity int             `json:"vibration_intensity"`
}

// NotificationSettings gates which notification categories reach the
// student. Emergency alerts can never be disabled.
type NotificationSettings struct {
	Enabled   bool `json:"enabled"`
	Academic  bool `json:"academic"`
	Grades    bool `json:"grades"`
	Emergency bool `json:"emergency"`
}

// DefaultVoiceSettings returns the documented voice defaults.
func DefaultVoiceSettings() VoiceSettings {
	return VoiceSettings{Speed: 1.0, Pitch: 1.0, AutoRead: true}
}

// DefaultVisualSettings returns the documented visual defaults.
func DefaultVisualSettings() VisualSettings {
	return VisualSettings{HighContrast: false, FontSize: 1.0, AnimationsEnabled: false}
}

// DefaultAccessibilitySettings returns the documented accessibility defaults.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{
		InteractionMode:    InteractionBoth,
		BrailleEnabled:     false,
		VibrationEnabled:   true,
		VibrationIntensity: 2,
	}
}

// DefaultNotificationSettings returns the documented notification defaults.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Enabled: true, Academic: true, Grades: true, Emergency: true}
}

// VoiceSettingsPatch is a partial update; nil fields keep current values.
type VoiceSettingsPatch struct {
	Speed    *float64 `json:"speed,omitempty"`
	Pitch    *float64 `json:"pitch,omitempty"`
	AutoRead *bool    `json:"auto_read,omitempty"`
}

// VisualSettingsPatch is a partial update; nil fields keep current values.
type VisualSettingsPatch struct {
	HighContrast      *bool    `json:"high_contrast,omitempty"`
	FontSize          *float64 `json:"font_size,omitempty"`
	AnimationsEnabled *bool    `json:"animations_enabled,omitempty"`
}

// AccessibilitySettingsPatch is a partial update; nil fields keep current values.
type AccessibilitySettingsPatch struct {
	InteractionMode    *InteractionMode `json:"interaction_mode,omitempty"`
	BrailleEnabled     *bool            `json:"braille_enabled,omitempty"`
	VibrationEnabled   *bool            `json:"vibration_enabled,omitempty"`
	VibrationIntensity *int             `json:"vibration_intensity,omitempty"`
}

// NotificationSettingsPatch is a partial update; a patch can never turn
// emergency alerts off.
type NotificationSettingsPatch struct {
	Enabled  *bool `json:"enabled,omitempty"`
	Academic *bool `json:"academic,omitempty"`
	Grades   *bool `json:"grades,omitempty"`
}

// Merge applies the patch and clamps values into their documented ranges.
func (s VoiceSettings) Merge(p VoiceSettingsPatch) VoiceSettings {
	if p.Speed != nil {
		s.Speed = clampFloat(*p.Speed, 0.5, 2.0)
	}
	if p.Pitch != nil {
		s.Pitch = clampFloat(*p.Pitch, 0.5, 1.5)
	}
	if p.AutoRead != nil {
		s.AutoRead = *p.AutoRead
	}
	return s
}

// Merge applies the patch and clamps the font size.
func (s VisualSettings) Merge(p VisualSettingsPatch) VisualSettings {
	if p.HighContrast != nil {
		s.HighContrast = *p.HighContrast
	}
	if p.FontSize != nil {
		s.FontSize = clampFloat(*p.FontSize, 1.0, 3.0)
	}
	if p.AnimationsEnabled != nil {
		s.AnimationsEnabled = *p.AnimationsEnabled
	}
	return s
}

// Merge applies the patch; unknown interaction modes are ignored and the
// vibration intensity snaps to {1,2,3}.
func (s AccessibilitySettings) Merge(p AccessibilitySettingsPatch) AccessibilitySettings {
	if p.InteractionMode != nil && ValidInteractionMode(*p.InteractionMode) {
		s.InteractionMode = *p.InteractionMode
	}
	if p.BrailleEnabled != nil {
		s.BrailleEnabled = *p.BrailleEnabled
	}
	if p.VibrationEnabled != nil {
		s.VibrationEnabled = *p.VibrationEnabled
	}
	if p.VibrationIntensity != nil {
		s.VibrationIntensity = clampInt(*p.VibrationIntensity, 1, 3)
	}
	return s
}

// Merge applies the patch. Emergency stays true unconditionally.
func (s NotificationSettings) Merge(p NotificationSettingsPatch) NotificationSettings {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.Academic != nil {
		s.Academic = *p.Academic
	}
	if p.Grades != nil {
		s.Grades = *p.Grades
	}
	s.Emergency = true
	return s
}

// PresentationState carries the shared presentation flags derived from the
// visual settings. It is a side effect surface consumed by the UI shell,
// not a persisted settings group.
type PresentationState struct {
	HighContrast  bool    `json:"high_contrast"`
	ReducedMotion bool    `json:"reduced_motion"`
	FontScale     float64 `json:"font_scale"`
}

// PresentationFromVisual derives the presentation flags from visual settings.
func PresentationFromVisual(v VisualSettings) PresentationState {
	return PresentationState{
		HighContrast:  v.HighContrast,
		ReducedMotion: !v.AnimationsEnabled,
		FontScale:     v.FontSize,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
