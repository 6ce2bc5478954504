package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/speech"
)

type fakeVoice struct {
	settings models.VoiceSettings
}

func (f *fakeVoice) Voice() models.VoiceSettings { return f.settings }

type fakeUtterance struct {
	text  string
	rate  float64
	pitch float64
	cb    speech.Callbacks
}

func (f *fakeUtterance) Cancel() {}

// fakeEngine records utterances and lets tests drive the callbacks.
type fakeEngine struct {
	utterances []*fakeUtterance
	cancels    int
}

func (f *fakeEngine) Speak(text string, rate, pitch float64, _ string, cb speech.Callbacks) (speech.Handle, error) {
	u := &fakeUtterance{text: text, rate: rate, pitch: pitch, cb: cb}
	f.utterances = append(f.utterances, u)
	return u, nil
}

func (f *fakeEngine) CancelAll() { f.cancels++ }

func TestSpeechSpeakUsesCurrentVoiceSettings(t *testing.T) {
	engine := &fakeEngine{}
	voice := &fakeVoice{settings: models.VoiceSettings{Speed: 1.0, Pitch: 1.0}}
	svc := NewSpeechService(engine, voice, "es-ES", nil)

	svc.Speak("Hola", false)
	require.Len(t, engine.utterances, 1)
	assert.Equal(t, 1.0, engine.utterances[0].rate)

	// A later change to the voice settings applies to the next utterance.
	voice.settings.Speed = 1.8
	svc.Speak("Adiós", false)
	require.Len(t, engine.utterances, 2)
	assert.Equal(t, 1.8, engine.utterances[1].rate)
	assert.Equal(t, 0, engine.cancels)
}

func TestSpeechInterruptCancelsFirst(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewSpeechService(engine, &fakeVoice{settings: models.DefaultVoiceSettings()}, "es-ES", nil)

	svc.Speak("primero", false)
	svc.Speak("urgente", true)

	assert.Equal(t, 1, engine.cancels)
	assert.Len(t, engine.utterances, 2)
}

func TestSpeechSpeakingLifecycle(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewSpeechService(engine, &fakeVoice{settings: models.DefaultVoiceSettings()}, "es-ES", nil)

	svc.Speak("Hola", false)
	require.Len(t, engine.utterances, 1)
	assert.False(t, svc.IsSpeaking())

	engine.utterances[0].cb.OnStart()
	assert.True(t, svc.IsSpeaking())

	engine.utterances[0].cb.OnEnd()
	assert.False(t, svc.IsSpeaking())
}

func TestSpeechStopClearsFlag(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewSpeechService(engine, &fakeVoice{settings: models.DefaultVoiceSettings()}, "es-ES", nil)

	svc.Speak("Hola", false)
	engine.utterances[0].cb.OnStart()
	require.True(t, svc.IsSpeaking())

	svc.Stop()
	assert.Equal(t, 1, engine.cancels)
	assert.False(t, svc.IsSpeaking())
}

func TestSpeechNilEngineIsSilent(t *testing.T) {
	svc := NewSpeechService(nil, &fakeVoice{settings: models.DefaultVoiceSettings()}, "es-ES", nil)

	assert.False(t, svc.Available())
	// None of these should panic or error.
	svc.Speak("Hola", true)
	svc.Stop()
	assert.False(t, svc.IsSpeaking())
}
